package foursquare

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistorySearchURL(t *testing.T) {
	raw := HistorySearchURL(BaseURL, "12345", "tok", "en", "20260220", 150, 50)

	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "/v2/users/12345/historysearch", u.Path)

	q := u.Query()
	assert.Equal(t, "150", q.Get("offset"))
	assert.Equal(t, "50", q.Get("limit"))
	assert.Equal(t, "tok", q.Get("oauth_token"))
	assert.Equal(t, "en", q.Get("locale"))
	assert.Equal(t, "20260220", q.Get("v"))
	assert.Equal(t, "swarm", q.Get("m"))
	assert.Equal(t, "newestfirst", q.Get("sort"))
	assert.Equal(t, "false", q.Get("clusters"))
}

func TestPhotoOriginalURL(t *testing.T) {
	p := Photo{Prefix: "https://fastly.4sqi.net/img/general/", Suffix: "/abc.jpg"}
	assert.Equal(t, "https://fastly.4sqi.net/img/general/original/abc.jpg", p.OriginalURL())

	assert.Equal(t, "", Photo{}.OriginalURL())
}

func TestPrimaryCategory(t *testing.T) {
	v := Venue{Categories: []Category{
		{ID: "13035", Name: "Coffee Shop", ShortName: "Coffee Shop"},
		{ID: "13002", Name: "Bakery"},
	}}
	assert.Equal(t, "Coffee Shop", v.PrimaryCategory().Name)

	assert.Equal(t, Category{}, Venue{}.PrimaryCategory())
}
