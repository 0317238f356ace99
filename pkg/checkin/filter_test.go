package checkin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleList() []Checkin {
	return []Checkin{
		{
			ID:           "coffee",
			LocalTime:    time.Date(2023, 6, 1, 11, 0, 0, 0, time.UTC),
			Venue:        "Peet's Coffee",
			Category:     "Coffee Shop",
			CategoryCode: 13035,
			City:         "Irvine",
			State:        "CA",
			Shout:        "morning coffee",
			Type:         "checkin",
			Lat:          floatPtr(33.6508),
			Lng:          floatPtr(-117.8415),
		},
		{
			ID:           "sushi",
			LocalTime:    time.Date(2022, 1, 1, 19, 30, 0, 0, time.UTC),
			Venue:        "Sugarfish",
			Category:     "Sushi Restaurant",
			CategoryCode: 13263,
			City:         "Los Angeles",
			State:        "CA",
			Type:         "checkin",
			Lat:          floatPtr(34.0522),
			Lng:          floatPtr(-118.2437),
		},
		{
			ID:    "untimed",
			Venue: "Mystery Spot",
			City:  "Irvine",
		},
	}
}

func TestFilterByYear(t *testing.T) {
	out := Filter{Year: 2023}.Apply(sampleList())
	require.Len(t, out, 1)
	assert.Equal(t, "coffee", out[0].ID)
}

func TestFilterYearExcludesUntimed(t *testing.T) {
	// an untimed checkin never matches a date criterion
	out := Filter{Year: 2022}.Apply(sampleList())
	require.Len(t, out, 1)
	assert.Equal(t, "sushi", out[0].ID)
}

func TestFilterComposesWithAnd(t *testing.T) {
	out := Filter{Year: 2023, City: "irvine", Category: "coffee"}.Apply(sampleList())
	require.Len(t, out, 1)
	assert.Equal(t, "coffee", out[0].ID)

	// same city, wrong year
	out = Filter{Year: 2022, City: "irvine"}.Apply(sampleList())
	assert.Empty(t, out)
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	out := Filter{Venue: "PEET"}.Apply(sampleList())
	require.Len(t, out, 1)
	assert.Equal(t, "coffee", out[0].ID)

	out = Filter{Category: "restaurant"}.Apply(sampleList())
	require.Len(t, out, 1)
	assert.Equal(t, "sushi", out[0].ID)
}

func TestFilterStateExactMatch(t *testing.T) {
	out := Filter{State: "ca"}.Apply(sampleList())
	assert.Len(t, out, 2)

	// state is an exact match, not a substring
	out = Filter{State: "C"}.Apply(sampleList())
	assert.Empty(t, out)
}

func TestFilterAfterBefore(t *testing.T) {
	after := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	out := Filter{After: after}.Apply(sampleList())
	require.Len(t, out, 1)
	assert.Equal(t, "coffee", out[0].ID)

	before := time.Date(2022, 12, 31, 23, 59, 59, 0, time.UTC)
	out = Filter{Before: before}.Apply(sampleList())
	require.Len(t, out, 1)
	assert.Equal(t, "sushi", out[0].ID)
}

func TestFilterNear(t *testing.T) {
	irvine := &Coordinates{Lat: 33.6846, Lng: -117.8265}
	out := Filter{Near: irvine, RadiusKm: 10}.Apply(sampleList())
	require.Len(t, out, 1)
	assert.Equal(t, "coffee", out[0].ID)

	// 60 km radius pulls in Los Angeles too
	out = Filter{Near: irvine, RadiusKm: 60}.Apply(sampleList())
	assert.Len(t, out, 2)
}

func TestDistanceKm(t *testing.T) {
	la := Coordinates{Lat: 34.0522, Lng: -118.2437}
	sf := Coordinates{Lat: 37.7749, Lng: -122.4194}
	d := la.DistanceKm(sf)
	assert.InDelta(t, 559, d, 10)
}

func TestSearchText(t *testing.T) {
	// matches across venue, shout, and city fields
	assert.Len(t, SearchText(sampleList(), "coffee"), 1)
	assert.Len(t, SearchText(sampleList(), "irvine"), 2)
	assert.Len(t, SearchText(sampleList(), "SUGARFISH"), 1)
	assert.Empty(t, SearchText(sampleList(), "portland"))
}

func TestFilterIsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{Year: 2023}.IsZero())
	assert.False(t, Filter{Near: &Coordinates{}}.IsZero())
}
