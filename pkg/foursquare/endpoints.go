package foursquare

import (
	"fmt"
	"net/url"
	"strconv"
)

// BaseURL is the Foursquare v2 API root
const BaseURL = "https://api.foursquare.com/v2"

// HistorySearchURL builds the paginated history search URL for a user.
// The fixed parameters mirror what the Swarm app itself sends.
func HistorySearchURL(base, userID, token, locale, version string, offset, limit int) string {
	q := url.Values{}
	q.Set("locale", locale)
	q.Set("explicit-lang", "false")
	q.Set("v", version)
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("m", "swarm")
	q.Set("clusters", "false")
	q.Set("sort", "newestfirst")
	q.Set("oauth_token", token)
	return fmt.Sprintf("%s/users/%s/historysearch?%s", base, url.PathEscape(userID), q.Encode())
}
