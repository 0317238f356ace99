package foursquare

// Envelope is the top-level wrapper every v2 endpoint returns
type Envelope struct {
	Meta     Meta     `json:"meta"`
	Response Response `json:"response"`
}

// Meta carries the API-level status code, which can disagree with the HTTP
// status on some error paths
type Meta struct {
	Code        int    `json:"code"`
	ErrorType   string `json:"errorType,omitempty"`
	ErrorDetail string `json:"errorDetail,omitempty"`
}

// Response wraps the history search payload
type Response struct {
	Checkins CheckinPage `json:"checkins"`
}

// CheckinPage is one offset/limit window of the checkin history
type CheckinPage struct {
	Count int       `json:"count"`
	Items []Checkin `json:"items"`
}

// Checkin is a raw checkin as returned by the history search endpoint
type Checkin struct {
	ID             string     `json:"id"`
	CreatedAt      int64      `json:"createdAt,omitempty"`
	TimeZoneOffset int        `json:"timeZoneOffset,omitempty"`
	Type           string     `json:"type,omitempty"`
	Shout          string     `json:"shout,omitempty"`
	CanonicalURL   string     `json:"canonicalUrl,omitempty"`
	Venue          Venue      `json:"venue,omitempty"`
	Photos         PhotoGroup `json:"photos,omitempty"`
}

// Venue is the place a checkin happened at
type Venue struct {
	ID         string     `json:"id,omitempty"`
	Name       string     `json:"name,omitempty"`
	URL        string     `json:"url,omitempty"`
	Categories []Category `json:"categories,omitempty"`
	Location   Location   `json:"location,omitempty"`
}

// Category is one entry of a venue's ordered category list. IDs in the
// current taxonomy are numeric strings.
type Category struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	ShortName string `json:"shortName,omitempty"`
	Primary   bool   `json:"primary,omitempty"`
}

// PrimaryCategory returns the first category of the venue's ordered list,
// or a zero Category when the venue has none.
func (v Venue) PrimaryCategory() Category {
	if len(v.Categories) == 0 {
		return Category{}
	}
	return v.Categories[0]
}

// Location describes where a venue is. Coordinates are pointers so that an
// absent field is distinguishable from latitude or longitude zero.
type Location struct {
	Address      string   `json:"address,omitempty"`
	CrossStreet  string   `json:"crossStreet,omitempty"`
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
	PostalCode   string   `json:"postalCode,omitempty"`
	Country      string   `json:"country,omitempty"`
	CC           string   `json:"cc,omitempty"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
}

// PhotoGroup wraps the photos attached to a checkin
type PhotoGroup struct {
	Count int     `json:"count,omitempty"`
	Items []Photo `json:"items,omitempty"`
}

// Photo is one attached photo; the full URL is prefix + size + suffix
type Photo struct {
	Prefix string `json:"prefix,omitempty"`
	Suffix string `json:"suffix,omitempty"`
}

// OriginalURL returns the full-size photo URL, or "" when the photo has no
// prefix and suffix.
func (p Photo) OriginalURL() string {
	if p.Prefix == "" && p.Suffix == "" {
		return ""
	}
	return p.Prefix + "original" + p.Suffix
}
