package checkin

import (
	"sort"
	"strconv"
	"time"

	"swarmtrack/pkg/foursquare"
)

// Checkin is the flat, query-friendly form of a raw API checkin. All venue
// and location fields are pulled up to the top level.
type Checkin struct {
	ID            string
	UTCTime       time.Time
	LocalTime     time.Time
	Venue         string
	Category      string
	CategoryShort string
	CategoryCode  int
	Address       string
	CrossStreet   string
	City          string
	State         string
	PostalCode    string
	Country       string
	CountryCode   string
	Neighborhood  string
	Lat           *float64
	Lng           *float64
	Shout         string
	Type          string
	PhotoURL      string
	VenueURL      string
	CanonicalURL  string
}

// HasTime reports whether the checkin carried a timestamp. Checkins without
// one never match date-based filters.
func (c Checkin) HasTime() bool {
	return !c.LocalTime.IsZero()
}

// HasCoordinates reports whether the venue had both a latitude and a
// longitude
func (c Checkin) HasCoordinates() bool {
	return c.Lat != nil && c.Lng != nil
}

// Normalize flattens one raw checkin. Local time is the UTC timestamp
// shifted by the venue's timezone offset in minutes; a missing timestamp
// leaves both times zero.
func Normalize(raw foursquare.Checkin) Checkin {
	c := Checkin{
		ID:           raw.ID,
		Venue:        raw.Venue.Name,
		Address:      raw.Venue.Location.Address,
		CrossStreet:  raw.Venue.Location.CrossStreet,
		City:         raw.Venue.Location.City,
		State:        raw.Venue.Location.State,
		PostalCode:   raw.Venue.Location.PostalCode,
		Country:      raw.Venue.Location.Country,
		CountryCode:  raw.Venue.Location.CC,
		Neighborhood: raw.Venue.Location.Neighborhood,
		Lat:          raw.Venue.Location.Lat,
		Lng:          raw.Venue.Location.Lng,
		Shout:        raw.Shout,
		Type:         raw.Type,
		VenueURL:     raw.Venue.URL,
		CanonicalURL: raw.CanonicalURL,
	}

	if raw.CreatedAt != 0 {
		c.UTCTime = time.Unix(raw.CreatedAt, 0).UTC()
		c.LocalTime = c.UTCTime.Add(time.Duration(raw.TimeZoneOffset) * time.Minute)
	}

	cat := raw.Venue.PrimaryCategory()
	c.Category = cat.Name
	c.CategoryShort = cat.ShortName
	if code, err := strconv.Atoi(cat.ID); err == nil {
		c.CategoryCode = code
	}

	if len(raw.Photos.Items) > 0 {
		c.PhotoURL = raw.Photos.Items[0].OriginalURL()
	}

	return c
}

// NormalizeAll flattens a full raw dataset
func NormalizeAll(raw []foursquare.Checkin) []Checkin {
	out := make([]Checkin, 0, len(raw))
	for _, r := range raw {
		out = append(out, Normalize(r))
	}
	return out
}

// SortNewestFirst orders checkins by local time, newest first. Checkins
// without a timestamp sort last.
func SortNewestFirst(list []Checkin) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].LocalTime.After(list[j].LocalTime)
	})
}
