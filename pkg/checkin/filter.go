package checkin

import (
	"strings"
	"time"

	"github.com/golang/geo/s2"
)

const earthRadiusKm = 6371.0

// Coordinates is a latitude/longitude pair in degrees
type Coordinates struct {
	Lat float64
	Lng float64
}

// DistanceKm returns the great-circle distance to other in kilometers
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	p1 := s2.LatLngFromDegrees(c.Lat, c.Lng)
	p2 := s2.LatLngFromDegrees(other.Lat, other.Lng)
	return p1.Distance(p2).Radians() * earthRadiusKm
}

// Predicate decides whether a checkin matches
type Predicate func(Checkin) bool

// And composes predicates; a checkin must satisfy all of them
func And(preds ...Predicate) Predicate {
	return func(c Checkin) bool {
		for _, p := range preds {
			if !p(c) {
				return false
			}
		}
		return true
	}
}

// Filter describes a conjunction of checkin criteria. Zero-valued fields
// match everything.
type Filter struct {
	Year     int
	Month    int
	Venue    string
	Category string
	City     string
	State    string
	Shout    string
	Type     string
	After    time.Time
	Before   time.Time
	Near     *Coordinates
	RadiusKm float64
}

// IsZero reports whether the filter has no criteria at all
func (f Filter) IsZero() bool {
	return f.Year == 0 && f.Month == 0 && f.Venue == "" && f.Category == "" &&
		f.City == "" && f.State == "" && f.Shout == "" && f.Type == "" &&
		f.After.IsZero() && f.Before.IsZero() && f.Near == nil
}

// Predicates expands the filter into its individual predicates. String
// criteria are case-insensitive; most are substring matches, but State and
// Type compare exactly. Date criteria compare against local time and never
// match checkins without a timestamp.
func (f Filter) Predicates() []Predicate {
	var preds []Predicate

	if f.Year != 0 {
		year := f.Year
		preds = append(preds, func(c Checkin) bool {
			return c.HasTime() && c.LocalTime.Year() == year
		})
	}
	if f.Month != 0 {
		month := time.Month(f.Month)
		preds = append(preds, func(c Checkin) bool {
			return c.HasTime() && c.LocalTime.Month() == month
		})
	}
	if f.Venue != "" {
		preds = append(preds, containsPred(f.Venue, func(c Checkin) string { return c.Venue }))
	}
	if f.Category != "" {
		needle := strings.ToLower(f.Category)
		preds = append(preds, func(c Checkin) bool {
			return strings.Contains(strings.ToLower(c.Category), needle) ||
				strings.Contains(strings.ToLower(c.CategoryShort), needle)
		})
	}
	if f.City != "" {
		preds = append(preds, containsPred(f.City, func(c Checkin) string { return c.City }))
	}
	if f.State != "" {
		st := strings.ToLower(f.State)
		preds = append(preds, func(c Checkin) bool {
			return strings.ToLower(c.State) == st
		})
	}
	if f.Shout != "" {
		preds = append(preds, containsPred(f.Shout, func(c Checkin) string { return c.Shout }))
	}
	if f.Type != "" {
		typ := strings.ToLower(f.Type)
		preds = append(preds, func(c Checkin) bool {
			return strings.ToLower(c.Type) == typ
		})
	}
	if !f.After.IsZero() {
		after := f.After
		preds = append(preds, func(c Checkin) bool {
			return c.HasTime() && !c.LocalTime.Before(after)
		})
	}
	if !f.Before.IsZero() {
		before := f.Before
		preds = append(preds, func(c Checkin) bool {
			return c.HasTime() && !c.LocalTime.After(before)
		})
	}
	if f.Near != nil {
		center := *f.Near
		radius := f.RadiusKm
		if radius <= 0 {
			radius = 5
		}
		preds = append(preds, func(c Checkin) bool {
			if !c.HasCoordinates() {
				return false
			}
			return center.DistanceKm(Coordinates{Lat: *c.Lat, Lng: *c.Lng}) <= radius
		})
	}

	return preds
}

// Apply returns the checkins that match every criterion
func (f Filter) Apply(list []Checkin) []Checkin {
	pred := And(f.Predicates()...)
	var out []Checkin
	for _, c := range list {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

// SearchText matches checkins where any of venue, category, city, shout, or
// neighborhood contains the query, case-insensitively
func SearchText(list []Checkin, query string) []Checkin {
	needle := strings.ToLower(query)
	var out []Checkin
	for _, c := range list {
		fields := []string{c.Venue, c.Category, c.City, c.Shout, c.Neighborhood}
		for _, field := range fields {
			if field != "" && strings.Contains(strings.ToLower(field), needle) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func containsPred(needle string, get func(Checkin) string) Predicate {
	lower := strings.ToLower(needle)
	return func(c Checkin) bool {
		return strings.Contains(strings.ToLower(get(c)), lower)
	}
}
