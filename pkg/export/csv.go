package export

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"swarmtrack/pkg/checkin"
)

// Fields is the CSV column order. Existing spreadsheets and scripts key off
// these names, so the order is load-bearing.
var Fields = []string{
	"id",
	"date_utc",
	"date_local",
	"year",
	"month",
	"day_of_week",
	"venue_name",
	"category",
	"category_short",
	"address",
	"cross_street",
	"city",
	"state",
	"postal_code",
	"country",
	"country_code",
	"neighborhood",
	"lat",
	"lng",
	"shout",
	"type",
	"photo_url",
	"venue_url",
	"foursquare_url",
}

const dateFormat = "2006-01-02 15:04:05"

// Row renders one checkin as a CSV record in Fields order. Checkins without
// a timestamp get empty date columns.
func Row(c checkin.Checkin) []string {
	var dateUTC, dateLocal, year, month, dayOfWeek string
	if c.HasTime() {
		dateUTC = c.UTCTime.Format(dateFormat)
		dateLocal = c.LocalTime.Format(dateFormat)
		year = strconv.Itoa(c.LocalTime.Year())
		month = strconv.Itoa(int(c.LocalTime.Month()))
		dayOfWeek = c.LocalTime.Weekday().String()
	}
	return []string{
		c.ID,
		dateUTC,
		dateLocal,
		year,
		month,
		dayOfWeek,
		c.Venue,
		c.Category,
		c.CategoryShort,
		c.Address,
		c.CrossStreet,
		c.City,
		c.State,
		c.PostalCode,
		c.Country,
		c.CountryCode,
		c.Neighborhood,
		fmtFloat(c.Lat),
		fmtFloat(c.Lng),
		c.Shout,
		c.Type,
		c.PhotoURL,
		c.VenueURL,
		c.CanonicalURL,
	}
}

// CSVOptions narrows which checkins get exported
type CSVOptions struct {
	Year     int
	City     string
	Category string
}

// WriteCSV writes the filtered checkins as CSV, newest first, and returns
// how many rows were written
func WriteCSV(w io.Writer, list []checkin.Checkin, opts CSVOptions) (int, error) {
	filtered := checkin.Filter{
		Year:     opts.Year,
		City:     opts.City,
		Category: opts.Category,
	}.Apply(list)

	rows := make([][]string, 0, len(filtered))
	for _, c := range filtered {
		rows = append(rows, Row(c))
	}

	// sort on the rendered date_local string, descending; the fixed-width
	// format makes lexicographic order chronological
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i][2] > rows[j][2]
	})

	cw := csv.NewWriter(w)
	if err := cw.Write(Fields); err != nil {
		return 0, err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return 0, err
		}
	}
	cw.Flush()
	return len(rows), cw.Error()
}

func fmtFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
