package export

import (
	"fmt"
	"io"

	"swarmtrack/pkg/checkin"

	"github.com/twpayne/go-kml"
)

// WriteKML writes the checkins as a KML document with one folder per
// category, so map viewers can toggle venue types. Checkins without
// coordinates are skipped; the placemark count is returned.
func WriteKML(w io.Writer, list []checkin.Checkin) (int, error) {
	folders := make(map[string]*kml.CompoundElement)
	var order []string
	written := 0

	for _, c := range list {
		if !c.HasCoordinates() {
			continue
		}

		category := c.Category
		if category == "" {
			category = "Uncategorized"
		}
		folder, ok := folders[category]
		if !ok {
			folder = kml.Folder(kml.Name(category))
			folders[category] = folder
			order = append(order, category)
		}

		folder.Add(kml.Placemark(
			kml.Name(c.Venue),
			kml.Description(placemarkDescription(c)),
			kml.Point(kml.Coordinates(kml.Coordinate{Lon: *c.Lng, Lat: *c.Lat})),
		))
		written++
	}

	doc := kml.Document(kml.Name("Checkin History"))
	for _, category := range order {
		doc.Add(folders[category])
	}

	if err := kml.KML(doc).WriteIndent(w, "", "  "); err != nil {
		return 0, err
	}
	return written, nil
}

func placemarkDescription(c checkin.Checkin) string {
	desc := c.Category
	if c.HasTime() {
		if desc != "" {
			desc += "\n"
		}
		desc += c.LocalTime.Format(dateFormat)
	}
	if c.Shout != "" {
		if desc != "" {
			desc += "\n"
		}
		desc += c.Shout
	}
	if c.City != "" {
		if desc != "" {
			desc += "\n"
		}
		desc += fmt.Sprintf("%s, %s", c.City, c.State)
	}
	return desc
}
