package ui

import (
	"fmt"
	"strings"

	"swarmtrack/pkg/checkin"
)

const headerWidth = 70

// FormatDate renders a checkin's local time for display
func FormatDate(c checkin.Checkin) string {
	if !c.HasTime() {
		return "unknown date"
	}
	return c.LocalTime.Format("Mon Jan 02, 2006  03:04 PM")
}

// FormatCheckin renders one checkin as a display line, with the place
// detail on a second indented line when present
func FormatCheckin(c checkin.Checkin) string {
	venue := c.Venue
	if venue == "" {
		venue = "(unknown venue)"
	}

	line := fmt.Sprintf("%s  %s", Dim(FormatDate(c)), Bold(venue))

	var details []string
	if c.Category != "" {
		details = append(details, Cyan(c.Category))
	}
	if c.City != "" {
		place := c.City
		if c.State != "" {
			place += ", " + c.State
		}
		details = append(details, place)
	}
	if c.Shout != "" {
		details = append(details, Yellow(`"`+c.Shout+`"`))
	}

	if len(details) > 0 {
		line += "\n    " + strings.Join(details, "  ·  ")
	}
	return line
}

// PrintHeader prints a boxed section title
func PrintHeader(title string) {
	bar := strings.Repeat("=", headerWidth)
	fmt.Println(Bold(bar))
	fmt.Println(Bold(centered(title, headerWidth)))
	fmt.Println(Bold(bar))
}

// PrintCount prints a match count line
func PrintCount(n int) {
	noun := "checkins"
	if n == 1 {
		noun = "checkin"
	}
	fmt.Printf("\n%s\n\n", Green(fmt.Sprintf("%d %s", n, noun)))
}

func centered(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
