package main

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swarmtrack/pkg/checkin"
)

func timedCheckin(venue string, at time.Time) checkin.Checkin {
	return checkin.Checkin{Venue: venue, UTCTime: at, LocalTime: at}
}

func TestCapResults(t *testing.T) {
	list := make([]checkin.Checkin, 30)
	for i := range list {
		list[i] = checkin.Checkin{ID: fmt.Sprintf("c%d", i)}
	}

	capped := capResults(list, 25)
	require.Len(t, capped, 25)
	assert.Equal(t, "c0", capped[0].ID)

	assert.Len(t, capResults(list, 0), 30)
	assert.Len(t, capResults(list, 100), 30)
}

func TestSearchLimitDefault(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"search"})
	require.NoError(t, err)

	flag := cmd.Flags().Lookup("limit")
	require.NotNil(t, flag)
	assert.Equal(t, "25", flag.DefValue)
}

func TestMonthlyHistory(t *testing.T) {
	june22 := time.Date(2022, 6, 15, 12, 0, 0, 0, time.UTC)
	june23 := time.Date(2023, 6, 1, 9, 0, 0, 0, time.UTC)
	list := []checkin.Checkin{
		timedCheckin("A", june23),
		timedCheckin("B", june23.AddDate(0, 0, 3)),
		timedCheckin("C", june22),
		{Venue: "untimed"},
	}

	entries := monthlyHistory(list)
	require.Len(t, entries, 2)
	// the same calendar month in different years stays separate, oldest first
	assert.Equal(t, checkin.Entry{Key: "June 2022", Count: 1}, entries[0])
	assert.Equal(t, checkin.Entry{Key: "June 2023", Count: 2}, entries[1])
}

func TestVenueAnnotation(t *testing.T) {
	c := checkin.Checkin{CategoryShort: "Coffee", Category: "Coffee Shop", City: "Irvine"}
	assert.Equal(t, "Coffee · Irvine", venueAnnotation(c))

	// no short name, fall back to the full category
	c.CategoryShort = ""
	assert.Equal(t, "Coffee Shop · Irvine", venueAnnotation(c))

	assert.Equal(t, "", venueAnnotation(checkin.Checkin{}))
}

func TestLatestByVenue(t *testing.T) {
	older := timedCheckin("Peet's Coffee", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))
	older.City = "Irvine"
	newer := timedCheckin("Peet's Coffee", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	newer.City = "Tustin"

	// oldest-first input still picks the most recent visit
	latest := latestByVenue([]checkin.Checkin{older, newer})
	require.Contains(t, latest, "Peet's Coffee")
	assert.Equal(t, "Tustin", latest["Peet's Coffee"].City)
}
