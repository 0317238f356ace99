package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"swarmtrack/pkg/foursquare"
	"swarmtrack/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCheckins() []foursquare.Checkin {
	return []foursquare.Checkin{
		{
			ID:             "c1",
			CreatedAt:      1685642400, // 2023-06-01 18:00:00 UTC
			TimeZoneOffset: -420,
			Shout:          "great coffee",
			Venue: foursquare.Venue{
				Name:       "Peet's Coffee",
				Categories: []foursquare.Category{{ID: "13035", Name: "Coffee Shop"}},
				Location:   foursquare.Location{City: "Irvine", State: "CA", Country: "United States", CC: "US"},
			},
		},
		{ID: "c2", Venue: foursquare.Venue{Name: "Mystery Venue"}},
	}
}

func TestSummarize(t *testing.T) {
	entries := Summarize(sampleCheckins())
	require.Len(t, entries, 2)

	assert.Equal(t, "c1", entries[0].ID)
	assert.Equal(t, "2023-06-01 11:00:00", entries[0].Date)
	assert.Equal(t, "Peet's Coffee", entries[0].VenueName)
	assert.Equal(t, "Coffee Shop", entries[0].Category)
	assert.Equal(t, "Irvine", entries[0].City)
	// country carries the two-letter code, not the display name
	assert.Equal(t, "US", entries[0].Country)

	// no timestamp means no date
	assert.Equal(t, "", entries[1].Date)
	assert.Equal(t, int64(0), entries[1].CreatedAt)
}

func TestSaveAndLoadDataset(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir, logger.NewTestLogger())
	require.NoError(t, err)

	ds := &Dataset{
		DownloadedAt:  time.Now().UTC(),
		UserID:        "self",
		TotalCheckins: 2,
		Checkins:      sampleCheckins(),
	}

	size, err := m.SaveDataset("all_checkins.json", ds)
	require.NoError(t, err)
	assert.Greater(t, size, int64(0))

	loaded, err := LoadCheckins(filepath.Join(dir, "all_checkins.json"))
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "c1", loaded[0].ID)
	assert.Equal(t, "Peet's Coffee", loaded[0].Venue.Name)

	// no stray temp file
	_, err = os.Stat(filepath.Join(dir, "all_checkins.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadCheckinsBareArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "legacy.json")

	data, err := json.Marshal(sampleCheckins())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := LoadCheckins(path)
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
}

func TestLoadCheckinsMissingFile(t *testing.T) {
	_, err := LoadCheckins(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestSaveSummary(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir, logger.NewTestLogger())
	require.NoError(t, err)

	entries := Summarize(sampleCheckins())
	size, err := m.SaveSummary("checkins_summary.json", entries)
	require.NoError(t, err)
	assert.Greater(t, size, int64(0))

	data, err := os.ReadFile(filepath.Join(dir, "checkins_summary.json"))
	require.NoError(t, err)

	var loaded []SummaryEntry
	require.NoError(t, json.Unmarshal(data, &loaded))
	require.Len(t, loaded, 2)
	assert.Equal(t, "great coffee", loaded[0].Shout)
}
