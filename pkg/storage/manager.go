package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"swarmtrack/pkg/foursquare"
	"swarmtrack/pkg/logger"
)

// Dataset is the on-disk envelope for a full download run
type Dataset struct {
	DownloadedAt  time.Time            `json:"downloaded_at"`
	UserID        string               `json:"user_id"`
	TotalCheckins int                  `json:"total_checkins"`
	Checkins      []foursquare.Checkin `json:"checkins"`
}

// SummaryEntry is the compact per-checkin record written alongside the
// full dataset for quick human inspection
type SummaryEntry struct {
	ID        string `json:"id"`
	CreatedAt int64  `json:"createdAt"`
	Date      string `json:"date"`
	VenueName string `json:"venue_name"`
	Category  string `json:"venue_category"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	Shout     string `json:"shout,omitempty"`
}

// Summarize flattens raw checkins into summary entries. Dates are the
// checkin's local wall-clock time; checkins without a timestamp get an
// empty date.
func Summarize(checkins []foursquare.Checkin) []SummaryEntry {
	entries := make([]SummaryEntry, 0, len(checkins))
	for _, c := range checkins {
		date := ""
		if c.CreatedAt != 0 {
			local := time.Unix(c.CreatedAt, 0).UTC().Add(time.Duration(c.TimeZoneOffset) * time.Minute)
			date = local.Format("2006-01-02 15:04:05")
		}
		entries = append(entries, SummaryEntry{
			ID:        c.ID,
			CreatedAt: c.CreatedAt,
			Date:      date,
			VenueName: c.Venue.Name,
			Category:  c.Venue.PrimaryCategory().Name,
			City:      c.Venue.Location.City,
			State:     c.Venue.Location.State,
			Country:   c.Venue.Location.CC,
			Shout:     c.Shout,
		})
	}
	return entries
}

// Manager handles persistence of downloaded checkin data
type Manager struct {
	dataDir string
	logger  logger.Logger
}

// NewManager creates a storage manager rooted at dataDir, creating the
// directory if needed
func NewManager(dataDir string, log logger.Logger) (*Manager, error) {
	if log == nil {
		log = logger.GetLogger()
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Manager{dataDir: dataDir, logger: log}, nil
}

// SaveDataset writes the full dataset envelope and returns the number of
// bytes written
func (m *Manager) SaveDataset(filename string, ds *Dataset) (int64, error) {
	path := filepath.Join(m.dataDir, filename)
	size, err := m.writeJSON(path, ds)
	if err != nil {
		return 0, err
	}
	m.logger.InfoWithFields("saved dataset", map[string]interface{}{
		"path":     path,
		"checkins": ds.TotalCheckins,
		"bytes":    size,
	})
	return size, nil
}

// SaveSummary writes the compact summary list and returns the number of
// bytes written
func (m *Manager) SaveSummary(filename string, entries []SummaryEntry) (int64, error) {
	path := filepath.Join(m.dataDir, filename)
	size, err := m.writeJSON(path, entries)
	if err != nil {
		return 0, err
	}
	m.logger.InfoWithFields("saved summary", map[string]interface{}{
		"path":    path,
		"entries": len(entries),
		"bytes":   size,
	})
	return size, nil
}

// writeJSON marshals v and writes it atomically via a temp file rename,
// so a crash mid-write never leaves a truncated file behind
func (m *Manager) writeJSON(path string, v interface{}) (int64, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("failed to rename temp file: %w", err)
	}

	return int64(len(data)), nil
}

// LoadCheckins reads a dataset file. Both the Dataset envelope and a bare
// JSON array of checkins are accepted, so files produced by older tooling
// still load.
func LoadCheckins(path string) ([]foursquare.Checkin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err == nil && ds.Checkins != nil {
		return ds.Checkins, nil
	}

	var bare []foursquare.Checkin
	if err := json.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return bare, nil
}
