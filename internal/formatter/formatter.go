// package formatter writes resolve manifests to disk (JSON, CSV)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/desertthunder/spotdl/internal/models"
)

// ManifestEntry records one resolved or skipped track.
type ManifestEntry struct {
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	DurationMS int64  `json:"duration_ms"`
	Matched    string `json:"matched,omitempty"` // Display title of the selected candidate
	URL        string `json:"url,omitempty"`
	Status     string `json:"status"` // "resolved" or "skipped"
}

// Manifest summarizes one resolve run for later inspection.
type Manifest struct {
	RunID       string          `json:"run_id"`
	Playlist    string          `json:"playlist"`
	GeneratedAt time.Time       `json:"generated_at"`
	Resolved    int             `json:"resolved"`
	Skipped     int             `json:"skipped"`
	Entries     []ManifestEntry `json:"entries"`
}

// BuildManifest assembles a manifest from matches and skipped descriptors.
func BuildManifest(runID, playlist string, matches []models.Match, skipped []models.Track) *Manifest {
	m := &Manifest{
		RunID:       runID,
		Playlist:    playlist,
		GeneratedAt: time.Now().UTC(),
		Resolved:    len(matches),
		Skipped:     len(skipped),
		Entries:     make([]ManifestEntry, 0, len(matches)+len(skipped)),
	}

	for _, match := range matches {
		m.Entries = append(m.Entries, ManifestEntry{
			Title:      match.Track.Title,
			Artist:     match.Track.Artist,
			DurationMS: match.Track.DurationMS,
			Matched:    match.Title,
			URL:        match.URL,
			Status:     "resolved",
		})
	}

	for _, track := range skipped {
		m.Entries = append(m.Entries, ManifestEntry{
			Title:      track.Title,
			Artist:     track.Artist,
			DurationMS: track.DurationMS,
			Status:     "skipped",
		})
	}

	return m
}

// ExportToCSV converts a manifest to CSV with columns: Title, Artist, DurationMS, Matched, URL, Status
func ExportToCSV(m *Manifest) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Title", "Artist", "DurationMS", "Matched", "URL", "Status"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, entry := range m.Entries {
		record := []string{
			entry.Title,
			entry.Artist,
			strconv.FormatInt(entry.DurationMS, 10),
			entry.Matched,
			entry.URL,
			entry.Status,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteManifest writes the manifest to path in the given format ("json" or "csv").
func WriteManifest(m *Manifest, format, path string) error {
	var data []byte
	var err error

	switch format {
	case "csv":
		data, err = ExportToCSV(m)
	case "json", "":
		data, err = json.MarshalIndent(m, "", "  ")
	default:
		return fmt.Errorf("unsupported manifest format: %s", format)
	}

	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}
