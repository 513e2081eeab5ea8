// package models defines the data model for the playlist downloader
package models

import "fmt"

// Track describes one playlist entry as reported by the source catalog.
// Instances are built once by the playlist fetch and read-only afterwards.
type Track struct {
	Title      string // Song title
	Artist     string // Primary artist
	DurationMS int64  // Nominal duration in milliseconds
}

// Query returns the free-text search query issued for this track.
func (t Track) Query() string {
	return fmt.Sprintf("%s %s", t.Title, t.Artist)
}

// Candidate is a single search result extracted from a search response.
// Two are derived per search: the card-style top result and the first row of
// the shelf-style results list.
type Candidate struct {
	SourceID     string // Playable video identifier
	DisplayTitle string // Title as rendered in the search results
	DurationText string // Duration in "MM:SS" form
}

// Match is the outcome of resolving one track: the playback URL of the
// selected candidate plus its display title for diagnostics.
type Match struct {
	Track Track  // Original descriptor the match was resolved for
	URL   string // Fully qualified playback URL
	Title string // Display title of the selected candidate
}
