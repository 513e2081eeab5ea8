package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/spotdl/internal/models"
)

var _ list.Item = matchItem{}

// matchItem wraps [models.Match] to implement [list.Item]. The excluded flag
// marks matches the user removed from the download set.
type matchItem struct {
	match    models.Match
	excluded bool
}

func (i matchItem) FilterValue() string { return i.match.Track.Title }

func (i matchItem) Title() string {
	marker := "✓"
	if i.excluded {
		marker = "✗"
	}
	return fmt.Sprintf("%s %s — %s", marker, i.match.Track.Title, i.match.Track.Artist)
}

func (i matchItem) Description() string {
	return fmt.Sprintf("matched %q (%s)", i.match.Title, i.match.URL)
}
