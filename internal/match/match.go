// package match implements the duration-similarity matching engine
//
// Given a target track and a search result document, it extracts the
// card-style top result and the first list row, then picks whichever sits
// closer to the target duration.
package match

import (
	"context"
	"fmt"

	"github.com/desertthunder/spotdl/internal/models"
	"github.com/desertthunder/spotdl/internal/services"
	"github.com/desertthunder/spotdl/internal/shared"
)

// watchURLTemplate builds a playback URL from a selected source id.
const watchURLTemplate = "https://music.youtube.com/watch?v=%s"

// Selector resolves single tracks against a search client.
type Selector struct {
	client services.SearchClient
}

// NewSelector creates a Selector using the given search client. The client
// is constructed once per run and reused across every search.
func NewSelector(client services.SearchClient) *Selector {
	return &Selector{client: client}
}

// Resolve issues one search for the track and selects the best candidate.
//
// Extraction and duration-format failures are converted to
// [shared.ErrNoMatch] here; callers never see the underlying taxonomy.
func (s *Selector) Resolve(ctx context.Context, track models.Track) (models.Match, error) {
	doc, err := s.client.Search(ctx, track.Query())
	if err != nil {
		return models.Match{}, fmt.Errorf("%w: search failed for %q by %q: %v", shared.ErrNoMatch, track.Title, track.Artist, err)
	}

	return Select(track, doc)
}

// Select compares both extracted candidates against the target duration and
// picks the closer one. Exactly one candidate is chosen per successful call.
//
// Ties select the list candidate, not the card. The direction is arbitrary
// but load-bearing: it matches the long-standing observable behavior and
// must not change.
func Select(target models.Track, doc *services.SearchResult) (models.Match, error) {
	top, first, err := Extract(doc, target)
	if err != nil {
		return models.Match{}, noMatch(target, err)
	}

	topMS, err := ParseDuration(top.DurationText)
	if err != nil {
		return models.Match{}, noMatch(target, err)
	}

	firstMS, err := ParseDuration(first.DurationText)
	if err != nil {
		return models.Match{}, noMatch(target, err)
	}

	selected := first
	if abs(topMS-target.DurationMS) < abs(firstMS-target.DurationMS) {
		selected = top
	}

	return models.Match{
		Track: target,
		URL:   fmt.Sprintf(watchURLTemplate, selected.SourceID),
		Title: selected.DisplayTitle,
	}, nil
}

func noMatch(track models.Track, cause error) error {
	return fmt.Errorf("%w: failed to find matching song for %q by %q: %v", shared.ErrNoMatch, track.Title, track.Artist, cause)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
