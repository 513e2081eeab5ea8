package tasks

import (
	"fmt"

	"github.com/desertthunder/spotdl/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchPlaylist Phase = iota
	ResolveTrack
	TrackResolved
	TrackFailed
	DispatchDownloads
)

func (p Phase) String() string {
	switch p {
	case FetchPlaylist:
		return "fetch_playlist"
	case ResolveTrack:
		return "resolve_track"
	case TrackResolved:
		return "track_resolved"
	case TrackFailed:
		return "track_failed"
	case DispatchDownloads:
		return "dispatch_downloads"
	default:
		return ""
	}
}

func fetchingPlaylistUpdate(idOrURL string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchPlaylist,
		Message: fmt.Sprintf("Fetching playlist %s...", idOrURL),
	}
}

func resolvingTrackUpdate(step, total int, track models.Track) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ResolveTrack,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Searching for %s by %s (%d/%d)", track.Title, track.Artist, step, total),
		Data:    track,
	}
}

func trackResolvedUpdate(step, total int, m models.Match) ProgressUpdate {
	return ProgressUpdate{
		Phase:   TrackResolved,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Matched %s (%s)", m.Title, m.URL),
		Data:    m,
	}
}

func trackFailedUpdate(step, total int, track models.Track, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   TrackFailed,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Skipped %s by %s: %v", track.Title, track.Artist, err),
		Data:    err,
	}
}

func dispatchingUpdate(count int, dir string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   DispatchDownloads,
		Total:   count,
		Message: fmt.Sprintf("Downloading %d songs to %s", count, dir),
	}
}
