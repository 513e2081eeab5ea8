// package tasks implements the resolve pipeline that drives the matching
// engine over every playlist entry.
//
// The core abstraction is Engine, which orchestrates playlist fetch, batch
// resolution and download dispatch. Operations emit progress updates via
// channels for non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotdl/internal/download"
	"github.com/desertthunder/spotdl/internal/match"
	"github.com/desertthunder/spotdl/internal/models"
	"github.com/desertthunder/spotdl/internal/services"
	"github.com/desertthunder/spotdl/internal/shared"
)

// FailedTrack records one track that could not be matched.
type FailedTrack struct {
	Track models.Track // Original descriptor
	Err   error        // The match error that was logged and skipped
}

// ResolveResult contains all data from resolving one playlist.
type ResolveResult struct {
	Matches []models.Match // Successful matches, in input order
	Failed  []FailedTrack  // Tracks that were skipped
	Total   int            // Total tracks processed
}

// URLs returns the playback URLs of all matches, preserving order.
func (r *ResolveResult) URLs() []string {
	urls := make([]string, len(r.Matches))
	for i, m := range r.Matches {
		urls[i] = m.URL
	}
	return urls
}

// RunResult contains all data from a full fetch-resolve-dispatch run.
type RunResult struct {
	Tracks     []models.Track // Descriptors fetched from the playlist
	Resolve    ResolveResult  // Batch resolution outcome
	Dispatched bool           // Whether the downloader was invoked
	OutputDir  string         // Destination directory
}

// Engine drives the matcher over playlist entries, sequentially, with
// inter-request pacing and per-item failure isolation.
type Engine struct {
	playlists  services.PlaylistService
	selector   *match.Selector
	dispatcher download.Dispatcher
	pacer      shared.Pacer
	logger     *log.Logger
}

// NewEngine creates an Engine with the provided collaborators. A nil pacer
// defaults to the 1-3s uniform window; a nil logger to the shared default.
func NewEngine(playlists services.PlaylistService, selector *match.Selector, dispatcher download.Dispatcher, pacer shared.Pacer, logger *log.Logger) *Engine {
	if pacer == nil {
		pacer = shared.NewUniformPacer(shared.PacingConfig{})
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Engine{
		playlists:  playlists,
		selector:   selector,
		dispatcher: dispatcher,
		pacer:      pacer,
		logger:     logger,
	}
}

// Fetch retrieves the playlist's track descriptors.
func (e *Engine) Fetch(ctx context.Context, idOrURL string) ([]models.Track, error) {
	if e.playlists == nil {
		return nil, fmt.Errorf("%w: playlist service not initialized", shared.ErrServiceUnavailable)
	}

	e.logger.Info("fetching playlist", "playlist", idOrURL)
	tracks, err := e.playlists.FetchPlaylist(ctx, idOrURL)
	if err != nil {
		return nil, err
	}

	e.logger.Info("found songs in playlist", "count", len(tracks))
	return tracks, nil
}

// Resolve matches every descriptor in order. A failed match is logged and
// skipped; it never aborts the batch. Pacing is applied after every attempt,
// including the last, to reduce the chance of upstream rate limiting.
func (e *Engine) Resolve(ctx context.Context, prog chan<- ProgressUpdate, tracks []models.Track) *ResolveResult {
	result := &ResolveResult{Total: len(tracks)}

	for i, track := range tracks {
		e.logger.Info("resolving track", "title", track.Title, "artist", track.Artist)
		e.sendProgress(prog, resolvingTrackUpdate(i+1, len(tracks), track))

		m, err := e.selector.Resolve(ctx, track)
		if err != nil {
			e.logger.Error("failed to resolve track", "title", track.Title, "err", err)
			result.Failed = append(result.Failed, FailedTrack{Track: track, Err: err})
			e.sendProgress(prog, trackFailedUpdate(i+1, len(tracks), track, err))
		} else {
			e.logger.Debug("resolved track", "title", m.Title, "url", m.URL)
			result.Matches = append(result.Matches, m)
			e.sendProgress(prog, trackResolvedUpdate(i+1, len(tracks), m))
		}

		e.pacer.Wait(ctx)
	}

	return result
}

// Dispatch hands the resolved URLs to the downloader. An empty result set
// logs a warning and skips the downloader entirely.
func (e *Engine) Dispatch(ctx context.Context, prog chan<- ProgressUpdate, result *ResolveResult, dir string) (bool, error) {
	if len(result.Matches) == 0 {
		e.logger.Warn("no matches to download")
		return false, nil
	}

	if e.dispatcher == nil {
		return false, fmt.Errorf("%w: dispatcher not initialized", shared.ErrServiceUnavailable)
	}

	e.sendProgress(prog, dispatchingUpdate(len(result.Matches), dir))
	if err := e.dispatcher.Dispatch(ctx, result.URLs(), dir); err != nil {
		return false, err
	}

	return true, nil
}

// Run performs the full pipeline: fetch descriptors, resolve every track,
// dispatch the matched URLs.
func (e *Engine) Run(ctx context.Context, prog chan<- ProgressUpdate, idOrURL, dir string) (*RunResult, error) {
	e.sendProgress(prog, fetchingPlaylistUpdate(idOrURL))

	tracks, err := e.Fetch(ctx, idOrURL)
	if err != nil {
		return nil, err
	}

	result := &RunResult{Tracks: tracks, OutputDir: dir}
	result.Resolve = *e.Resolve(ctx, prog, tracks)

	dispatched, err := e.Dispatch(ctx, prog, &result.Resolve, dir)
	if err != nil {
		return result, err
	}
	result.Dispatched = dispatched

	return result, nil
}

func (e *Engine) sendProgress(prog chan<- ProgressUpdate, update ProgressUpdate) {
	if prog == nil {
		return
	}
	select {
	case prog <- update:
	default:
	}
}
