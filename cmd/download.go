package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/desertthunder/spotdl/internal/formatter"
	"github.com/desertthunder/spotdl/internal/models"
	"github.com/desertthunder/spotdl/internal/services"
	"github.com/desertthunder/spotdl/internal/shared"
	"github.com/desertthunder/spotdl/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Download runs the full pipeline for one playlist: fetch descriptors, resolve
// each against YouTube Music, then hand the matched URLs to the downloader.
func (r *Runner) Download(ctx context.Context, cmd *cli.Command) error {
	if err := r.applyFlags(cmd); err != nil {
		return err
	}

	playlist := cmd.StringArg("playlist")
	if playlist == "" {
		return fmt.Errorf("%w: playlist ID or URL", shared.ErrMissingArgument)
	}

	dir := cmd.String("output")
	if dir == "" {
		dir = r.config.Downloader.OutputDir
	}

	runID := shared.GenerateID()
	logger := shared.WithLogger(r.logger, "run", runID)
	logger.Info("starting download run", "playlist", playlist, "dir", dir)

	// Create progress channel and goroutine to handle updates. The goroutine
	// is joined once resolution finishes so later writes never interleave.
	progressCh := make(chan tasks.ProgressUpdate, 50)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for update := range progressCh {
			switch update.Phase {
			case tasks.ResolveTrack:
				r.writePlain("🔍 %s\n", update.Message)
			case tasks.TrackResolved:
				r.writePlain("   ✓ %s\n", update.Message)
			case tasks.TrackFailed:
				r.writePlain("   ✗ %s\n", update.Message)
			}
		}
	}()

	r.writePlain("Fetching playlist %s...\n\n", playlist)
	tracks, err := r.engine.Fetch(ctx, playlist)
	if err != nil {
		close(progressCh)
		<-drained
		return err
	}

	result := r.engine.Resolve(ctx, progressCh, tracks)
	close(progressCh)
	<-drained

	matches := result.Matches
	if cmd.Bool("review") && len(matches) > 0 {
		kept, confirmed, err := r.review(matches)
		if err != nil {
			return err
		}
		if !confirmed {
			r.writePlain("\nDownload cancelled.\n")
			return nil
		}
		matches = kept
	}

	if path := cmd.String("manifest"); path != "" {
		if err := r.writeManifest(runID, playlist, path, result); err != nil {
			return err
		}
		r.writePlain("\nManifest written to %s\n", path)
	}

	if cmd.Bool("dry-run") {
		r.writePlain("\nDry run: skipping download of %d matched tracks\n", len(matches))
		for _, m := range matches {
			r.writePlain("  %s\n", m.URL)
		}
		r.summarize("Dry Run Complete!", result, dir, false)
		return nil
	}

	if len(matches) > 0 {
		r.writePlain("\n📥 Downloading %d songs to %s\n", len(matches), dir)
	}

	final := &tasks.ResolveResult{Matches: matches, Failed: result.Failed, Total: result.Total}
	dispatched, err := r.engine.Dispatch(ctx, nil, final, dir)
	if err != nil {
		return err
	}

	r.summarize("Download Complete!", result, dir, dispatched)
	return nil
}

func (r *Runner) writeManifest(runID, playlist, path string, result *tasks.ResolveResult) error {
	skipped := make([]models.Track, 0, len(result.Failed))
	for _, failed := range result.Failed {
		skipped = append(skipped, failed.Track)
	}

	format := "json"
	if filepath.Ext(path) == ".csv" {
		format = "csv"
	}

	manifest := formatter.BuildManifest(runID, services.ParsePlaylistID(playlist), result.Matches, skipped)
	return formatter.WriteManifest(manifest, format, path)
}

func (r *Runner) summarize(title string, result *tasks.ResolveResult, dir string, dispatched bool) {
	r.writePlain("\n")
	r.writePlainHeader(title)
	r.writePlain("Resolved: %d/%d tracks\n", len(result.Matches), result.Total)
	if dispatched {
		r.writePlain("Saved to: %s\n", dir)
	}

	if len(result.Failed) > 0 {
		r.writePlain("\nSkipped %d tracks:\n", len(result.Failed))
		for _, failed := range result.Failed {
			r.writePlain("  - %s - %s\n", failed.Track.Artist, failed.Track.Title)
		}
	}
}
