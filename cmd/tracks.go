package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/spotdl/internal/services"
	"github.com/desertthunder/spotdl/internal/shared"
	"github.com/urfave/cli/v3"
)

// Tracks fetches a playlist and prints its track descriptors without
// resolving or downloading anything.
func (r *Runner) Tracks(ctx context.Context, cmd *cli.Command) error {
	if err := r.applyFlags(cmd); err != nil {
		return err
	}

	playlist := cmd.StringArg("playlist")
	if playlist == "" {
		return fmt.Errorf("%w: playlist ID or URL", shared.ErrMissingArgument)
	}

	tracks, err := r.engine.Fetch(ctx, playlist)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(tracks, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Playlist %s (%d tracks)", services.ParsePlaylistID(playlist), len(tracks)))
	for i, track := range tracks {
		r.writePlain("%d. %s - %s (%s)\n", i+1, track.Artist, track.Title, formatDuration(track.DurationMS))
	}

	return nil
}
