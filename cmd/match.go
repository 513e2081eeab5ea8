package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/spotdl/internal/match"
	"github.com/desertthunder/spotdl/internal/models"
	"github.com/desertthunder/spotdl/internal/shared"
	"github.com/urfave/cli/v3"
)

// Match resolves a single ad-hoc track and prints the selected candidate.
func (r *Runner) Match(ctx context.Context, cmd *cli.Command) error {
	if err := r.applyFlags(cmd); err != nil {
		return err
	}

	durationMS, err := match.ParseDuration(cmd.String("duration"))
	if err != nil {
		return fmt.Errorf("%w: duration must look like 3:45", shared.ErrInvalidFlag)
	}

	track := models.Track{
		Title:      cmd.String("title"),
		Artist:     cmd.String("artist"),
		DurationMS: durationMS,
	}

	r.logger.Info("matching track", "title", track.Title, "artist", track.Artist)

	m, err := r.selector.Resolve(ctx, track)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(m, true)
	}

	r.writePlain("Matched %q\n", m.Title)
	r.writePlain("%s\n", m.URL)
	return nil
}
