package main

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotdl/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup writes the starter configuration file for the user to fill in.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("verbose") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}

	configPath := cmd.String("config")
	r.logger.Info("creating config file", "path", configPath)

	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}

	r.writePlain("Created %s\n", configPath)
	r.writePlain("Add your Spotify credentials under [credentials.spotify],\n")
	r.writePlain("or export SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET.\n")
	return nil
}
