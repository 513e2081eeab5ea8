package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/spotdl/internal/download"
	"github.com/desertthunder/spotdl/internal/services"
	"github.com/desertthunder/spotdl/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var playlistService services.PlaylistService
	if svc, err := services.NewSpotifyService(config.Credentials.Spotify); err == nil {
		playlistService = svc
	}

	runner := NewRunner(RunnerOpts{
		Config:     config,
		Playlists:  playlistService,
		Searcher:   services.NewInnerTubeClient(config.Search),
		Dispatcher: download.NewService(config.Downloader, logger),
		Logger:     logger,
	})

	app := &cli.Command{
		Name:    "spotdl",
		Usage:   "Download Spotify playlists as audio from YouTube Music",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		}
		logger.Error("application error", "err", err)
		logger.Fatal("include the message above when reporting this issue on GitHub")
	}
}
