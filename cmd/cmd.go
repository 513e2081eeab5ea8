// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
	}
}

// downloadCommand runs the full fetch, resolve and download pipeline
func downloadCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "download",
		Aliases: []string{"dl"},
		Usage:   "Download every track of a Spotify playlist from YouTube Music",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "playlist",
			},
		},
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Directory to download audio files into",
				Value:   "./downloads",
			},
			&cli.BoolFlag{
				Name:  "review",
				Usage: "Interactively review matches before downloading",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Resolve matches but skip the downloader",
			},
			&cli.StringFlag{
				Name:  "manifest",
				Usage: "Write a resolve manifest to this path (.json or .csv)",
			},
		},
		Action: r.Download,
	}
}

// tracksCommand lists a playlist's tracks without resolving them
func tracksCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tracks",
		Usage: "List the tracks of a Spotify playlist",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "playlist",
			},
		},
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Tracks,
	}
}

// matchCommand resolves a single track against YouTube Music
func matchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "match",
		Usage: "Find the YouTube Music match for a single track",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:     "title",
				Usage:    "Track title",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "artist",
				Usage:    "Track artist",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "duration",
				Usage:    "Track duration as m:ss",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Match,
	}
}

// setupCommand writes a starter configuration file
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create a starter config.toml",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to write the configuration file to",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}
