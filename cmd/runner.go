package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotdl/internal/download"
	"github.com/desertthunder/spotdl/internal/match"
	"github.com/desertthunder/spotdl/internal/models"
	"github.com/desertthunder/spotdl/internal/services"
	"github.com/desertthunder/spotdl/internal/shared"
	"github.com/desertthunder/spotdl/internal/tasks"
	"github.com/desertthunder/spotdl/internal/ui"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	playlists  services.PlaylistService
	searcher   services.SearchClient
	dispatcher download.Dispatcher
	pacer      shared.Pacer
	selector   *match.Selector
	engine     *tasks.Engine
	logger     *log.Logger
	output     io.Writer
	review     func(matches []models.Match) ([]models.Match, bool, error)
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Playlists  services.PlaylistService
	Searcher   services.SearchClient
	Dispatcher download.Dispatcher
	Pacer      shared.Pacer
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Pacer == nil {
		opts.Pacer = shared.NewUniformPacer(opts.Config.Pacing)
	}

	selector := match.NewSelector(opts.Searcher)
	engine := tasks.NewEngine(opts.Playlists, selector, opts.Dispatcher, opts.Pacer, opts.Logger)

	return &Runner{
		config:     opts.Config,
		playlists:  opts.Playlists,
		searcher:   opts.Searcher,
		dispatcher: opts.Dispatcher,
		pacer:      opts.Pacer,
		selector:   selector,
		engine:     engine,
		logger:     opts.Logger,
		output:     opts.Output,
		review:     ui.Review,
	}
}

// reconfigure swaps in a freshly loaded config and rebuilds every collaborator
// from it. Used when an action receives an explicit --config path.
func (r *Runner) reconfigure(cfg *shared.Config) {
	r.config = cfg

	r.playlists = nil
	if svc, err := services.NewSpotifyService(cfg.Credentials.Spotify); err == nil {
		r.playlists = svc
	}

	r.searcher = services.NewInnerTubeClient(cfg.Search)
	r.dispatcher = download.NewService(cfg.Downloader, r.logger)
	r.pacer = shared.NewUniformPacer(cfg.Pacing)
	r.selector = match.NewSelector(r.searcher)
	r.engine = tasks.NewEngine(r.playlists, r.selector, r.dispatcher, r.pacer, r.logger)
}

// applyFlags handles flags shared by every command before its action runs.
func (r *Runner) applyFlags(cmd *cli.Command) error {
	if cmd.Bool("verbose") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}

	if path := cmd.String("config"); path != "" {
		cfg, err := shared.LoadConfig(path)
		if err != nil {
			return err
		}
		r.reconfigure(cfg)
	}

	return nil
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		downloadCommand, tracksCommand, matchCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}

// formatDuration renders milliseconds as m:ss for display.
func formatDuration(ms int64) string {
	total := ms / 1000
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
