// package download hands resolved URLs to the external yt-dlp downloader
package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotdl/internal/shared"
	"github.com/lrstanley/go-ytdlp"
)

// Dispatcher hands a list of playback URLs to a downloader.
type Dispatcher interface {
	// Dispatch downloads every URL into dir as audio files. Individual
	// track failures are swallowed by the downloader; only a whole-call
	// failure is returned.
	Dispatch(ctx context.Context, urls []string, dir string) error
}

// Service implements [Dispatcher] on top of yt-dlp.
//
// The downloader is configured for best-available audio transcoded to the
// configured codec, with bounded retries per network fragment, continuing
// past individual download failures, and preserving metadata and chapters.
type Service struct {
	cfg    shared.DownloaderConfig
	logger *log.Logger
}

// NewService creates a dispatcher from downloader configuration.
func NewService(cfg shared.DownloaderConfig, logger *log.Logger) *Service {
	if cfg.Codec == "" {
		cfg.Codec = "m4a"
	}
	if cfg.Quality == "" {
		cfg.Quality = "5"
	}
	if cfg.FragmentRetries <= 0 {
		cfg.FragmentRetries = 10
	}
	if cfg.Retries <= 0 {
		cfg.Retries = 10
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Service{cfg: cfg, logger: logger}
}

// Dispatch invokes yt-dlp once for the whole URL list.
func (s *Service) Dispatch(ctx context.Context, urls []string, dir string) error {
	if len(urls) == 0 {
		s.logger.Warn("no URLs to download")
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create output directory: %v", shared.ErrDownload, err)
	}

	s.logger.Info("downloading songs", "count", len(urls), "dir", dir)

	dl := ytdlp.New().
		Format("bestaudio/best").
		ExtractAudio().
		AudioFormat(s.cfg.Codec).
		AudioQuality(s.cfg.Quality).
		FragmentRetries(strconv.Itoa(s.cfg.FragmentRetries)).
		Retries(strconv.Itoa(s.cfg.Retries)).
		IgnoreErrors().
		EmbedMetadata().
		EmbedChapters().
		Output(filepath.Join(dir, "%(title)s.%(ext)s"))

	if _, err := dl.Run(ctx, urls...); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrDownload, err)
	}

	s.logger.Info("download complete", "dir", dir)
	return nil
}
