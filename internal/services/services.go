// package services defines interfaces for the upstream catalog and search APIs
//
// Spotify (playlist metadata), YouTube Music (InnerTube search)
package services

import (
	"context"

	"github.com/desertthunder/spotdl/internal/models"
)

// PlaylistService fetches ordered track descriptors for a playlist.
type PlaylistService interface {
	// FetchPlaylist returns the first page of track descriptors for the
	// given playlist ID, URI or URL. A malformed item fails the whole fetch.
	FetchPlaylist(ctx context.Context, idOrURL string) ([]models.Track, error)

	// Name returns the name of the service (e.g., "Spotify")
	Name() string
}

// SearchClient issues one free-text search and returns the raw result document.
type SearchClient interface {
	Search(ctx context.Context, query string) (*SearchResult, error)
}
