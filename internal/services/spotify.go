// Spotify API implementation of [PlaylistService]
//
// Spotify API response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/desertthunder/spotdl/internal/models"
	"github.com/desertthunder/spotdl/internal/shared"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

const (
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"

	// Only the first page of playlist items is read.
	playlistPageLimit = 100

	// Requests per second against the Spotify API.
	spotifyRateLimit = 5
)

// SpotifyArtist represents a Spotify artist.
type SpotifyArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// SpotifyTrack represents a Spotify track.
type SpotifyTrack struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Artists    []SpotifyArtist `json:"artists"`
	DurationMS int64           `json:"duration_ms"`
	Explicit   bool            `json:"explicit"`
	URI        string          `json:"uri"`
}

// SpotifyPlaylistTrack represents a track within a playlist context.
type SpotifyPlaylistTrack struct {
	AddedAt string        `json:"added_at"`
	Track   *SpotifyTrack `json:"track"`
}

// SpotifyPaginatedTracks represents one page of playlist items.
type SpotifyPaginatedTracks struct {
	Items  []SpotifyPlaylistTrack `json:"items"`
	Total  int                    `json:"total"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
	Next   *string                `json:"next"`
}

// SpotifyService implements [PlaylistService] against the Spotify Web API.
//
// Playlist reads need no user consent, so authentication uses the OAuth2
// client credentials grant; the [clientcredentials.Config] client refreshes
// the token transparently. Requests are throttled with a [rate.Limiter].
type SpotifyService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewSpotifyService creates a Spotify service from client credentials.
func NewSpotifyService(creds shared.SpotifyConfig) (*SpotifyService, error) {
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return nil, fmt.Errorf("%w: spotify client_id and client_secret are required", shared.ErrMissingCredentials)
	}

	conf := &clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     spotifyTokenURL,
	}

	return &SpotifyService{
		baseURL:    spotifyBaseURL,
		httpClient: conf.Client(context.Background()),
		limiter:    rate.NewLimiter(rate.Limit(spotifyRateLimit), 1),
	}, nil
}

// Name returns the service name.
func (s *SpotifyService) Name() string {
	return "Spotify"
}

func (s *SpotifyService) doRequest(ctx context.Context, endpoint string, result any) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", shared.ErrAPIRequest, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error struct {
				Status  int    `json:"status"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error.Message != "" {
			return fmt.Errorf("%w: spotify API error (status %d): %s", shared.ErrAPIRequest, resp.StatusCode, errResp.Error.Message)
		}
		return fmt.Errorf("%w: spotify API error: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", shared.ErrAPIRequest, err)
	}

	return nil
}

// FetchPlaylist retrieves ordered track descriptors for a playlist.
//
// Only the first page (100 items) is read. Any item missing its title,
// artist list or duration fails the whole fetch.
func (s *SpotifyService) FetchPlaylist(ctx context.Context, idOrURL string) ([]models.Track, error) {
	id := ParsePlaylistID(idOrURL)
	if id == "" {
		return nil, fmt.Errorf("%w: cannot determine playlist id from %q", shared.ErrPlaylistFetch, idOrURL)
	}

	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", playlistPageLimit))
	params.Set("fields", "items(track(name,duration_ms,artists(name))),total,next")
	endpoint := fmt.Sprintf("/playlists/%s/tracks?%s", id, params.Encode())

	var page SpotifyPaginatedTracks
	if err := s.doRequest(ctx, endpoint, &page); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrPlaylistFetch, err)
	}

	tracks := make([]models.Track, 0, len(page.Items))
	for i, item := range page.Items {
		if item.Track == nil || item.Track.Name == "" {
			return nil, fmt.Errorf("%w: item %d has no track data", shared.ErrPlaylistFetch, i)
		}
		if len(item.Track.Artists) == 0 || item.Track.Artists[0].Name == "" {
			return nil, fmt.Errorf("%w: item %d (%s) has no artist", shared.ErrPlaylistFetch, i, item.Track.Name)
		}
		if item.Track.DurationMS <= 0 {
			return nil, fmt.Errorf("%w: item %d (%s) has no duration", shared.ErrPlaylistFetch, i, item.Track.Name)
		}

		tracks = append(tracks, models.Track{
			Title:      item.Track.Name,
			Artist:     item.Track.Artists[0].Name,
			DurationMS: item.Track.DurationMS,
		})
	}

	return tracks, nil
}

// ParsePlaylistID extracts a playlist ID from a raw ID, a spotify: URI or an
// open.spotify.com URL.
func ParsePlaylistID(idOrURL string) string {
	s := strings.TrimSpace(idOrURL)

	if strings.HasPrefix(s, "spotify:playlist:") {
		return strings.TrimPrefix(s, "spotify:playlist:")
	}

	if strings.Contains(s, "open.spotify.com") {
		if u, err := url.Parse(s); err == nil {
			parts := strings.Split(strings.Trim(u.Path, "/"), "/")
			for i, part := range parts {
				if part == "playlist" && i+1 < len(parts) {
					return parts[i+1]
				}
			}
		}
		return ""
	}

	if strings.ContainsAny(s, "/:? ") {
		return ""
	}
	return s
}
