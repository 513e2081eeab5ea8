package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/desertthunder/spotdl/internal/shared"
	"golang.org/x/time/rate"
)

func newTestSpotifyService(server *httptest.Server) *SpotifyService {
	return &SpotifyService{
		baseURL:    server.URL,
		httpClient: server.Client(),
		limiter:    rate.NewLimiter(rate.Inf, 1),
	}
}

func TestSpotifyService(t *testing.T) {
	t.Run("NewSpotifyService", func(t *testing.T) {
		t.Run("requires credentials", func(t *testing.T) {
			if _, err := NewSpotifyService(shared.SpotifyConfig{}); !errors.Is(err, shared.ErrMissingCredentials) {
				t.Errorf("expected ErrMissingCredentials, got %v", err)
			}
			if _, err := NewSpotifyService(shared.SpotifyConfig{ClientID: "id"}); !errors.Is(err, shared.ErrMissingCredentials) {
				t.Errorf("expected ErrMissingCredentials for missing secret, got %v", err)
			}
		})

		t.Run("creates service with credentials", func(t *testing.T) {
			svc, err := NewSpotifyService(shared.SpotifyConfig{ClientID: "id", ClientSecret: "secret"})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if svc.baseURL != spotifyBaseURL {
				t.Errorf("expected baseURL %s, got %s", spotifyBaseURL, svc.baseURL)
			}
			if svc.limiter == nil {
				t.Error("expected rate limiter to be set")
			}
		})
	})

	t.Run("Name", func(t *testing.T) {
		svc := &SpotifyService{}
		if svc.Name() != "Spotify" {
			t.Errorf("expected name Spotify, got %s", svc.Name())
		}
	})

	t.Run("FetchPlaylist", func(t *testing.T) {
		t.Run("maps the first page of items", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/playlists/PL123/tracks" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				if r.URL.Query().Get("limit") != "100" {
					t.Errorf("expected limit=100, got %s", r.URL.Query().Get("limit"))
				}

				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, `{
					"items": [
						{"track": {"name": "Karma Police", "duration_ms": 264000, "artists": [{"name": "Radiohead"}]}},
						{"track": {"name": "Everlong", "duration_ms": 250000, "artists": [{"name": "Foo Fighters"}, {"name": "Someone Else"}]}}
					],
					"total": 2
				}`)
			}))
			defer server.Close()

			tracks, err := newTestSpotifyService(server).FetchPlaylist(context.Background(), "PL123")
			if err != nil {
				t.Fatalf("FetchPlaylist returned error: %v", err)
			}

			if len(tracks) != 2 {
				t.Fatalf("expected 2 tracks, got %d", len(tracks))
			}
			if tracks[0].Title != "Karma Police" || tracks[0].Artist != "Radiohead" || tracks[0].DurationMS != 264000 {
				t.Errorf("unexpected first track: %+v", tracks[0])
			}
			if tracks[1].Artist != "Foo Fighters" {
				t.Errorf("expected primary artist only, got %s", tracks[1].Artist)
			}
		})

		t.Run("a malformed item fails the whole fetch", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, `{
					"items": [
						{"track": {"name": "Karma Police", "duration_ms": 264000, "artists": [{"name": "Radiohead"}]}},
						{"track": {"name": "No Artist Song", "duration_ms": 100000, "artists": []}}
					]
				}`)
			}))
			defer server.Close()

			if _, err := newTestSpotifyService(server).FetchPlaylist(context.Background(), "PL123"); !errors.Is(err, shared.ErrPlaylistFetch) {
				t.Fatalf("expected ErrPlaylistFetch, got %v", err)
			}
		})

		t.Run("API errors fail the fetch", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprint(w, `{"error": {"status": 404, "message": "Not found."}}`)
			}))
			defer server.Close()

			if _, err := newTestSpotifyService(server).FetchPlaylist(context.Background(), "PL404"); !errors.Is(err, shared.ErrPlaylistFetch) {
				t.Fatalf("expected ErrPlaylistFetch, got %v", err)
			}
		})

		t.Run("rejects unparseable identifiers", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("no request should be issued")
			}))
			defer server.Close()

			if _, err := newTestSpotifyService(server).FetchPlaylist(context.Background(), "not a playlist"); !errors.Is(err, shared.ErrPlaylistFetch) {
				t.Fatalf("expected ErrPlaylistFetch, got %v", err)
			}
		})
	})
}

func TestParsePlaylistID(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  string
	}{
		{"raw id", "37i9dQZF1DXcBWIGoYBM5M", "37i9dQZF1DXcBWIGoYBM5M"},
		{"spotify URI", "spotify:playlist:37i9dQZF1DXcBWIGoYBM5M", "37i9dQZF1DXcBWIGoYBM5M"},
		{"open URL", "https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M", "37i9dQZF1DXcBWIGoYBM5M"},
		{"open URL with query", "https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M?si=abcdef", "37i9dQZF1DXcBWIGoYBM5M"},
		{"whitespace trimmed", "  37i9dQZF1DXcBWIGoYBM5M  ", "37i9dQZF1DXcBWIGoYBM5M"},
		{"album URL", "https://open.spotify.com/album/abc123", ""},
		{"garbage", "not a playlist", ""},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParsePlaylistID(tt.input); got != tt.want {
				t.Errorf("ParsePlaylistID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
