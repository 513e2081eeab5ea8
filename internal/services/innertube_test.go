package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desertthunder/spotdl/internal/shared"
)

func sharedSearchConfig(baseURL string) shared.SearchConfig {
	return shared.SearchConfig{BaseURL: baseURL}
}

// sectionList wraps raw section JSON in the full response envelope.
func sectionList(sections ...string) string {
	return fmt.Sprintf(
		`{"contents":{"tabbedSearchResultsRenderer":{"tabs":[{"tabRenderer":{"content":{"sectionListRenderer":{"contents":[%s]}}}}]}}}`,
		strings.Join(sections, ","),
	)
}

func TestInnerTubeClient(t *testing.T) {
	t.Run("NewInnerTubeClient", func(t *testing.T) {
		t.Run("applies WEB_REMIX defaults", func(t *testing.T) {
			client := NewInnerTubeClient(sharedSearchConfig(""))

			if client.baseURL != defaultSearchBaseURL {
				t.Errorf("expected baseURL %s, got %s", defaultSearchBaseURL, client.baseURL)
			}
			if client.clientName != defaultClientName {
				t.Errorf("expected client name %s, got %s", defaultClientName, client.clientName)
			}
			if client.clientVersion != defaultClientVersion {
				t.Errorf("expected client version %s, got %s", defaultClientVersion, client.clientVersion)
			}
		})

		t.Run("keeps configured overrides", func(t *testing.T) {
			client := NewInnerTubeClient(sharedSearchConfig("http://localhost:9999"))
			if client.baseURL != "http://localhost:9999" {
				t.Errorf("expected custom baseURL, got %s", client.baseURL)
			}
		})
	})

	t.Run("Search", func(t *testing.T) {
		t.Run("posts the query with client context", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/youtubei/v1/search" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				if r.Method != http.MethodPost {
					t.Errorf("expected POST, got %s", r.Method)
				}

				body, _ := io.ReadAll(r.Body)
				var req struct {
					Context struct {
						Client struct {
							ClientName    string `json:"clientName"`
							ClientVersion string `json:"clientVersion"`
						} `json:"client"`
					} `json:"context"`
					Query string `json:"query"`
				}
				if err := json.Unmarshal(body, &req); err != nil {
					t.Fatalf("failed to decode request body: %v", err)
				}
				if req.Query != "Karma Police Radiohead" {
					t.Errorf("unexpected query %q", req.Query)
				}
				if req.Context.Client.ClientName != defaultClientName {
					t.Errorf("unexpected client name %q", req.Context.Client.ClientName)
				}
				if req.Context.Client.ClientVersion != defaultClientVersion {
					t.Errorf("unexpected client version %q", req.Context.Client.ClientVersion)
				}

				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, sectionList(
					`{"musicCardShelfRenderer":{"title":{"runs":[{"text":"Karma Police","navigationEndpoint":{"watchEndpoint":{"videoId":"abc123"}}}]},"subtitle":{"runs":[{"text":"Song"},{"text":" • "},{"text":"4:24"}]}}}`,
					`{"musicShelfRenderer":{"contents":[]}}`,
				))
			}))
			defer server.Close()

			doc, err := NewInnerTubeClient(sharedSearchConfig(server.URL)).Search(context.Background(), "Karma Police Radiohead")
			if err != nil {
				t.Fatalf("Search returned error: %v", err)
			}

			sections := doc.Sections()
			if len(sections) != 2 {
				t.Fatalf("expected 2 sections, got %d", len(sections))
			}

			card := sections[0].MusicCardShelfRenderer
			if card == nil {
				t.Fatal("expected card section")
			}
			if card.Title.First() == nil || card.Title.First().Text != "Karma Police" {
				t.Errorf("unexpected card title: %+v", card.Title)
			}
			if card.Subtitle.Last() == nil || card.Subtitle.Last().Text != "4:24" {
				t.Errorf("unexpected card subtitle: %+v", card.Subtitle)
			}
		})

		t.Run("flags disambiguation sections", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, sectionList(`{"itemSectionRenderer":{"contents":[{"didYouMeanRenderer":{}}]}}`))
			}))
			defer server.Close()

			doc, err := NewInnerTubeClient(sharedSearchConfig(server.URL)).Search(context.Background(), "qry")
			if err != nil {
				t.Fatalf("Search returned error: %v", err)
			}

			sections := doc.Sections()
			if len(sections) != 1 || !sections[0].IsDisambiguation() {
				t.Errorf("expected a disambiguation section, got %+v", sections)
			}
		})

		t.Run("fails on API errors", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			}))
			defer server.Close()

			if _, err := NewInnerTubeClient(sharedSearchConfig(server.URL)).Search(context.Background(), "qry"); err == nil {
				t.Error("expected error for status 429")
			}
		})

		t.Run("fails on malformed response bodies", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "not json")
			}))
			defer server.Close()

			if _, err := NewInnerTubeClient(sharedSearchConfig(server.URL)).Search(context.Background(), "qry"); err == nil {
				t.Error("expected error for malformed body")
			}
		})
	})
}

func TestRuns(t *testing.T) {
	t.Run("First and Last on empty runs", func(t *testing.T) {
		var r Runs
		if r.First() != nil || r.Last() != nil {
			t.Error("expected nil for empty runs")
		}
	})

	t.Run("First and Last on populated runs", func(t *testing.T) {
		r := Runs{Runs: []Run{{Text: "a"}, {Text: "b"}, {Text: "c"}}}
		if r.First().Text != "a" || r.Last().Text != "c" {
			t.Errorf("unexpected runs: first=%v last=%v", r.First(), r.Last())
		}
	})
}
