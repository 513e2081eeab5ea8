// YouTube Music InnerTube [SearchClient] implementation
//
// Talks directly to the unauthenticated youtubei search endpoint used by the
// music.youtube.com web client. The response document types below mirror only
// the slice of the renderer tree the candidate extractor consumes.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/desertthunder/spotdl/internal/shared"
)

const (
	defaultSearchBaseURL = "https://music.youtube.com"
	innerTubeSearchPath  = "/youtubei/v1/search"

	defaultClientName    = "WEB_REMIX"
	defaultClientVersion = "1.20250203.01.00"
)

// Runs is a list of styled text runs.
type Runs struct {
	Runs []Run `json:"runs"`
}

// Last returns the final run, or nil if there are none.
func (r Runs) Last() *Run {
	if len(r.Runs) == 0 {
		return nil
	}
	return &r.Runs[len(r.Runs)-1]
}

// First returns the first run, or nil if there are none.
func (r Runs) First() *Run {
	if len(r.Runs) == 0 {
		return nil
	}
	return &r.Runs[0]
}

// Run is one text segment, optionally carrying a navigation target.
type Run struct {
	Text               string              `json:"text"`
	NavigationEndpoint *NavigationEndpoint `json:"navigationEndpoint,omitempty"`
}

// NavigationEndpoint wraps a watch target.
type NavigationEndpoint struct {
	WatchEndpoint *WatchEndpoint `json:"watchEndpoint,omitempty"`
}

// WatchEndpoint carries the playable video identifier.
type WatchEndpoint struct {
	VideoID string `json:"videoId"`
}

// MusicCardShelf is the visually distinguished single top result.
type MusicCardShelf struct {
	Title    Runs `json:"title"`
	Subtitle Runs `json:"subtitle"`
}

// MusicShelf is a regular results list.
type MusicShelf struct {
	Contents []MusicShelfItem `json:"contents"`
}

// MusicShelfItem is one row of a results list.
type MusicShelfItem struct {
	MusicResponsiveListItemRenderer *MusicListItem `json:"musicResponsiveListItemRenderer,omitempty"`
}

// MusicListItem is the renderer backing one list row.
type MusicListItem struct {
	FlexColumns []FlexColumn     `json:"flexColumns"`
	Overlay     *MusicItemOverlay `json:"overlay,omitempty"`
}

// FlexColumn is one display column of a list row.
type FlexColumn struct {
	MusicResponsiveListItemFlexColumnRenderer struct {
		Text Runs `json:"text"`
	} `json:"musicResponsiveListItemFlexColumnRenderer"`
}

// MusicItemOverlay carries the play-action overlay of a list row.
type MusicItemOverlay struct {
	MusicItemThumbnailOverlayRenderer struct {
		Content struct {
			MusicPlayButtonRenderer struct {
				PlayNavigationEndpoint *NavigationEndpoint `json:"playNavigationEndpoint,omitempty"`
			} `json:"musicPlayButtonRenderer"`
		} `json:"content"`
	} `json:"musicItemThumbnailOverlayRenderer"`
}

// SearchSection is one section of the result list. Exactly one of the
// renderer fields is populated; ItemSectionRenderer marks the optional
// leading "did you mean" block.
type SearchSection struct {
	ItemSectionRenderer    json.RawMessage `json:"itemSectionRenderer,omitempty"`
	MusicCardShelfRenderer *MusicCardShelf `json:"musicCardShelfRenderer,omitempty"`
	MusicShelfRenderer     *MusicShelf     `json:"musicShelfRenderer,omitempty"`
}

// IsDisambiguation reports whether this section is a "did you mean" block.
func (s SearchSection) IsDisambiguation() bool {
	return len(s.ItemSectionRenderer) > 0
}

// SearchResult is the raw search response document. It is ephemeral, scoped
// to one search call.
type SearchResult struct {
	Contents struct {
		TabbedSearchResultsRenderer struct {
			Tabs []struct {
				TabRenderer struct {
					Content struct {
						SectionListRenderer struct {
							Contents []SearchSection `json:"contents"`
						} `json:"sectionListRenderer"`
					} `json:"content"`
				} `json:"tabRenderer"`
			} `json:"tabs"`
		} `json:"tabbedSearchResultsRenderer"`
	} `json:"contents"`
}

// Sections returns the result sections of the first tab.
func (r *SearchResult) Sections() []SearchSection {
	tabs := r.Contents.TabbedSearchResultsRenderer.Tabs
	if len(tabs) == 0 {
		return nil
	}
	return tabs[0].TabRenderer.Content.SectionListRenderer.Contents
}

// InnerTubeClient implements [SearchClient] against the InnerTube API.
//
// One client is constructed per run and reused for every search.
type InnerTubeClient struct {
	baseURL       string
	clientName    string
	clientVersion string
	httpClient    *http.Client
}

// NewInnerTubeClient creates a search client from the given configuration,
// falling back to the WEB_REMIX web client defaults.
func NewInnerTubeClient(cfg shared.SearchConfig) *InnerTubeClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultSearchBaseURL
	}
	if cfg.ClientName == "" {
		cfg.ClientName = defaultClientName
	}
	if cfg.ClientVersion == "" {
		cfg.ClientVersion = defaultClientVersion
	}

	return &InnerTubeClient{
		baseURL:       cfg.BaseURL,
		clientName:    cfg.ClientName,
		clientVersion: cfg.ClientVersion,
		httpClient:    http.DefaultClient,
	}
}

type innerTubeContext struct {
	Client struct {
		ClientName    string `json:"clientName"`
		ClientVersion string `json:"clientVersion"`
	} `json:"client"`
}

type searchRequest struct {
	Context innerTubeContext `json:"context"`
	Query   string           `json:"query"`
}

// Search issues one free-text search query and decodes the response document.
func (c *InnerTubeClient) Search(ctx context.Context, query string) (*SearchResult, error) {
	body := searchRequest{Query: query}
	body.Context.Client.ClientName = c.clientName
	body.Context.Client.ClientVersion = c.clientVersion

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal search request: %v", shared.ErrAPIRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+innerTubeSearchPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", shared.ErrAPIRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: search API error: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	var result SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode search response: %v", shared.ErrAPIRequest, err)
	}

	return &result, nil
}
