package testing

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/desertthunder/spotdl/internal/services"
)

// DisambiguationSection is a leading "did you mean" block. Detection is
// keyed on the presence of itemSectionRenderer, not its content.
const DisambiguationSection = `{"itemSectionRenderer":{"contents":[{"didYouMeanRenderer":{}}]}}`

// CardSection builds a card-style top result section as raw JSON.
func CardSection(title, duration, videoID string) string {
	return fmt.Sprintf(`{
		"musicCardShelfRenderer": {
			"title": {"runs": [{"text": %q, "navigationEndpoint": {"watchEndpoint": {"videoId": %q}}}]},
			"subtitle": {"runs": [{"text": "Song"}, {"text": " • "}, {"text": %q}]}
		}
	}`, title, videoID, duration)
}

// ShelfSection builds a results-list section with a single row as raw JSON.
func ShelfSection(title, duration, videoID string) string {
	return fmt.Sprintf(`{
		"musicShelfRenderer": {
			"contents": [{
				"musicResponsiveListItemRenderer": {
					"flexColumns": [
						{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": %q}]}}},
						{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "Artist"}, {"text": " • "}, {"text": %q}]}}}
					],
					"overlay": {
						"musicItemThumbnailOverlayRenderer": {
							"content": {
								"musicPlayButtonRenderer": {
									"playNavigationEndpoint": {"watchEndpoint": {"videoId": %q}}
								}
							}
						}
					}
				}
			}]
		}
	}`, title, duration, videoID)
}

// SearchDoc assembles raw JSON sections into a decoded [services.SearchResult].
func SearchDoc(t *testing.T, sections ...string) *services.SearchResult {
	t.Helper()

	raw := fmt.Sprintf(
		`{"contents":{"tabbedSearchResultsRenderer":{"tabs":[{"tabRenderer":{"content":{"sectionListRenderer":{"contents":[%s]}}}}]}}}`,
		strings.Join(sections, ","),
	)

	var doc services.SearchResult
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("failed to build search document: %v", err)
	}
	return &doc
}

// SearchDocJSON assembles raw JSON sections into a full response body,
// suitable for httptest handlers.
func SearchDocJSON(sections ...string) string {
	return fmt.Sprintf(
		`{"contents":{"tabbedSearchResultsRenderer":{"tabs":[{"tabRenderer":{"content":{"sectionListRenderer":{"contents":[%s]}}}}]}}}`,
		strings.Join(sections, ","),
	)
}
