package match

import (
	"fmt"

	"github.com/desertthunder/spotdl/internal/models"
	"github.com/desertthunder/spotdl/internal/services"
	"github.com/desertthunder/spotdl/internal/shared"
)

// Extract pulls both candidates out of a search result document: the card
// result and the first row of the results list.
//
// Each field is reached through its own accessor so a shape mismatch reports
// the exact missing field along with the original query context. Extraction
// failure is not a "no results" state — the document either matches the
// expected shape or the track is unmatchable.
func Extract(doc *services.SearchResult, track models.Track) (top, first models.Candidate, err error) {
	sections, err := resultSections(doc, track)
	if err != nil {
		return models.Candidate{}, models.Candidate{}, err
	}

	if top, err = cardCandidate(sections[0], track); err != nil {
		return models.Candidate{}, models.Candidate{}, err
	}

	if first, err = listCandidate(sections[1], track); err != nil {
		return models.Candidate{}, models.Candidate{}, err
	}

	return top, first, nil
}

// resultSections returns the card and shelf sections, discarding a leading
// "did you mean" block when one is present. Detection is structural: the
// block carries an itemSectionRenderer key regardless of its content.
func resultSections(doc *services.SearchResult, track models.Track) ([]services.SearchSection, error) {
	sections := doc.Sections()
	if len(sections) > 0 && sections[0].IsDisambiguation() {
		sections = sections[1:]
	}

	if len(sections) < 2 {
		return nil, extractErr("result sections", track)
	}
	return sections, nil
}

// cardCandidate reads the card-style top result: title from the first title
// run, duration from the last subtitle run, source id from the title run's
// watch endpoint.
func cardCandidate(section services.SearchSection, track models.Track) (models.Candidate, error) {
	card := section.MusicCardShelfRenderer
	if card == nil {
		return models.Candidate{}, extractErr("musicCardShelfRenderer", track)
	}

	title := card.Title.First()
	if title == nil {
		return models.Candidate{}, extractErr("card title runs", track)
	}

	duration := card.Subtitle.Last()
	if duration == nil {
		return models.Candidate{}, extractErr("card subtitle runs", track)
	}

	if title.NavigationEndpoint == nil || title.NavigationEndpoint.WatchEndpoint == nil || title.NavigationEndpoint.WatchEndpoint.VideoID == "" {
		return models.Candidate{}, extractErr("card watch endpoint", track)
	}

	return models.Candidate{
		SourceID:     title.NavigationEndpoint.WatchEndpoint.VideoID,
		DisplayTitle: title.Text,
		DurationText: duration.Text,
	}, nil
}

// listCandidate reads the first row of the shelf-style results list: title
// from column 0's last run, duration from column 1's last run, source id
// from the play-action overlay.
func listCandidate(section services.SearchSection, track models.Track) (models.Candidate, error) {
	shelf := section.MusicShelfRenderer
	if shelf == nil {
		return models.Candidate{}, extractErr("musicShelfRenderer", track)
	}

	if len(shelf.Contents) == 0 {
		return models.Candidate{}, extractErr("shelf rows", track)
	}

	item := shelf.Contents[0].MusicResponsiveListItemRenderer
	if item == nil {
		return models.Candidate{}, extractErr("list item renderer", track)
	}

	if len(item.FlexColumns) < 2 {
		return models.Candidate{}, extractErr("list item columns", track)
	}

	title := item.FlexColumns[0].MusicResponsiveListItemFlexColumnRenderer.Text.Last()
	if title == nil {
		return models.Candidate{}, extractErr("list title runs", track)
	}

	duration := item.FlexColumns[1].MusicResponsiveListItemFlexColumnRenderer.Text.Last()
	if duration == nil {
		return models.Candidate{}, extractErr("list duration runs", track)
	}

	if item.Overlay == nil {
		return models.Candidate{}, extractErr("list item overlay", track)
	}

	play := item.Overlay.MusicItemThumbnailOverlayRenderer.Content.MusicPlayButtonRenderer.PlayNavigationEndpoint
	if play == nil || play.WatchEndpoint == nil || play.WatchEndpoint.VideoID == "" {
		return models.Candidate{}, extractErr("list play endpoint", track)
	}

	return models.Candidate{
		SourceID:     play.WatchEndpoint.VideoID,
		DisplayTitle: title.Text,
		DurationText: duration.Text,
	}, nil
}

func extractErr(field string, track models.Track) error {
	return fmt.Errorf("%w: missing %s for %q by %q", shared.ErrExtraction, field, track.Title, track.Artist)
}
