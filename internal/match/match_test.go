package match

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/spotdl/internal/models"
	"github.com/desertthunder/spotdl/internal/shared"
	tu "github.com/desertthunder/spotdl/internal/testing"
)

var target = models.Track{Title: "Paranoid Android", Artist: "Radiohead", DurationMS: 354000}

func TestExtract(t *testing.T) {
	t.Run("extracts both candidates", func(t *testing.T) {
		doc := tu.SearchDoc(t,
			tu.CardSection("Paranoid Android", "6:23", "card123"),
			tu.ShelfSection("Paranoid Android (Remaster)", "6:27", "list456"),
		)

		top, first, err := Extract(doc, target)
		if err != nil {
			t.Fatalf("Extract returned error: %v", err)
		}

		if top.SourceID != "card123" || top.DisplayTitle != "Paranoid Android" || top.DurationText != "6:23" {
			t.Errorf("unexpected card candidate: %+v", top)
		}
		if first.SourceID != "list456" || first.DisplayTitle != "Paranoid Android (Remaster)" || first.DurationText != "6:27" {
			t.Errorf("unexpected list candidate: %+v", first)
		}
	})

	t.Run("skips a leading disambiguation block", func(t *testing.T) {
		doc := tu.SearchDoc(t,
			tu.DisambiguationSection,
			tu.CardSection("Song", "3:45", "card123"),
			tu.ShelfSection("Song", "3:50", "list456"),
		)

		top, first, err := Extract(doc, target)
		if err != nil {
			t.Fatalf("Extract returned error: %v", err)
		}
		if top.SourceID != "card123" || first.SourceID != "list456" {
			t.Errorf("disambiguation block was not skipped: %+v / %+v", top, first)
		}
	})

	t.Run("fails when the card section is missing", func(t *testing.T) {
		doc := tu.SearchDoc(t,
			tu.ShelfSection("Song", "3:50", "list456"),
			tu.ShelfSection("Other", "4:00", "list789"),
		)

		_, _, err := Extract(doc, target)
		if !errors.Is(err, shared.ErrExtraction) {
			t.Fatalf("expected ErrExtraction, got %v", err)
		}
	})

	t.Run("fails when the list section is missing", func(t *testing.T) {
		doc := tu.SearchDoc(t, tu.CardSection("Song", "3:45", "card123"))

		_, _, err := Extract(doc, target)
		if !errors.Is(err, shared.ErrExtraction) {
			t.Fatalf("expected ErrExtraction, got %v", err)
		}
	})

	t.Run("extraction errors carry the query context", func(t *testing.T) {
		doc := tu.SearchDoc(t)

		_, _, err := Extract(doc, target)
		if err == nil {
			t.Fatal("expected error for empty document")
		}
		if !strings.Contains(err.Error(), "Paranoid Android") || !strings.Contains(err.Error(), "Radiohead") {
			t.Errorf("error should identify title and artist, got: %v", err)
		}
	})

	t.Run("fails on a row without a play endpoint", func(t *testing.T) {
		broken := `{"musicShelfRenderer":{"contents":[{"musicResponsiveListItemRenderer":{
			"flexColumns":[
				{"musicResponsiveListItemFlexColumnRenderer":{"text":{"runs":[{"text":"Song"}]}}},
				{"musicResponsiveListItemFlexColumnRenderer":{"text":{"runs":[{"text":"3:50"}]}}}
			]
		}}]}}`
		doc := tu.SearchDoc(t, tu.CardSection("Song", "3:45", "card123"), broken)

		_, _, err := Extract(doc, target)
		if !errors.Is(err, shared.ErrExtraction) {
			t.Fatalf("expected ErrExtraction, got %v", err)
		}
		if !strings.Contains(err.Error(), "overlay") {
			t.Errorf("error should name the missing field, got: %v", err)
		}
	})
}

func TestSelect(t *testing.T) {
	t.Run("selects the card result when it is closer", func(t *testing.T) {
		// target 354000ms; card at 5:55 = 355000 (delta 1000), list at 6:07 = 367000 (delta 13000)
		doc := tu.SearchDoc(t,
			tu.CardSection("Card Version", "5:55", "card123"),
			tu.ShelfSection("List Version", "6:07", "list456"),
		)

		m, err := Select(target, doc)
		if err != nil {
			t.Fatalf("Select returned error: %v", err)
		}
		if m.URL != "https://music.youtube.com/watch?v=card123" {
			t.Errorf("expected card URL, got %s", m.URL)
		}
		if m.Title != "Card Version" {
			t.Errorf("expected card title, got %s", m.Title)
		}
	})

	t.Run("selects the list result when it is closer", func(t *testing.T) {
		doc := tu.SearchDoc(t,
			tu.CardSection("Card Version", "6:07", "card123"),
			tu.ShelfSection("List Version", "5:55", "list456"),
		)

		m, err := Select(target, doc)
		if err != nil {
			t.Fatalf("Select returned error: %v", err)
		}
		if m.URL != "https://music.youtube.com/watch?v=list456" {
			t.Errorf("expected list URL, got %s", m.URL)
		}
	})

	t.Run("ties select the list result", func(t *testing.T) {
		// Both candidates at 5:54 = 354000, delta 0. The tie direction is a
		// compatibility guarantee.
		doc := tu.SearchDoc(t,
			tu.CardSection("Card Version", "5:54", "card123"),
			tu.ShelfSection("List Version", "5:54", "list456"),
		)

		m, err := Select(target, doc)
		if err != nil {
			t.Fatalf("Select returned error: %v", err)
		}
		if m.URL != "https://music.youtube.com/watch?v=list456" {
			t.Errorf("tie must select the list candidate, got %s", m.URL)
		}
		if m.Title != "List Version" {
			t.Errorf("tie must report the list title, got %s", m.Title)
		}
	})

	t.Run("converts extraction failures to match errors", func(t *testing.T) {
		doc := tu.SearchDoc(t)

		_, err := Select(target, doc)
		if !errors.Is(err, shared.ErrNoMatch) {
			t.Fatalf("expected ErrNoMatch, got %v", err)
		}
		if !strings.Contains(err.Error(), target.Title) {
			t.Errorf("match error should identify the track, got: %v", err)
		}
	})

	t.Run("converts malformed durations to match errors", func(t *testing.T) {
		doc := tu.SearchDoc(t,
			tu.CardSection("Card Version", "about four minutes", "card123"),
			tu.ShelfSection("List Version", "5:54", "list456"),
		)

		_, err := Select(target, doc)
		if !errors.Is(err, shared.ErrNoMatch) {
			t.Fatalf("expected ErrNoMatch, got %v", err)
		}
	})
}

func TestSelectorResolve(t *testing.T) {
	t.Run("searches with the title-artist query", func(t *testing.T) {
		searcher := &tu.MockSearcher{
			Doc: tu.SearchDoc(t,
				tu.CardSection("Card", "5:55", "card123"),
				tu.ShelfSection("List", "6:07", "list456"),
			),
		}

		m, err := NewSelector(searcher).Resolve(context.Background(), target)
		if err != nil {
			t.Fatalf("Resolve returned error: %v", err)
		}

		if len(searcher.Queries) != 1 || searcher.Queries[0] != "Paranoid Android Radiohead" {
			t.Errorf("unexpected queries: %v", searcher.Queries)
		}
		if m.URL != "https://music.youtube.com/watch?v=card123" {
			t.Errorf("unexpected match URL: %s", m.URL)
		}
	})

	t.Run("wraps search failures as match errors", func(t *testing.T) {
		searcher := &tu.MockSearcher{Err: errors.New("boom")}

		_, err := NewSelector(searcher).Resolve(context.Background(), target)
		if !errors.Is(err, shared.ErrNoMatch) {
			t.Fatalf("expected ErrNoMatch, got %v", err)
		}
	})
}
