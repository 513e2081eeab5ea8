package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/spotdl/internal/models"
)

// ReviewModel lets the user inspect resolved matches and drop bad ones
// before the downloader runs. Every match starts included.
type ReviewModel struct {
	matchList list.Model
	keys      keyMap
	help      help.Model
	confirmed bool
	quitting  bool
	width     int
	height    int
}

var _ tea.Model = (*ReviewModel)(nil)

// NewReview creates a review model over the given matches.
func NewReview(matches []models.Match) *ReviewModel {
	items := make([]list.Item, len(matches))
	for i, m := range matches {
		items[i] = matchItem{match: m}
	}

	delegate := list.NewDefaultDelegate()
	matchList := list.New(items, delegate, 0, 0)
	matchList.Title = fmt.Sprintf("Review %d matched tracks", len(matches))
	matchList.SetShowHelp(false)
	matchList.SetFilteringEnabled(false)

	return &ReviewModel{
		matchList: matchList,
		keys:      newKeyMap(),
		help:      help.New(),
	}
}

func (m *ReviewModel) Init() tea.Cmd { return nil }

func (m *ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.matchList.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case " ", "x":
			m.toggleCurrent()
			return m, nil
		case "enter":
			m.confirmed = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.matchList, cmd = m.matchList.Update(msg)
	return m, cmd
}

func (m *ReviewModel) View() string {
	if m.quitting {
		return styles.warn.Render("Download cancelled.\n")
	}
	if m.confirmed {
		return styles.ok.Render(fmt.Sprintf("Downloading %d tracks...\n", len(m.Selected())))
	}

	helpView := m.help.ShortHelpView(m.keys.ShortHelp())
	return fmt.Sprintf("%s\n\n%s", m.matchList.View(), helpView)
}

func (m *ReviewModel) toggleCurrent() {
	idx := m.matchList.Index()
	if item, ok := m.matchList.SelectedItem().(matchItem); ok {
		item.excluded = !item.excluded
		m.matchList.SetItem(idx, item)
	}
}

// Confirmed reports whether the user chose to proceed with the download.
func (m *ReviewModel) Confirmed() bool { return m.confirmed }

// Selected returns the matches still included, preserving order.
func (m *ReviewModel) Selected() []models.Match {
	var selected []models.Match
	for _, item := range m.matchList.Items() {
		if mi, ok := item.(matchItem); ok && !mi.excluded {
			selected = append(selected, mi.match)
		}
	}
	return selected
}

// Review runs the interactive review and returns the matches the user kept.
// The second return value is false when the user cancelled.
func Review(matches []models.Match) ([]models.Match, bool, error) {
	model := NewReview(matches)

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, false, fmt.Errorf("review UI failed: %w", err)
	}

	reviewed, ok := final.(*ReviewModel)
	if !ok || !reviewed.Confirmed() {
		return nil, false, nil
	}
	return reviewed.Selected(), true, nil
}
