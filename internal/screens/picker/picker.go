package picker

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/versemind/internal/deck"
	"github.com/abhisek/versemind/internal/progress"
	"github.com/abhisek/versemind/internal/router"
	"github.com/abhisek/versemind/internal/screen"
	reviewscreen "github.com/abhisek/versemind/internal/screens/review"
	"github.com/abhisek/versemind/internal/ui/components"
	"github.com/abhisek/versemind/internal/ui/layout"
	"github.com/abhisek/versemind/internal/ui/theme"
)

// visibleRows caps the rendered slice of the deck list.
const visibleRows = 12

type listLoadedMsg struct {
	Infos []deck.Info
	Err   error
}

// Screen lets the learner search the surah catalogue, cycle the
// translation, and start a review session.
type Screen struct {
	source      deck.Source
	rec         *progress.Reconciler
	translation string

	search   components.TextInput
	infos    []deck.Info
	filtered []deck.Info
	selected int
	offset   int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the picker. The catalogue loads in Init.
func New(source deck.Source, rec *progress.Reconciler, translation string) *Screen {
	if translation == "" {
		translation = deck.DefaultTranslation
	}
	return &Screen{
		source:      source,
		rec:         rec,
		translation: translation,
		search:      components.NewTextInput("Search by name or number (e.g. 2:255)...", 40),
	}
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(
		s.search.Init(),
		func() tea.Msg {
			infos, err := s.source.List(context.Background())
			return listLoadedMsg{Infos: infos, Err: err}
		},
	)
}

func (s *Screen) Title() string {
	return "Choose Surah"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Study"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Translation"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = "Could not load the surah list. Check your connection."
			return s, nil
		}
		s.infos = msg.Infos
		s.applyFilter()
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up":
			if s.selected > 0 {
				s.selected--
			}
			s.clampOffset()
			return s, nil
		case "down":
			if s.selected < len(s.filtered)-1 {
				s.selected++
			}
			s.clampOffset()
			return s, nil
		case "tab":
			s.translation = deck.NextTranslation(s.translation)
			return s, nil
		case "enter":
			if s.selected >= 0 && s.selected < len(s.filtered) {
				number := s.filtered[s.selected].Number
				return s, func() tea.Msg {
					return router.PushScreenMsg{
						Screen: reviewscreen.New(s.source, s.rec, number, s.translation),
					}
				}
			}
			return s, nil
		}
	}

	// Everything else feeds the search box.
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.applyFilter()
	return s, cmd
}

func (s *Screen) applyFilter() {
	s.filtered = deck.Filter(s.infos, s.search.Value())
	if s.selected >= len(s.filtered) {
		s.selected = len(s.filtered) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
	s.clampOffset()
}

func (s *Screen) clampOffset() {
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+visibleRows {
		s.offset = s.selected - visibleRows + 1
	}
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Again.Render(s.errMsg))
	}
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading surah list..."))
	}

	var b strings.Builder
	b.WriteString("\n  " + s.search.View() + "\n")
	b.WriteString("  " + theme.Hint.Render(
		"Translation: "+deck.TranslationName(s.translation)+" (Tab to change)") + "\n\n")

	if len(s.filtered) == 0 {
		b.WriteString("  " + theme.Hint.Render("No surahs match."))
		return b.String()
	}

	end := s.offset + visibleRows
	if end > len(s.filtered) {
		end = len(s.filtered)
	}
	for i := s.offset; i < end; i++ {
		b.WriteString(s.renderRow(s.filtered[i], i == s.selected) + "\n")
	}
	if end < len(s.filtered) {
		b.WriteString("  " + theme.Hint.Render(fmt.Sprintf("… %d more", len(s.filtered)-end)))
	}
	return b.String()
}

func (s *Screen) renderRow(in deck.Info, selected bool) string {
	mastered := 0
	for _, st := range s.rec.DeckProgress(fmt.Sprintf("%d", in.Number)) {
		if st == progress.StatusMastered {
			mastered++
		}
	}

	badge := ""
	if in.Local {
		badge = "  [local]"
	}
	done := ""
	if in.ItemCount > 0 && mastered == in.ItemCount {
		done = "  ✓"
	} else if mastered > 0 {
		done = fmt.Sprintf("  %d/%d", mastered, in.ItemCount)
	}

	line := fmt.Sprintf("%3d. %-24s %s  (%d verses)%s%s",
		in.Number, in.EnglishName, in.Name, in.ItemCount, badge, done)

	if selected {
		return theme.Selected.Render("  ▸ " + line)
	}
	return theme.Unselected.Render("    " + line)
}
