package review

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/versemind/internal/deck"
	"github.com/abhisek/versemind/internal/progress"
	rev "github.com/abhisek/versemind/internal/review"
	"github.com/abhisek/versemind/internal/router"
	"github.com/abhisek/versemind/internal/screen"
	"github.com/abhisek/versemind/internal/ui/layout"
)

// deckLoadedMsg is sent when the deck content fetch completes.
type deckLoadedMsg struct {
	Deck *deck.Deck
	Err  error
}

// ratingSavedMsg reports the durable write for one rating.
type ratingSavedMsg struct {
	Err error
}

// resetSavedMsg reports the durable write for a deck reset.
type resetSavedMsg struct {
	Err error
}

// Screen runs one review session: shows the current verse, reveals the
// translation on demand, and routes Again/Pass ratings into the engine
// and the reconciler.
type Screen struct {
	source      deck.Source
	rec         *progress.Reconciler
	deckNumber  int
	translation string

	session      *rev.Session
	revealed     bool
	confirmReset bool
	saveNotice   string
	errMsg       string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the review screen for one deck. Content loads in Init.
func New(source deck.Source, rec *progress.Reconciler, deckNumber int, translation string) *Screen {
	return &Screen{
		source:      source,
		rec:         rec,
		deckNumber:  deckNumber,
		translation: translation,
	}
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		d, err := s.source.Load(context.Background(), s.deckNumber, s.translation)
		return deckLoadedMsg{Deck: d, Err: err}
	}
}

func (s *Screen) Title() string {
	if s.session != nil && s.session.Deck() != nil {
		return s.session.Deck().EnglishName
	}
	return "Review"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case s.confirmReset:
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset deck"},
			{Key: "N", Description: "Keep progress"},
		}
	case s.session == nil:
		return nil
	case s.session.Done():
		return []layout.KeyHint{
			{Key: "R", Description: "Study again"},
			{Key: "Esc", Description: "Back"},
		}
	case !s.revealed:
		return []layout.KeyHint{
			{Key: "Space", Description: "Reveal"},
			{Key: "R", Description: "Reset"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "A", Description: "Again"},
			{Key: "P", Description: "Pass"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case deckLoadedMsg:
		if msg.Err != nil {
			s.errMsg = "Could not load this surah. Check your connection and try again."
			return s, nil
		}
		s.session = rev.New(msg.Deck, s.rec.DeckProgress(msg.Deck.ID()))
		return s, nil

	case ratingSavedMsg:
		if msg.Err != nil {
			s.saveNotice = "Progress could not be saved; it will retry on the next rating."
		} else {
			s.saveNotice = ""
		}
		return s, nil

	case resetSavedMsg:
		if msg.Err != nil {
			s.saveNotice = "Reset could not be saved; it will retry on the next rating."
		} else {
			s.saveNotice = ""
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmReset {
		switch key {
		case "y", "Y":
			s.confirmReset = false
			return s, s.doReset()
		case "n", "N", "esc":
			s.confirmReset = false
		}
		return s, nil
	}

	if key == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.session == nil || s.errMsg != "" {
		return s, nil
	}

	if key == "r" || key == "R" {
		s.confirmReset = true
		return s, nil
	}
	if s.session.Done() {
		return s, nil
	}

	if !s.revealed {
		if key == "space" || key == " " || key == "enter" {
			s.revealed = true
		}
		return s, nil
	}

	switch key {
	case "a", "A", "1":
		return s, s.rate(rev.OutcomeRetry)
	case "p", "P", "2", "enter":
		return s, s.rate(rev.OutcomePass)
	}
	return s, nil
}

// rate applies the rating to the engine and hands the emitted event to
// the reconciler for durable recording.
func (s *Screen) rate(outcome rev.Outcome) tea.Cmd {
	cur := s.session.Current()
	if cur == nil {
		return nil
	}
	ev, err := s.session.Rate(cur.ID, outcome)
	if err != nil {
		// The engine rejects ratings for non-current verses; with key
		// handling gated on Current this should not happen.
		return nil
	}
	s.revealed = false

	return func() tea.Msg {
		return ratingSavedMsg{
			Err: s.rec.ApplyRating(context.Background(), ev),
		}
	}
}

// doReset returns the whole deck to new, in the session and durably.
func (s *Screen) doReset() tea.Cmd {
	d := s.session.Deck()
	if d == nil {
		return nil
	}
	s.session.Reset()
	s.revealed = false

	return func() tea.Msg {
		return resetSavedMsg{
			Err: s.rec.ResetDeck(context.Background(), d.ID(), d.ItemIDs()),
		}
	}
}
