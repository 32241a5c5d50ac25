package review

import (
	"errors"

	"github.com/google/uuid"

	"github.com/abhisek/versemind/internal/deck"
	"github.com/abhisek/versemind/internal/progress"
)

// Outcome is the learner's binary self-rating for the current verse.
type Outcome int

const (
	// OutcomeRetry keeps the verse in rotation at the back of the queue.
	OutcomeRetry Outcome = iota
	// OutcomePass marks the verse mastered and retires it from the queue.
	OutcomePass
)

var (
	// ErrNotCurrent is returned when a rating targets a verse other than
	// the one currently displayed. No state is mutated.
	ErrNotCurrent = errors.New("review: verse is not the current card")

	// ErrUnknownItem is returned when a rating targets a verse the deck
	// does not contain.
	ErrUnknownItem = errors.New("review: unknown verse id")
)

// RatingEvent is the engine's output per rating, tagged with the
// session id. The engine knows nothing about persistence; the host
// routes events to the progress reconciler.
type RatingEvent = progress.RatingEvent

// Session owns the live review queue for one deck: the session-local
// status map seeded from durable progress, the ordered queue of
// not-yet-mastered verse ids, and the currently displayed verse.
//
// A Session holds nothing that cannot be rebuilt from (deck, durable
// progress); switching decks discards it and seeds a fresh one.
type Session struct {
	// ID is a fresh UUID per session; every emitted RatingEvent
	// carries it.
	ID string

	deck     *deck.Deck
	statuses map[string]progress.Status
	queue    []string
	current  *deck.Item
}

// New seeds a session from the deck and its durable status map. Verses
// already mastered are excluded from the queue; everything else enters
// in deck order. A nil or empty deck yields a session with no current
// verse (the terminal "complete" display state).
func New(d *deck.Deck, durable map[string]progress.Status) *Session {
	s := &Session{
		ID:       uuid.New().String(),
		deck:     d,
		statuses: make(map[string]progress.Status, len(durable)),
	}
	if d == nil {
		return s
	}
	for id, st := range durable {
		s.statuses[id] = st.OrNew()
	}
	for _, it := range d.Items {
		if s.statuses[it.ID].OrNew() != progress.StatusMastered {
			s.queue = append(s.queue, it.ID)
		}
	}
	s.advance()
	return s
}

// Current returns the verse at the head of the queue, or nil when the
// deck is complete.
func (s *Session) Current() *deck.Item {
	return s.current
}

// Deck returns the deck under review, which may be nil.
func (s *Session) Deck() *deck.Deck {
	return s.deck
}

// Remaining is the number of verses still in rotation.
func (s *Session) Remaining() int {
	return len(s.queue)
}

// Done reports whether every verse has been mastered this session.
func (s *Session) Done() bool {
	return len(s.queue) == 0
}

// Status returns the session-local status for a verse; absence reads
// as StatusNew.
func (s *Session) Status(itemID string) progress.Status {
	return s.statuses[itemID].OrNew()
}

// Rate applies the learner's self-rating to the currently displayed
// verse. Pass retires the verse; Retry re-appends it to the tail so it
// is not shown again until every other verse in rotation has had a
// turn. The returned event carries the status change for durable
// recording.
//
// Rating any verse other than the queue head is rejected without
// mutation.
func (s *Session) Rate(itemID string, outcome Outcome) (RatingEvent, error) {
	if s.deck == nil || s.deck.Item(itemID) == nil {
		return RatingEvent{}, ErrUnknownItem
	}
	if len(s.queue) == 0 || s.queue[0] != itemID {
		return RatingEvent{}, ErrNotCurrent
	}

	newStatus := progress.StatusLearning
	if outcome == OutcomePass {
		newStatus = progress.StatusMastered
	}
	s.statuses[itemID] = newStatus

	s.queue = s.queue[1:]
	if outcome == OutcomeRetry {
		s.queue = append(s.queue, itemID)
	}
	s.advance()

	return RatingEvent{
		SessionID: s.ID,
		DeckID:    s.deck.ID(),
		ItemID:    itemID,
		Status:    newStatus,
	}, nil
}

// Reset returns every verse to StatusNew and rebuilds the queue to the
// full deck order. The caller pairs this with the reconciler's
// ResetDeck so durable state matches.
func (s *Session) Reset() {
	if s.deck == nil {
		return
	}
	for _, it := range s.deck.Items {
		s.statuses[it.ID] = progress.StatusNew
	}
	s.queue = s.deck.ItemIDs()
	s.advance()
}

func (s *Session) advance() {
	if len(s.queue) == 0 {
		s.current = nil
		return
	}
	s.current = s.deck.Item(s.queue[0])
}
