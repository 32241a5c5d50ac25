package progress

import (
	"context"
	"fmt"
	"time"
)

// Repo persists durable records, keyed by namespace. Implemented by
// store.ProgressRepo; tests supply in-memory fakes.
type Repo interface {
	// Load returns the record stored under namespace, or nil if none exists.
	Load(ctx context.Context, namespace string) (*Record, error)

	// Save stores rec under namespace, replacing any previous record.
	Save(ctx context.Context, namespace string, rec *Record) error
}

// RatingEvent is one rating as emitted by the review engine: which
// verse of which deck, the resulting status, and the session that
// produced it.
type RatingEvent struct {
	SessionID string
	DeckID    string
	ItemID    string
	Status    Status
}

// Reconciler owns the durable progress record. It applies one rating
// event at a time and persists the whole record after every mutation.
// Storage failures are never fatal: the in-memory record stays
// authoritative and the next mutation retries the write.
type Reconciler struct {
	repo      Repo
	namespace string
	now       func() time.Time
	rec       *Record
}

// NewReconciler loads the record stored under namespace. A missing,
// unreadable, or corrupt record falls back to an empty one so the UI is
// never blocked on storage.
func NewReconciler(ctx context.Context, repo Repo, namespace string) *Reconciler {
	r := &Reconciler{
		repo:      repo,
		namespace: namespace,
		now:       time.Now,
	}
	rec, err := repo.Load(ctx, namespace)
	if err != nil || rec == nil {
		rec = NewRecord()
	}
	if rec.Decks == nil {
		rec.Decks = make(map[string]map[string]Status)
	}
	r.rec = rec
	return r
}

// SetClock overrides the time source. Tests use it to pin the calendar day.
func (r *Reconciler) SetClock(now func() time.Time) {
	r.now = now
}

// Record exposes the in-memory durable record for read-only use
// (statistics, header display). Callers must not mutate it.
func (r *Reconciler) Record() *Record {
	return r.rec
}

// DeckProgress returns a copy of the durable status map for deckID.
// A never-studied deck yields an empty map; this never fails.
func (r *Reconciler) DeckProgress(deckID string) map[string]Status {
	return r.rec.DeckStatuses(deckID)
}

// ApplyRating upserts the status for the event's verse and, when the
// verse was mastered, updates the study history and streak for the
// current local calendar day. The record is persisted once per call; a
// save failure is returned for display but leaves the in-memory
// mutation in place.
func (r *Reconciler) ApplyRating(ctx context.Context, ev RatingEvent) error {
	if !ev.Status.Valid() {
		return fmt.Errorf("apply rating: invalid status %q", ev.Status)
	}

	deckMap := r.rec.Decks[ev.DeckID]
	if deckMap == nil {
		deckMap = make(map[string]Status)
		r.rec.Decks[ev.DeckID] = deckMap
	}
	deckMap[ev.ItemID] = ev.Status.OrNew()

	if ev.SessionID != "" {
		r.rec.LastSessionID = ev.SessionID
	}

	// A retry is recorded in the deck map but is not an activity event:
	// only a mastery touches history and streak.
	if ev.Status == StatusMastered {
		today := r.now().Format(DateLayout)
		if dl := r.rec.DayLog(today); dl != nil {
			dl.MasteredCount++
		} else {
			r.rec.History = append(r.rec.History, DayLog{Date: today, MasteredCount: 1})
		}
		r.bumpStreak(today)
	}

	return r.save(ctx)
}

// ResetDeck sets every listed verse back to StatusNew in the durable
// map. History and streak are untouched: a reset is not an un-study
// event.
func (r *Reconciler) ResetDeck(ctx context.Context, deckID string, itemIDs []string) error {
	deckMap := make(map[string]Status, len(itemIDs))
	for _, id := range itemIDs {
		deckMap[id] = StatusNew
	}
	r.rec.Decks[deckID] = deckMap
	return r.save(ctx)
}

// bumpStreak advances the streak on the first mastery of the day.
func (r *Reconciler) bumpStreak(today string) {
	s := &r.rec.Streak
	if s.LastStudyDate == today {
		return
	}
	if s.LastStudyDate != "" && isPreviousDay(s.LastStudyDate, today) {
		s.Current++
	} else {
		s.Current = 1
	}
	s.LastStudyDate = today
	if s.Current > s.Longest {
		s.Longest = s.Current
	}
}

func (r *Reconciler) save(ctx context.Context) error {
	if err := r.repo.Save(ctx, r.namespace, r.rec); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// isPreviousDay reports whether prev is the calendar day immediately
// before cur.
func isPreviousDay(prev, cur string) bool {
	p, err := time.Parse(DateLayout, prev)
	if err != nil {
		return false
	}
	c, err := time.Parse(DateLayout, cur)
	if err != nil {
		return false
	}
	return p.AddDate(0, 0, 1).Equal(c)
}
