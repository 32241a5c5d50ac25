package progress

// DateLayout is the calendar-date format used throughout the durable
// record. Dates are local calendar days, not UTC instants.
const DateLayout = "2006-01-02"

// DayLog records the number of verses mastered on one calendar date.
// History holds at most one DayLog per date.
type DayLog struct {
	Date          string `json:"date"`
	MasteredCount int    `json:"masteredCount"`
}

// StreakRecord tracks consecutive calendar days with at least one
// mastered verse.
type StreakRecord struct {
	Current       int    `json:"current"`
	Longest       int    `json:"longest"`
	LastStudyDate string `json:"lastStudyDate,omitempty"`
}

// Record is the durable cross-session progress blob: per-deck verse
// statuses, the dated study history, and the streak. It is loaded whole
// at startup and persisted whole after every mutation.
type Record struct {
	Decks   map[string]map[string]Status `json:"deckProgress"`
	History []DayLog                     `json:"studyHistory"`
	Streak  StreakRecord                 `json:"streak"`

	// LastSessionID tags the record with the review session that
	// produced the most recent rating.
	LastSessionID string `json:"lastSessionId,omitempty"`
}

// NewRecord returns an empty record, the fallback when nothing has been
// persisted yet or the stored blob cannot be read.
func NewRecord() *Record {
	return &Record{
		Decks: make(map[string]map[string]Status),
	}
}

// DayLog returns the history entry for date, or nil if that date has no
// mastery events. Lookup is by date value, not position.
func (r *Record) DayLog(date string) *DayLog {
	for i := range r.History {
		if r.History[i].Date == date {
			return &r.History[i]
		}
	}
	return nil
}

// DeckStatuses returns a copy of the status map for deckID. A deck that
// has never been studied yields an empty, non-nil map.
func (r *Record) DeckStatuses(deckID string) map[string]Status {
	out := make(map[string]Status, len(r.Decks[deckID]))
	for id, st := range r.Decks[deckID] {
		out[id] = st
	}
	return out
}
