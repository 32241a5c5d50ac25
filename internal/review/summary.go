package review

import "github.com/abhisek/versemind/internal/progress"

// Summary is the percentage split of the deck by status. The three
// values sum to 100 (modulo floating point) for any non-empty deck.
type Summary struct {
	NewPct      float64
	LearningPct float64
	MasteredPct float64
}

// Summary recomputes the split from the session status map. It is a
// pure derivation, never cached: every rating changes it.
func (s *Session) Summary() Summary {
	if s.deck == nil || len(s.deck.Items) == 0 {
		return Summary{}
	}

	var learning, mastered int
	for _, it := range s.deck.Items {
		switch s.statuses[it.ID].OrNew() {
		case progress.StatusLearning:
			learning++
		case progress.StatusMastered:
			mastered++
		}
	}

	total := float64(len(s.deck.Items))
	newCount := len(s.deck.Items) - learning - mastered
	return Summary{
		NewPct:      float64(newCount) / total * 100,
		LearningPct: float64(learning) / total * 100,
		MasteredPct: float64(mastered) / total * 100,
	}
}

// MasteredCount is the number of deck verses mastered this session.
func (s *Session) MasteredCount() int {
	if s.deck == nil {
		return 0
	}
	n := 0
	for _, it := range s.deck.Items {
		if s.statuses[it.ID] == progress.StatusMastered {
			n++
		}
	}
	return n
}
