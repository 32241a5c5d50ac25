package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/versemind/internal/review"
	"github.com/abhisek/versemind/internal/ui/theme"
)

// StatusBar renders a session summary as a single three-band bar:
// mastered, learning, and new portions of the deck.
type StatusBar struct {
	Summary review.Summary
	Width   int
}

// View renders the bar followed by a percentage legend.
func (b StatusBar) View() string {
	width := b.Width
	if width < 10 {
		width = 10
	}

	mastered := int(float64(width) * b.Summary.MasteredPct / 100)
	learning := int(float64(width) * b.Summary.LearningPct / 100)
	if mastered+learning > width {
		learning = width - mastered
	}
	neu := width - mastered - learning

	bar := theme.BandMastered.Render(strings.Repeat(" ", mastered)) +
		theme.BandLearning.Render(strings.Repeat(" ", learning)) +
		theme.BandNew.Render(strings.Repeat(" ", neu))

	legend := theme.Pass.Render(fmt.Sprintf("%.0f%% mastered", b.Summary.MasteredPct)) +
		theme.Hint.Render("  ·  ") +
		theme.BandLearning.Foreground(theme.BgDark).Render(fmt.Sprintf(" %.0f%% learning ", b.Summary.LearningPct)) +
		theme.Hint.Render("  ·  ") +
		theme.Hint.Render(fmt.Sprintf("%.0f%% new", b.Summary.NewPct))

	return bar + "\n" + legend
}
