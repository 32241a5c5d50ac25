package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/versemind/internal/stats"
	"github.com/abhisek/versemind/internal/ui/theme"
)

// BarChart renders the 7-day activity window as horizontal bars, one
// row per day, oldest first.
type BarChart struct {
	Points []stats.ChartPoint
	Width  int
}

// View renders the chart. Bars scale to the window maximum; a day with
// no activity shows a dimmed dot so the row is still visible.
func (c BarChart) View() string {
	maxVal := 0
	for _, p := range c.Points {
		if p.Value > maxVal {
			maxVal = p.Value
		}
	}

	// label (3) + gap + value column (4)
	barSpace := c.Width - 10
	if barSpace < 5 {
		barSpace = 5
	}

	var b strings.Builder
	for _, p := range c.Points {
		label := theme.Hint.Render(fmt.Sprintf("%-3s", p.Label))

		var bar string
		if p.Value == 0 || maxVal == 0 {
			bar = theme.Hint.Render("·")
		} else {
			n := p.Value * barSpace / maxVal
			if n < 1 {
				n = 1
			}
			bar = theme.BandMastered.Render(strings.Repeat(" ", n))
		}

		value := ""
		if p.Value > 0 {
			value = theme.Body.Render(fmt.Sprintf(" %d", p.Value))
		}

		b.WriteString(label + " " + bar + value + "\n")
	}
	return b.String()
}
