package dashboard

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/versemind/internal/progress"
	"github.com/abhisek/versemind/internal/router"
	"github.com/abhisek/versemind/internal/screen"
	"github.com/abhisek/versemind/internal/stats"
	"github.com/abhisek/versemind/internal/ui/components"
	"github.com/abhisek/versemind/internal/ui/layout"
	"github.com/abhisek/versemind/internal/ui/theme"
)

// Screen shows the streak and the 7-day activity chart. Statistics are
// recomputed from the durable record on every render.
type Screen struct {
	rec *progress.Reconciler
	now func() time.Time
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the dashboard screen.
func New(rec *progress.Reconciler) *Screen {
	return &Screen{rec: rec, now: time.Now}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Statistics"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	st := stats.Compute(s.rec.Record(), s.now())

	boxWidth := width / 2
	if boxWidth < 44 {
		boxWidth = 44
	}

	var b strings.Builder

	b.WriteString(theme.Title.Width(boxWidth).Render("Your Study Rhythm") + "\n\n")

	streakLine := theme.Body.Render("Current streak  ") +
		theme.Pass.Render(fmt.Sprintf("%d day(s)", st.Streak.Current)) +
		theme.Hint.Render(fmt.Sprintf("   longest %d", st.Streak.Longest))
	b.WriteString(streakLine + "\n")

	countLine := theme.Body.Render("Mastered        ") +
		theme.Selected.Render(fmt.Sprintf("%d today", st.TodayCount)) +
		theme.Hint.Render(fmt.Sprintf("   %d this week", st.WeekCount))
	b.WriteString(countLine + "\n\n")

	b.WriteString(theme.Subtitle.Render("Last 7 days") + "\n")
	b.WriteString(components.BarChart{Points: st.Chart, Width: boxWidth}.View())

	box := theme.Card.Width(boxWidth).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
