package home

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/versemind/internal/deck"
	"github.com/abhisek/versemind/internal/progress"
	"github.com/abhisek/versemind/internal/router"
	"github.com/abhisek/versemind/internal/screen"
	"github.com/abhisek/versemind/internal/screens/dashboard"
	"github.com/abhisek/versemind/internal/screens/picker"
	"github.com/abhisek/versemind/internal/stats"
	"github.com/abhisek/versemind/internal/ui/components"
	"github.com/abhisek/versemind/internal/ui/theme"
)

// Screen is the landing menu.
type Screen struct {
	menu components.Menu
	rec  *progress.Reconciler
}

var _ screen.Screen = (*Screen)(nil)

// New creates the home screen.
func New(source deck.Source, rec *progress.Reconciler, translation string) *Screen {
	items := []components.MenuItem{
		{Label: "STUDY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: picker.New(source, rec, translation)}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(rec)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &Screen{
		menu: components.NewMenu(items),
		rec:  rec,
	}
}

func (h *Screen) Init() tea.Cmd {
	return nil
}

func (h *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *Screen) View(width, height int) string {
	st := stats.Compute(h.rec.Record(), time.Now())

	title := theme.Title.Render("Versemind") + "\n" +
		theme.Subtitle.Render("Memorize, verse by verse")

	var statsLine string
	if st.Streak.Current > 0 || st.WeekCount > 0 {
		statsLine = theme.Hint.Render(fmt.Sprintf(
			"★ %d day streak   ✦ %d mastered this week", st.Streak.Current, st.WeekCount))
	} else {
		statsLine = theme.Hint.Render("Start your first session to begin a streak.")
	}

	content := title + "\n\n" + statsLine + "\n\n" + h.menu.View()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *Screen) Title() string {
	return "Home"
}
