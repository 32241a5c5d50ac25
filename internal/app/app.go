package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/versemind/internal/deck"
	"github.com/abhisek/versemind/internal/progress"
	"github.com/abhisek/versemind/internal/router"
	"github.com/abhisek/versemind/internal/screen"
	"github.com/abhisek/versemind/internal/screens/home"
	"github.com/abhisek/versemind/internal/stats"
	"github.com/abhisek/versemind/internal/ui/layout"
)

// Options carries the collaborators every screen is built from.
type Options struct {
	Source      deck.Source
	Reconciler  *progress.Reconciler
	Translation string
}

// Model is the root Bubble Tea model.
type Model struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

func newModel(opts Options) Model {
	return Model{
		opts:   opts,
		router: router.New(home.New(opts.Source, opts.Reconciler, opts.Translation)),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The header stats track the durable record live: every rating the
	// reconciler absorbs shows up on the next render.
	st := stats.Compute(m.opts.Reconciler.Record(), time.Now())
	header := layout.RenderHeader(title, st.Streak.Current, st.TodayCount, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
