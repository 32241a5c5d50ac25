package router

import (
	"github.com/abhisek/versemind/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// PushScreenMsg asks the router to open a screen on top of the current
// one. Screens emit it to navigate forward (home to picker, picker to
// review).
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg asks the router to return to the previous screen.
type PopScreenMsg struct{}

// Router keeps the navigation stack. Only the top screen receives
// messages and renders; the screens below keep their state, so Esc
// returns to them as they were left.
type Router struct {
	stack []screen.Screen
}

// New creates a router rooted at initial, which can never be popped.
func New(initial screen.Screen) *Router {
	return &Router{stack: []screen.Screen{initial}}
}

// Push opens s on top of the stack and runs its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop discards the top screen. The root screen stays.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	return nil
}

// Active returns the screen currently in control, nil only when the
// router was built without one.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth reports how many screens are stacked. The root alone is depth 1.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update routes navigation messages itself and forwards everything else
// to the active screen, storing back whatever screen value it returns.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen into the given content area.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
