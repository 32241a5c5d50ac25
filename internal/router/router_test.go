package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/versemind/internal/screen"
)

// fakeScreen records lifecycle calls for stack assertions.
type fakeScreen struct {
	title    string
	initRan  bool
	lastMsg  tea.Msg
	received int
}

func (f *fakeScreen) Init() tea.Cmd {
	f.initRan = true
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.lastMsg = msg
	f.received++
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.title }
func (f *fakeScreen) Title() string        { return f.title }

type tickMsg struct{}

func TestPushActivatesAndInits(t *testing.T) {
	home := &fakeScreen{title: "home"}
	r := New(home)

	picker := &fakeScreen{title: "picker"}
	r.Push(picker)

	if r.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", r.Depth())
	}
	if r.Active() != picker {
		t.Errorf("Active = %q, want picker", r.Active().Title())
	}
	if !picker.initRan {
		t.Error("pushed screen Init did not run")
	}
}

func TestPopReturnsToPreviousScreen(t *testing.T) {
	home := &fakeScreen{title: "home"}
	r := New(home)
	r.Push(&fakeScreen{title: "picker"})

	r.Pop()

	if r.Depth() != 1 || r.Active() != home {
		t.Errorf("after pop: depth %d, active %q, want home at depth 1", r.Depth(), r.Active().Title())
	}
}

func TestPopNeverRemovesRoot(t *testing.T) {
	home := &fakeScreen{title: "home"}
	r := New(home)

	r.Pop()
	r.Pop()

	if r.Depth() != 1 || r.Active() != home {
		t.Errorf("root popped: depth %d, active %v", r.Depth(), r.Active())
	}
}

func TestUpdateHandlesNavigationMessages(t *testing.T) {
	home := &fakeScreen{title: "home"}
	r := New(home)

	review := &fakeScreen{title: "review"}
	r.Update(PushScreenMsg{Screen: review})
	if r.Active() != review || !review.initRan {
		t.Fatal("PushScreenMsg did not activate the new screen")
	}

	r.Update(PopScreenMsg{})
	if r.Active() != home {
		t.Errorf("PopScreenMsg: active %q, want home", r.Active().Title())
	}
}

func TestUpdateReachesOnlyTheActiveScreen(t *testing.T) {
	home := &fakeScreen{title: "home"}
	r := New(home)
	picker := &fakeScreen{title: "picker"}
	r.Push(picker)

	r.Update(tickMsg{})

	if picker.received != 1 {
		t.Errorf("active screen received %d messages, want 1", picker.received)
	}
	if home.received != 0 {
		t.Errorf("buried screen received %d messages, want 0", home.received)
	}
	if _, ok := picker.lastMsg.(tickMsg); !ok {
		t.Errorf("active screen saw %T, want tickMsg", picker.lastMsg)
	}
}
