package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/versemind/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items, selecting the first
// enabled one.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		if i == m.Selected {
			s += theme.Selected.Render("  ▸ "+item.Label) + "\n"
		} else {
			s += theme.Unselected.Render("    "+item.Label) + "\n"
		}
	}
	return s
}

// Button is a styled button component.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active {
		return b, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" && b.OnPress != nil {
			return b, b.OnPress()
		}
	}
	return b, nil
}

// View renders the button.
func (b Button) View() string {
	label := " " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
