package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/SmauRobert/SmartTest/internal/ui/theme"
)

// Checklist is a multi-select list toggled with space.
type Checklist struct {
	Options  []string
	Checked  []bool
	Selected int
}

// NewChecklist creates a checklist with every option initially checked.
func NewChecklist(options []string) Checklist {
	checked := make([]bool, len(options))
	for i := range checked {
		checked[i] = true
	}
	return Checklist{Options: options, Checked: checked}
}

// Update handles keyboard navigation and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "space", " ":
		c.Checked[c.Selected] = !c.Checked[c.Selected]
	}

	return c, nil
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, opt := range c.Options {
		mark := "[ ]"
		if c.Checked[i] {
			mark = "[x]"
		}
		line := "  " + mark + " " + opt
		if i == c.Selected {
			line = "▸ " + mark + " " + opt
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

// CheckedIndexes returns the indexes of the checked options.
func (c Checklist) CheckedIndexes() []int {
	var out []int
	for i, on := range c.Checked {
		if on {
			out = append(out, i)
		}
	}
	return out
}
