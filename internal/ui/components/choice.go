package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cogquiz/internal/ui/theme"
)

// ChoiceList is a vertical list of answer options with a cursor. A single
// option can be faded while its press animation runs.
type ChoiceList struct {
	Options  []string
	Selected int

	// Faded is the index of the option currently dimmed, or -1.
	Faded int
}

// NewChoiceList creates a choice list with the cursor on the first option.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{
		Options:  options,
		Selected: 0,
		Faded:    -1,
	}
}

// Update handles cursor movement. Selection is left to the owner so it can
// decide when a press is accepted.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
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
	}
	return c, nil
}

// IndexForKey maps the number keys "1".."n" to an option index.
func (c ChoiceList) IndexForKey(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	i := int(key[0] - '1')
	if i >= len(c.Options) {
		return 0, false
	}
	return i, true
}

// View renders the options, one per line.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		switch {
		case i == c.Faded:
			b.WriteString(theme.Faded.Render(line))
		case i == c.Selected:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
