package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/geoquest/internal/ui/theme"
)

// Choices is a numbered option picker used for multiple-choice options and
// drawn regions. Digits pick directly, arrows move, enter confirms.
type Choices struct {
	Labels   []string
	Selected int

	// Values holds what a pick submits; nil means the option index.
	Values []string
}

// NewChoices creates a picker over labels. values may be nil.
func NewChoices(labels, values []string) Choices {
	return Choices{Labels: labels, Values: values}
}

// Update handles navigation. It returns the submitted value and true when
// the player confirmed a pick.
func (c Choices) Update(msg tea.Msg) (Choices, string, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(c.Labels) == 0 {
		return c, "", false
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Labels)-1 {
			c.Selected++
		}
	case "enter":
		return c, c.value(c.Selected), true
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(c.Labels) {
			c.Selected = n - 1
			return c, c.value(c.Selected), true
		}
	}
	return c, "", false
}

// SelectedValue returns the value of the highlighted option. A timed-out
// task evaluates the draft, so screens keep it in sync.
func (c Choices) SelectedValue() string {
	if len(c.Labels) == 0 {
		return ""
	}
	return c.value(c.Selected)
}

func (c Choices) value(i int) string {
	if c.Values != nil {
		return c.Values[i]
	}
	return strconv.Itoa(i)
}

// View renders the options. After a submission, correct is the index to
// mark green and chosen the index to mark red if different; pass -1 for
// both while awaiting input.
func (c Choices) View(correct, chosen int) string {
	var b strings.Builder
	for i, label := range c.Labels {
		line := fmt.Sprintf("%d)  %s", i+1, label)
		var style lipgloss.Style
		switch {
		case correct >= 0 && i == correct:
			style = theme.Correct
			line = "✓ " + line
		case correct >= 0 && i == chosen:
			style = theme.Incorrect
			line = "✗ " + line
		case correct >= 0:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
			line = "  " + line
		case i == c.Selected:
			style = theme.Selected
			line = "▸ " + line
		default:
			style = theme.Unselected
			line = "  " + line
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
