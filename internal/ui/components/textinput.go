package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/geoquest/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with GeoQuest styling.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	Suffix      string
}

// NewTextInput creates a focused text input. numericOnly accepts digits,
// one decimal separator and a leading minus.
func NewTextInput(placeholder string, numericOnly bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
		ti.SetWidth(maxWidth)
	}
	return TextInput{Model: ti, NumericOnly: numericOnly}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok && !t.accepts(kmsg.String()) {
			return t, nil
		}
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) accepts(key string) bool {
	if len([]rune(key)) != 1 {
		return true // editing keys
	}
	switch c := key[0]; {
	case c >= '0' && c <= '9':
		return true
	case c == '.' || c == ',':
		return !strings.ContainsAny(t.Model.Value(), ".,")
	case c == '-':
		return t.Model.Value() == ""
	}
	return false
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.Suffix != "" {
		view += " " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Suffix)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Reset clears the input.
func (t *TextInput) Reset() {
	t.Model.Reset()
}
