package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dojo/internal/ui/theme"
)

// TextInput wraps bubbles/textinput for free-form answers and the
// debate reply box. A numeric-only mode filters non-digit keys for
// fields like operation counts.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	MaxWidth    int
	submitted   bool
	valid       bool
}

func NewTextInput(placeholder string, numericOnly bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:       ti,
		NumericOnly: numericOnly,
		MaxWidth:    maxWidth,
	}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	// Drop single printable non-digits in numeric mode; control keys
	// like backspace arrive as multi-char strings and pass through.
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			if key := kmsg.String(); len(key) == 1 && (key[0] < '0' || key[0] > '9') {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View shows the input plus a check or cross once submitted.
func (t TextInput) View() string {
	view := t.Model.View()
	if !t.submitted {
		return view
	}
	mark := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	if t.valid {
		mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}
	return view + " " + mark
}

func (t TextInput) Value() string {
	return t.Model.Value()
}

// NumericValue parses the current value as an int.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// Submit freezes the input and records whether the answer checked
// out, which drives the mark View appends.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
