package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// NameInputModel wraps the bubbles textinput for single line names
type NameInputModel struct {
	prompt    string
	input     textinput.Model
	done      bool
	cancelled bool
}

// NewNameInput creates a focused input prefilled with value
func NewNameInput(prompt, value string) NameInputModel {
	ti := textinput.New()
	ti.SetValue(value)
	ti.CursorEnd()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Focus()

	return NameInputModel{
		prompt: prompt,
		input:  ti,
	}
}

// Init initializes the component
func (m NameInputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m NameInputModel) Update(msg tea.Msg) (NameInputModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, nil
		case tea.KeyEsc:
			m.done = true
			m.cancelled = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the component
func (m NameInputModel) View() string {
	if m.done {
		return ""
	}
	return m.prompt + "\n\n" + m.input.View()
}

// Value returns the entered name
func (m NameInputModel) Value() string {
	return m.input.Value()
}

// IsDone returns whether the user finished editing
func (m NameInputModel) IsDone() bool {
	return m.done
}

// IsCancelled returns whether the user pressed esc
func (m NameInputModel) IsCancelled() bool {
	return m.cancelled
}
