package browse

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakoblorz/savekeeper/internal/saves"
	"github.com/jakoblorz/savekeeper/internal/tui"
	"github.com/jakoblorz/savekeeper/internal/tui/components"
)

// State represents the current state of the browser
type State int

const (
	StateBrowse State = iota
	StateConfirmDelete
	StateRename
	StateCreateFolder
)

// Model is the bubbletea model for browsing one profile
type Model struct {
	state   State
	profile *saves.Profile
	cursor  int

	status string
	err    error

	// Components
	confirm components.ConfirmModel
	input   components.NameInputModel
}

// NewModel creates a browser positioned on the first entry
func NewModel(profile *saves.Profile) Model {
	profile.UpdateSaveListEntries()
	return Model{
		state:   StateBrowse,
		profile: profile,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the entry under the cursor, or nil for an empty profile
func (m Model) Selected() saves.Item {
	entries := m.profile.SaveListEntries()
	if m.cursor < 0 || m.cursor >= len(entries) {
		return nil
	}
	return entries[m.cursor]
}

// Cursor returns the index of the selected entry
func (m Model) Cursor() int {
	return m.cursor
}

// Err returns the error of the last operation, if it failed
func (m Model) Err() error {
	return m.err
}

// Update handles messages and state transitions
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case StateBrowse:
		return m.updateBrowse(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case StateRename, StateCreateFolder:
		return m.updateInput(msg)
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	selected := m.Selected()
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.profile.SaveListEntries())-1 {
			m.cursor++
		}
	case "enter", " ":
		if folder, ok := selected.(*saves.Folder); ok {
			m.profile.Toggle(folder)
		}
	case "right", "l":
		if folder, ok := selected.(*saves.Folder); ok && !folder.IsOpen() {
			m.profile.SetOpen(folder, true)
		}
	case "left", "h":
		m.collapse(selected)
	case "d":
		if selected != nil {
			m.state = StateConfirmDelete
			m.confirm = components.NewConfirm(fmt.Sprintf("Delete %s?", selected.Name()))
		}
	case "r":
		if selected != nil {
			m.state = StateRename
			m.input = components.NewNameInput(fmt.Sprintf("Rename %s to:", selected.Name()), selected.Name())
			return m, m.input.Init()
		}
	case "n":
		m.state = StateCreateFolder
		m.input = components.NewNameInput(fmt.Sprintf("New folder in %s:", m.targetFolder().Name()), "")
		return m, m.input.Init()
	case "R":
		m.setResult(m.profile.LoadChildren(), "Reloaded from disk")
	}

	return m, nil
}

// collapse closes the selected folder, or the folder containing the
// selected entry, and moves the cursor onto it.
func (m *Model) collapse(selected saves.Item) {
	if selected == nil {
		return
	}
	if folder, ok := selected.(*saves.Folder); ok && folder.IsOpen() {
		m.profile.SetOpen(folder, false)
		return
	}
	parent := selected.Parent()
	if parent == nil || parent == m.profile.Folder {
		return
	}
	m.profile.SetOpen(parent, false)
	m.moveTo(parent)
}

// targetFolder is where new folders go: the selected folder, or the folder
// of the selected file.
func (m Model) targetFolder() *saves.Folder {
	switch selected := m.Selected().(type) {
	case *saves.Folder:
		return selected
	case *saves.Savefile:
		if parent := selected.Parent(); parent != nil {
			return parent
		}
	}
	return m.profile.Folder
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)

	if m.confirm.IsDone() {
		m.state = StateBrowse
		if m.confirm.IsConfirmed() {
			if selected := m.Selected(); selected != nil {
				name := selected.Name()
				m.setResult(m.profile.DeleteItem(selected), "Deleted "+name)
				m.clampCursor()
			}
		}
	}

	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if !m.input.IsDone() {
		return m, cmd
	}

	state := m.state
	m.state = StateBrowse
	if m.input.IsCancelled() {
		return m, nil
	}

	name := strings.TrimSpace(m.input.Value())
	switch state {
	case StateRename:
		if selected := m.Selected(); selected != nil {
			err := m.profile.RenameItem(selected, name)
			m.setResult(err, "Renamed to "+name)
			if err == nil {
				m.moveTo(selected)
			}
		}
	case StateCreateFolder:
		target := m.targetFolder()
		created, err := m.profile.CreateFolder(target, name)
		m.setResult(err, "Created "+name)
		if err == nil {
			if target != m.profile.Folder {
				m.profile.SetOpen(target, true)
			}
			m.moveTo(created)
		}
	}

	return m, nil
}

func (m *Model) setResult(err error, success string) {
	m.err = err
	m.status = ""
	if err == nil {
		m.status = success
	}
}

func (m *Model) moveTo(item saves.Item) {
	for i, entry := range m.profile.SaveListEntries() {
		if entry == item {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if n := len(m.profile.SaveListEntries()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the current state
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render(fmt.Sprintf("%s / %s", m.profile.Game(), m.profile.Name())))
	b.WriteString("\n")
	b.WriteString(tui.RenderEntries(m.profile, m.cursor))

	switch m.state {
	case StateConfirmDelete:
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
		return b.String()
	case StateRename, StateCreateFolder:
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(tui.HelpStyle.Render("enter confirm • esc cancel"))
		return b.String()
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(tui.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		if errors.Is(m.err, saves.ErrMismatch) {
			b.WriteString("\n")
			b.WriteString(tui.SubtleStyle.Render("The profile changed on disk. Press R to reload."))
		}
	} else if m.status != "" {
		b.WriteString("\n")
		b.WriteString(tui.SuccessStyle.Render("✓ " + m.status))
	}

	b.WriteString("\n")
	b.WriteString(tui.HelpStyle.Render("↑↓ navigate • enter toggle • r rename • n new folder • d delete • R reload • q quit"))

	return b.String()
}

// Run starts the browser in the alternate screen and blocks until it quits
func Run(profile *saves.Profile) error {
	if _, err := tea.NewProgram(NewModel(profile), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}
