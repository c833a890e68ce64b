package browse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakoblorz/savekeeper/internal/filesystem"
	"github.com/jakoblorz/savekeeper/internal/saves"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (*filesystem.MockFileSystem, Model) {
	t.Helper()

	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/G/Profile1/a.save", []byte("a"))
	fs.AddFile("/G/Profile1/b.save", []byte("b"))
	fs.AddFile("/G/Profile1/Sub/c.save", []byte("c"))

	folder := saves.NewRootFolder(fs, "/G/Profile1")
	require.NoError(t, folder.LoadChildren())
	return fs, NewModel(saves.NewProfile(folder, "Game"))
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func entryNames(m Model) []string {
	var names []string
	for _, item := range m.profile.SaveListEntries() {
		names = append(names, item.Name())
	}
	return names
}

func TestModel_NavigateAndToggle(t *testing.T) {
	_, m := newTestModel(t)
	require.Equal(t, "Sub", m.Selected().Name())

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []string{"Sub", "c.save", "a.save", "b.save"}, entryNames(m))

	m = send(m, keys("j"))
	require.Equal(t, "c.save", m.Selected().Name())

	// left on a file closes its folder and jumps to it
	m = send(m, keys("h"))
	require.Equal(t, "Sub", m.Selected().Name())
	require.Equal(t, []string{"Sub", "a.save", "b.save"}, entryNames(m))

	m = send(m, keys("j"), keys("j"), keys("j"), keys("j"))
	require.Equal(t, 2, m.Cursor())
	m = send(m, keys("k"), keys("k"), keys("k"))
	require.Equal(t, 0, m.Cursor())

	m = send(m, keys("l"))
	require.True(t, m.Selected().(*saves.Folder).IsOpen())
}

func TestModel_DeleteWithConfirmation(t *testing.T) {
	fs, m := newTestModel(t)
	m = send(m, keys("j"))
	require.Equal(t, "a.save", m.Selected().Name())

	m = send(m, keys("d"), keys("n"))
	require.Equal(t, StateBrowse, m.state)
	require.True(t, fs.FileExists("/G/Profile1/a.save"))

	m = send(m, keys("d"), keys("y"))
	require.NoError(t, m.Err())
	require.False(t, fs.FileExists("/G/Profile1/a.save"))
	require.Equal(t, []string{"Sub", "b.save"}, entryNames(m))
	require.Equal(t, "b.save", m.Selected().Name())
	require.Contains(t, m.View(), "Deleted a.save")
}

func TestModel_Rename(t *testing.T) {
	fs, m := newTestModel(t)
	m = send(m, keys("j"), keys("j"))
	require.Equal(t, "b.save", m.Selected().Name())

	m = send(m, keys("r"))
	require.Equal(t, StateRename, m.state)

	// the input starts with the current name; replace it
	for range "b.save" {
		m = send(m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = send(m, keys("0.save"), tea.KeyMsg{Type: tea.KeyEnter})

	require.NoError(t, m.Err())
	require.True(t, fs.FileExists("/G/Profile1/0.save"))
	require.Equal(t, []string{"Sub", "0.save", "a.save"}, entryNames(m))
	require.Equal(t, "0.save", m.Selected().Name())
}

func TestModel_CreateFolderInSelectedFolder(t *testing.T) {
	fs, m := newTestModel(t)

	m = send(m, keys("n"), keys("Inner"), tea.KeyMsg{Type: tea.KeyEnter})
	require.NoError(t, m.Err())
	require.True(t, fs.DirectoryExists("/G/Profile1/Sub/Inner"))
	require.Equal(t, []string{"Sub", "Inner", "c.save", "a.save", "b.save"}, entryNames(m))
	require.Equal(t, "Inner", m.Selected().Name())
}

func TestModel_MismatchSuggestsReload(t *testing.T) {
	fs, m := newTestModel(t)
	m = send(m, keys("j"))
	require.NoError(t, fs.DeleteFile("/G/Profile1/a.save"))

	m = send(m, keys("d"), keys("y"))
	require.ErrorIs(t, m.Err(), saves.ErrMismatch)
	require.Contains(t, m.View(), "Press R to reload")

	m = send(m, keys("R"))
	require.NoError(t, m.Err())
	require.Equal(t, []string{"Sub", "b.save"}, entryNames(m))
}

func TestModel_EscCancelsInput(t *testing.T) {
	fs, m := newTestModel(t)
	before := fs.Paths()

	m = send(m, keys("n"), keys("Nope"), tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, StateBrowse, m.state)
	require.Equal(t, before, fs.Paths())
}
