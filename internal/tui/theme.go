package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// NewHuhTheme returns the purple themed huh form style used by every prompt.
func NewHuhTheme() *huh.Theme {
	theme := huh.ThemeCharm()
	purple := lipgloss.Color("#7D56F4")
	green := lipgloss.Color("#04B575")

	theme.Focused.Title = theme.Focused.Title.Foreground(purple)
	theme.Focused.NoteTitle = theme.Focused.NoteTitle.Foreground(purple)
	theme.Focused.FocusedButton = theme.Focused.FocusedButton.Background(purple)
	theme.Focused.SelectSelector = theme.Focused.SelectSelector.Foreground(purple)
	theme.Focused.TextInput.Cursor = theme.Focused.TextInput.Cursor.Foreground(green)
	theme.Focused.TextInput.Prompt = theme.Focused.TextInput.Prompt.Foreground(purple)
	return theme
}
