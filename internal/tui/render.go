package tui

import (
	"strings"

	"github.com/jakoblorz/savekeeper/internal/saves"
)

const (
	openMarker   = "▾ "
	closedMarker = "▸ "
	fileMarker   = "  "
	indent       = "  "
)

// RenderEntries renders the profile's flattened list, one entry per line.
// The entry at cursor is highlighted; pass -1 for none.
func RenderEntries(profile *saves.Profile, cursor int) string {
	entries := profile.SaveListEntries()
	if len(entries) == 0 {
		return SubtleStyle.Render("(empty profile)") + "\n"
	}

	var b strings.Builder
	for i, item := range entries {
		b.WriteString(RenderEntry(item, profile.Depth(item), i == cursor))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderEntry renders a single line of the flattened list.
func RenderEntry(item saves.Item, depth int, selected bool) string {
	marker := fileMarker
	name := FileStyle.Render(item.Name())
	if folder, ok := item.(*saves.Folder); ok {
		marker = closedMarker
		if folder.IsOpen() {
			marker = openMarker
		}
		name = FolderStyle.Render(item.Name() + "/")
	}

	prefix := "  "
	if selected {
		prefix = SelectedStyle.Render("> ")
		name = SelectedStyle.Render(item.Name())
		if item.IsFolder() {
			name = SelectedStyle.Render(item.Name() + "/")
		}
	}

	return prefix + strings.Repeat(indent, max(depth, 0)) + MarkerStyle.Render(marker) + name
}
