package saves

import (
	"testing"

	"github.com/jakoblorz/savekeeper/internal/filesystem"
	"github.com/stretchr/testify/require"
)

func TestProfile_SaveListEntries_Scenario(t *testing.T) {
	_, _, folder := newTestTree(t)
	profile := NewProfile(folder, "Game")

	require.Equal(t, "Game", profile.Game())
	require.Equal(t, []string{"Sub", "a.save", "b.save"}, names(profile.SaveListEntries()))

	sub := mustResolve(t, folder, "Sub").(*Folder)
	profile.SetOpen(sub, true)
	require.Equal(t, []string{"Sub", "c.save", "a.save", "b.save"}, names(profile.SaveListEntries()))

	profile.Toggle(sub)
	require.Equal(t, []string{"Sub", "a.save", "b.save"}, names(profile.SaveListEntries()))
}

func TestProfile_SaveListEntries_NestedOpenState(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile("/G/P/A/B/deep.save", nil)
	mfs.AddFile("/G/P/A/a1.save", nil)
	mfs.AddFile("/G/P/top.save", nil)

	folder := NewRootFolder(mfs, "/G/P")
	require.NoError(t, folder.LoadChildren())
	profile := NewProfile(folder, "Game")

	a := mustResolve(t, folder, "A").(*Folder)
	b := mustResolve(t, folder, "A/B").(*Folder)

	// B open but hidden inside closed A
	profile.SetOpen(b, true)
	require.Equal(t, []string{"A", "top.save"}, names(profile.SaveListEntries()))

	profile.SetOpen(b, false)
	profile.SetOpen(a, true)
	require.Equal(t, []string{"A", "B", "a1.save", "top.save"}, names(profile.SaveListEntries()))

	profile.SetOpen(b, true)
	require.Equal(t, []string{"A", "B", "deep.save", "a1.save", "top.save"}, names(profile.SaveListEntries()))

	require.Equal(t, 0, profile.Depth(a))
	require.Equal(t, 1, profile.Depth(b))
	require.Equal(t, 2, profile.Depth(mustResolve(t, folder, "A/B/deep.save")))
	require.Equal(t, -1, profile.Depth(NewRootSavefile(mfs, "/elsewhere.save")))
}

func TestProfile_MutationsRefreshEntries(t *testing.T) {
	mfs, _, folder := newTestTree(t)
	profile := NewProfile(folder, "Game")
	sub := mustResolve(t, folder, "Sub").(*Folder)
	profile.SetOpen(sub, true)

	created, err := profile.CreateFolder(folder, "Archive")
	require.NoError(t, err)
	require.Equal(t, []string{"Archive", "Sub", "c.save", "a.save", "b.save"}, names(profile.SaveListEntries()))

	require.NoError(t, profile.MoveItem(mustResolve(t, folder, "a.save"), sub))
	require.Equal(t, []string{"Archive", "Sub", "a.save", "c.save", "b.save"}, names(profile.SaveListEntries()))

	copied, err := profile.CopySavefile(mustResolve(t, folder, "b.save").(*Savefile), created)
	require.NoError(t, err)
	require.Equal(t, "b.save", copied.Name())
	profile.SetOpen(created, true)
	require.Equal(t, []string{"Archive", "b.save", "Sub", "a.save", "c.save", "b.save"}, names(profile.SaveListEntries()))

	require.NoError(t, profile.RenameItem(sub, "Zed"))
	require.Equal(t, []string{"Archive", "b.save", "Zed", "a.save", "c.save", "b.save"}, names(profile.SaveListEntries()))

	require.NoError(t, profile.DeleteItem(created))
	require.Equal(t, []string{"Zed", "a.save", "c.save", "b.save"}, names(profile.SaveListEntries()))

	mfs.AddFile("/G/Profile1/new.save", nil)
	require.NoError(t, profile.LoadChildren())
	require.Equal(t, []string{"Zed", "a.save", "c.save", "b.save", "new.save"}, names(profile.SaveListEntries()))
}

func TestProfile_FailedMutationKeepsEntries(t *testing.T) {
	mfs, _, folder := newTestTree(t)
	profile := NewProfile(folder, "Game")
	before := names(profile.SaveListEntries())

	require.NoError(t, mfs.DeleteFile("/G/Profile1/a.save"))
	require.ErrorIs(t, profile.DeleteItem(mustResolve(t, folder, "a.save")), ErrMismatch)
	require.Equal(t, before, names(profile.SaveListEntries()))
}

func TestProfile_CrossProfileMoveRefreshesOnDemand(t *testing.T) {
	_, root, folder := newTestTree(t)
	other, err := root.CreateChild("Profile2")
	require.NoError(t, err)

	source := NewProfile(folder, "Game")
	target := NewProfile(other, "Game")
	require.Empty(t, target.SaveListEntries())

	require.NoError(t, source.MoveItem(mustResolve(t, folder, "a.save"), target.Folder))
	require.Equal(t, []string{"Sub", "b.save"}, names(source.SaveListEntries()))
	require.Empty(t, target.SaveListEntries())

	_, err = source.CopySavefile(mustResolve(t, folder, "b.save").(*Savefile), target.Folder)
	require.NoError(t, err)

	target.UpdateSaveListEntries()
	require.Equal(t, []string{"a.save", "b.save"}, names(target.SaveListEntries()))
	require.Equal(t, 0, target.Depth(target.SaveListEntries()[0]))
}
