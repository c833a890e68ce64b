package cli

import (
	"bytes"
	"testing"

	"github.com/jakoblorz/savekeeper/internal/filesystem"
	"github.com/jakoblorz/savekeeper/internal/game"
	"github.com/stretchr/testify/require"
)

const testDataPath = "/data/games.json"

// newTestEnv builds a mock filesystem with one registered game, "Hollow
// Knight", whose profiles are main (a.save, b.save, Sub/c.save) and alt.
func newTestEnv(t *testing.T) (*Env, *filesystem.MockFileSystem) {
	t.Helper()

	fs, err := game.NewLibraryBuilder("/").
		AddGame("Hollow Knight", "hk", "user1.dat", []byte("current")).
		AddSave("Hollow Knight", "main", "a.save", []byte("a")).
		AddSave("Hollow Knight", "main", "b.save", []byte("b")).
		AddSave("Hollow Knight", "main", "Sub/c.save", []byte("c")).
		AddProfile("Hollow Knight", "alt").
		Build(testDataPath)
	require.NoError(t, err)

	env := NewEnv(fs)
	env.promptName = func(string, string, func(string) error) (string, error) {
		t.Fatal("unexpected name prompt")
		return "", nil
	}
	env.confirm = func(string, string) (bool, error) {
		t.Fatal("unexpected confirmation")
		return false, nil
	}

	return env, fs
}

// run executes one command line and returns what it printed to stdout.
func run(env *Env, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := NewRootCommand(env)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--data", testDataPath}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

func TestRoot_DataPathFromEnvironment(t *testing.T) {
	t.Setenv(DataEnvVar, "/elsewhere/games.json")

	fs := filesystem.NewMockFileSystem()
	env := NewEnv(fs)

	cmd := NewRootCommand(env)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"game", "add", "Celeste", "--savefile", "/c/0.celeste", "--profiles", "/c/profiles"})
	require.NoError(t, cmd.Execute())

	require.True(t, fs.FileExists("/elsewhere/games.json"))
}

func TestRoot_VerboseLogsMutations(t *testing.T) {
	env, _ := newTestEnv(t)

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand(env)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--data", testDataPath, "--verbose", "mkdir", "Hollow Knight", "main", ".", "Bosses"})
	require.NoError(t, cmd.Execute())

	require.Contains(t, stderr.String(), "level=DEBUG")
	require.Contains(t, stderr.String(), "created folder")
	require.Contains(t, stderr.String(), "/saves/hk/main/Bosses")
}

func TestRoot_VerboseLogsIgnoredEntries(t *testing.T) {
	env, fs := newTestEnv(t)
	fs.AddFile("/saves/hk/.saveignore", []byte("*.bak\n"))
	fs.AddFile("/saves/hk/main/a.save.bak", nil)

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand(env)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--data", testDataPath, "--verbose", "tree", "Hollow Knight", "main"})
	require.NoError(t, cmd.Execute())

	require.NotContains(t, stdout.String(), "a.save.bak")
	require.Contains(t, stderr.String(), "ignored entry")
	require.Contains(t, stderr.String(), "/saves/hk/main/a.save.bak")
}
