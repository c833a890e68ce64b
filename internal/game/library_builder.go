package game

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/savekeeper/internal/filesystem"
)

// LibraryBuilder helps create test game libraries on a mock filesystem.
// Every game gets its savefile under <root>/games/<dir> and its profiles
// under <root>/saves/<dir>.
type LibraryBuilder struct {
	fs    *filesystem.MockFileSystem
	root  string
	games []GameConfig
}

// GameConfig represents a game added to the builder
type GameConfig struct {
	Name              string
	SavefilePath      string
	ProfilesDirectory string
}

// NewLibraryBuilder creates a new LibraryBuilder
func NewLibraryBuilder(root string) *LibraryBuilder {
	fs := filesystem.NewMockFileSystem()
	if filepath.Dir(root) != root {
		fs.AddDir(root)
	}

	return &LibraryBuilder{
		fs:   fs,
		root: root,
	}
}

// AddGame adds a game whose current savefile is called savefile and holds
// content. A nil content leaves the savefile missing.
func (lb *LibraryBuilder) AddGame(name, dir, savefile string, content []byte) *LibraryBuilder {
	config := GameConfig{
		Name:              name,
		SavefilePath:      filepath.Join(lb.root, "games", dir, savefile),
		ProfilesDirectory: filepath.Join(lb.root, "saves", dir),
	}
	lb.games = append(lb.games, config)

	lb.fs.AddDir(config.ProfilesDirectory)
	if content != nil {
		lb.fs.AddFile(config.SavefilePath, content)
	} else {
		lb.fs.AddDir(filepath.Dir(config.SavefilePath))
	}

	return lb
}

// AddProfile adds an empty profile to a game
func (lb *LibraryBuilder) AddProfile(game, profile string) *LibraryBuilder {
	if config := lb.game(game); config != nil {
		lb.fs.AddDir(filepath.Join(config.ProfilesDirectory, profile))
	}
	return lb
}

// AddSave adds a savefile at a slash separated path inside a profile.
// Missing folders on the way are created.
func (lb *LibraryBuilder) AddSave(game, profile, path string, content []byte) *LibraryBuilder {
	if config := lb.game(game); config != nil {
		lb.fs.AddFile(filepath.Join(config.ProfilesDirectory, profile, filepath.FromSlash(path)), content)
	}
	return lb
}

// AddIgnore writes a .saveignore file into the profiles directory of a game
func (lb *LibraryBuilder) AddIgnore(game, patterns string) *LibraryBuilder {
	if config := lb.game(game); config != nil {
		lb.fs.AddFile(filepath.Join(config.ProfilesDirectory, IgnoreFileName), []byte(patterns))
	}
	return lb
}

// Build registers every game in a registry at dataPath and returns the
// filesystem
func (lb *LibraryBuilder) Build(dataPath string) (*filesystem.MockFileSystem, error) {
	registry, err := LoadRegistry(lb.fs, dataPath)
	if err != nil {
		return nil, err
	}

	for _, config := range lb.games {
		if _, err := registry.Add(config.Name, config.SavefilePath, config.ProfilesDirectory); err != nil {
			return nil, fmt.Errorf("failed to register %s: %w", config.Name, err)
		}
	}

	if err := registry.Save(); err != nil {
		return nil, err
	}
	return lb.fs, nil
}

// FileSystem returns the mock filesystem
func (lb *LibraryBuilder) FileSystem() *filesystem.MockFileSystem {
	return lb.fs
}

func (lb *LibraryBuilder) game(name string) *GameConfig {
	for i := range lb.games {
		if lb.games[i].Name == name {
			return &lb.games[i]
		}
	}
	return nil
}
