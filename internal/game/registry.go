package game

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jakoblorz/savekeeper/internal/filesystem"
)

const registryVersion = 1

type registryFile struct {
	Version   int     `json:"version"`
	UpdatedAt string  `json:"updatedAt"`
	Games     []*Game `json:"games"`
}

// Registry is the set of registered games, persisted as a JSON data file.
type Registry struct {
	fs    filesystem.FileSystem
	path  string
	games []*Game
}

// LoadRegistry reads the registry at path. A missing or empty file yields an
// empty registry.
func LoadRegistry(fs filesystem.FileSystem, path string) (*Registry, error) {
	r := &Registry{fs: fs, path: path}
	if !fs.FileExists(path) {
		return r, nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return r, nil
	}

	var file registryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse registry %s: %w", path, err)
	}
	if file.Version > registryVersion {
		return nil, fmt.Errorf("registry %s has unsupported version %d", path, file.Version)
	}

	r.games = file.Games
	r.sort()
	return r, nil
}

// Path returns the location of the data file.
func (r *Registry) Path() string {
	return r.path
}

// Save writes the registry back to its data file.
func (r *Registry) Save() error {
	file := registryFile{
		Version:   registryVersion,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		Games:     r.games,
	}
	if file.Games == nil {
		file.Games = []*Game{}
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}
	if err := r.fs.WriteFile(r.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write registry: %w", err)
	}
	return nil
}

// List returns the games sorted by name.
func (r *Registry) List() []*Game {
	return r.games
}

// Get finds a game by ID or by case-insensitive name.
func (r *Registry) Get(nameOrID string) (*Game, error) {
	for _, g := range r.games {
		if g.ID == nameOrID {
			return g, nil
		}
	}
	for _, g := range r.games {
		if strings.EqualFold(g.Name, nameOrID) {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrGameNotFound, nameOrID)
}

// Add registers a new game. Paths are made absolute; they do not need to
// exist yet.
func (r *Registry) Add(name, savefilePath, profilesDirectory string) (*Game, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("game name cannot be empty")
	}
	if _, err := r.Get(name); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrGameExists, name)
	}

	savefile, err := absPath(savefilePath)
	if err != nil {
		return nil, err
	}
	profiles, err := absPath(profilesDirectory)
	if err != nil {
		return nil, err
	}

	id, err := generateID()
	if err != nil {
		return nil, err
	}

	g := &Game{
		ID:                id,
		Name:              name,
		SavefilePath:      savefile,
		ProfilesDirectory: profiles,
	}
	r.games = append(r.games, g)
	r.sort()
	return g, nil
}

// Remove unregisters a game. Nothing on disk is touched.
func (r *Registry) Remove(nameOrID string) (*Game, error) {
	g, err := r.Get(nameOrID)
	if err != nil {
		return nil, err
	}
	for i, candidate := range r.games {
		if candidate == g {
			r.games = append(r.games[:i:i], r.games[i+1:]...)
			break
		}
	}
	return g, nil
}

func (r *Registry) sort() {
	sort.SliceStable(r.games, func(i, j int) bool {
		return strings.ToLower(r.games[i].Name) < strings.ToLower(r.games[j].Name)
	})
}

func absPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}
