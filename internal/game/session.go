package game

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/jakoblorz/savekeeper/internal/filesystem"
	"github.com/jakoblorz/savekeeper/internal/saves"
)

// Session is an opened game: the loaded profiles tree and the current
// savefile. Both roots are parentless and only replaced through
// SetProfilesDirectory and SetSavefilePath.
type Session struct {
	fs       filesystem.FileSystem
	game     *Game
	profiles *saves.Folder
	savefile *saves.Savefile
	logger   *slog.Logger
}

// NewSession creates a session for g without reading the profiles directory.
// Call Reload, or SetProfilesDirectory, before using the profiles.
func NewSession(fs filesystem.FileSystem, g *Game) *Session {
	return &Session{
		fs:       fs,
		game:     g,
		savefile: saves.NewRootSavefile(fs, g.SavefilePath),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the logger used while loading the profiles directory.
// Entries skipped by .saveignore are logged at Debug.
func (s *Session) WithLogger(logger *slog.Logger) *Session {
	s.logger = logger
	return s
}

// Open creates a session and loads the profiles directory of g.
func Open(fs filesystem.FileSystem, g *Game) (*Session, error) {
	s := NewSession(fs, g)
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) loadProfilesRoot(dir string) (*saves.Folder, error) {
	dir = filepath.Clean(dir)
	if !s.fs.DirectoryExists(dir) {
		return nil, &saves.MismatchError{Path: dir, Reason: "profiles directory does not exist"}
	}

	ignore, err := loadIgnoreFile(s.fs, dir, s.logger)
	if err != nil {
		return nil, err
	}

	root := saves.NewRootFolder(s.fs, dir).WithIgnorer(ignore)
	if err := root.LoadChildren(); err != nil {
		return nil, fmt.Errorf("failed to load profiles of %s: %w", s.game.Name, err)
	}
	return root, nil
}

func (s *Session) Game() *Game { return s.game }

// ProfilesRoot returns the folder holding every profile.
func (s *Session) ProfilesRoot() *saves.Folder { return s.profiles }

// Savefile returns the game's current savefile.
func (s *Session) Savefile() *saves.Savefile { return s.savefile }

// Reload re-reads the profiles directory, keeping open folders open.
func (s *Session) Reload() error {
	if s.profiles == nil {
		profiles, err := s.loadProfilesRoot(s.game.ProfilesDirectory)
		if err != nil {
			return err
		}
		s.profiles = profiles
		return nil
	}
	return s.profiles.LoadChildren()
}

// Profiles returns one profile per subdirectory of the profiles directory.
func (s *Session) Profiles() []*saves.Profile {
	var profiles []*saves.Profile
	if s.profiles == nil {
		return nil
	}
	for _, child := range s.profiles.Children() {
		if folder, ok := child.(*saves.Folder); ok {
			profiles = append(profiles, saves.NewProfile(folder, s.game.Name))
		}
	}
	return profiles
}

// Profile returns the profile called name, compared case-insensitively.
func (s *Session) Profile(name string) (*saves.Profile, error) {
	if s.profiles == nil {
		return nil, &saves.StateError{Op: "profile", Reason: "profiles of " + s.game.Name + " are not loaded"}
	}
	folder, ok := s.profiles.Find(name).(*saves.Folder)
	if !ok {
		return nil, &saves.InputError{Value: name, Reason: "no such profile in " + s.game.Name}
	}
	return saves.NewProfile(folder, s.game.Name), nil
}

// CreateProfile creates an empty profile directory.
func (s *Session) CreateProfile(name string) (*saves.Profile, error) {
	if s.profiles == nil {
		return nil, &saves.StateError{Op: "create profile", Reason: "profiles of " + s.game.Name + " are not loaded"}
	}
	folder, err := s.profiles.CreateChild(name)
	if err != nil {
		return nil, err
	}
	return saves.NewProfile(folder, s.game.Name), nil
}

// LoadSave overwrites the current savefile with src so the game picks it up.
func (s *Session) LoadSave(src *saves.Savefile) error {
	return s.savefile.OverwriteContents(src)
}

// ImportSave copies the current savefile into dst under a unique name.
func (s *Session) ImportSave(dst *saves.Folder) (*saves.Savefile, error) {
	return s.savefile.CopyTo(dst)
}

// SetProfilesDirectory replaces the profiles root. The directory must exist.
// The game record is updated; saving the registry is up to the caller.
func (s *Session) SetProfilesDirectory(path string) error {
	abs, err := absPath(path)
	if err != nil {
		return err
	}
	profiles, err := s.loadProfilesRoot(abs)
	if err != nil {
		return err
	}
	s.profiles = profiles
	s.game.ProfilesDirectory = profiles.Location()
	return nil
}

// SetSavefilePath replaces the current savefile. The file does not need to
// exist yet; games often create it on first save.
func (s *Session) SetSavefilePath(path string) error {
	abs, err := absPath(path)
	if err != nil {
		return err
	}
	if s.fs.DirectoryExists(abs) {
		return &saves.InputError{Value: path, Reason: "savefile path is a directory"}
	}
	s.savefile = saves.NewRootSavefile(s.fs, abs)
	s.game.SavefilePath = s.savefile.Location()
	return nil
}
