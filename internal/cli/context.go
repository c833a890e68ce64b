package cli

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/savekeeper/internal/game"
	"github.com/jakoblorz/savekeeper/internal/saves"
)

// openedProfile bundles what item commands need: the registry (to persist
// root changes), the session and the profile inside it.
type openedProfile struct {
	registry *game.Registry
	session  *game.Session
	profile  *saves.Profile
}

func (e *Env) loadRegistry() (*game.Registry, error) {
	registry, err := game.LoadRegistry(e.fs, e.dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load games: %w", err)
	}
	return registry, nil
}

func (e *Env) openSession(gameName string) (*game.Registry, *game.Session, error) {
	registry, err := e.loadRegistry()
	if err != nil {
		return nil, nil, err
	}

	g, err := registry.Get(gameName)
	if err != nil {
		return nil, nil, err
	}

	session := game.NewSession(e.fs, g).WithLogger(e.logger)
	if err := session.Reload(); err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", g.Name, err)
	}
	e.logger.Debug("opened game", "game", g.Name, "profiles", g.ProfilesDirectory)

	return registry, session, nil
}

func (e *Env) openProfile(gameName, profileName string) (*openedProfile, error) {
	registry, session, err := e.openSession(gameName)
	if err != nil {
		return nil, err
	}

	profile, err := session.Profile(profileName)
	if err != nil {
		return nil, err
	}

	return &openedProfile{
		registry: registry,
		session:  session,
		profile:  profile,
	}, nil
}

// resolve finds the item at a slash separated path inside the profile.
func (o *openedProfile) resolve(path string) (saves.Item, error) {
	return o.profile.Resolve(path)
}

// resolveFolder is resolve restricted to folders. An empty path is the
// profile folder itself.
func (o *openedProfile) resolveFolder(path string) (*saves.Folder, error) {
	item, err := o.resolve(path)
	if err != nil {
		return nil, err
	}
	folder, ok := item.(*saves.Folder)
	if !ok {
		return nil, &saves.InputError{Value: path, Reason: "not a folder"}
	}
	return folder, nil
}

func (o *openedProfile) resolveSavefile(path string) (*saves.Savefile, error) {
	item, err := o.resolve(path)
	if err != nil {
		return nil, err
	}
	save, ok := item.(*saves.Savefile)
	if !ok {
		return nil, &saves.InputError{Value: path, Reason: "not a savefile"}
	}
	return save, nil
}

// display returns the path of item relative to the profile, using forward
// slashes. The profile folder itself is shown by name.
func (o *openedProfile) display(item saves.Item) string {
	rel, err := filepath.Rel(o.profile.Location(), item.Location())
	if err != nil {
		return item.Location()
	}
	if rel == "." {
		return item.Name()
	}
	return filepath.ToSlash(rel)
}

func childNames(folder *saves.Folder) []string {
	names := make([]string, 0, len(folder.Children()))
	for _, child := range folder.Children() {
		names = append(names, child.Name())
	}
	return names
}

// nameArg returns args[i] when present and otherwise prompts for a name that
// passes validation against the siblings in folder.
func (e *Env) nameArg(args []string, i int, title string, folder *saves.Folder) (string, error) {
	if len(args) > i {
		return args[i], nil
	}
	siblings := childNames(folder)
	return e.promptName(title, "", func(name string) error {
		return saves.ValidateName(name, siblings)
	})
}
