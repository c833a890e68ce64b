package game

import "errors"

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already registered")
)

// Game is a registered game.
type Game struct {
	// ID is generated on registration and never changes
	ID string `json:"id"`

	// Name is unique among registered games, compared case-insensitively
	Name string `json:"name"`

	// SavefilePath is the absolute path of the file the game itself loads
	SavefilePath string `json:"savefile"`

	// ProfilesDirectory is the absolute path whose subdirectories are profiles
	ProfilesDirectory string `json:"profilesDirectory"`
}
