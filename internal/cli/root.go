package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jakoblorz/savekeeper/internal/filesystem"
	"github.com/jakoblorz/savekeeper/internal/saves"
	"github.com/jakoblorz/savekeeper/internal/tui"
	"github.com/jakoblorz/savekeeper/internal/tui/browse"
	"github.com/spf13/cobra"
)

// DataEnvVar overrides the default registry location.
const DataEnvVar = "SAVEKEEPER_DATA"

// Env is shared by every command: the filesystem, the resolved flags and the
// interactive hooks. Tests replace the hooks to avoid a terminal.
type Env struct {
	fs       filesystem.FileSystem
	dataPath string
	verbose  bool
	logger   *slog.Logger

	promptName func(title, placeholder string, validate func(string) error) (string, error)
	confirm    func(title, description string) (bool, error)
	browse     func(profile *saves.Profile) error
}

// NewEnv creates an Env using the interactive huh prompts.
func NewEnv(fs filesystem.FileSystem) *Env {
	return &Env{
		fs:         fs,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		promptName: tui.PromptName,
		confirm:    tui.Confirm,
		browse:     browse.Run,
	}
}

// NewRootCommand creates the root command
func NewRootCommand(env *Env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "savekeeper",
		Short: "Manage save game profiles",
		Long: `A CLI tool for keeping many save games per game.

Each game has one current savefile and a profiles directory. Every profile is
a folder of savefiles that can be organised, loaded into the game and
imported from it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&env.dataPath, "data", "",
		fmt.Sprintf("Path to the games registry (default $%s or the user config dir)", DataEnvVar))
	rootCmd.PersistentFlags().BoolVarP(&env.verbose, "verbose", "v", false, "Log every filesystem change")

	// Add subcommands
	rootCmd.AddCommand(NewGameCommand(env))
	rootCmd.AddCommand(NewProfilesCommand(env))
	rootCmd.AddCommand(NewProfileCommand(env))
	rootCmd.AddCommand(NewTreeCommand(env))
	rootCmd.AddCommand(NewMkdirCommand(env))
	rootCmd.AddCommand(NewRenameCommand(env))
	rootCmd.AddCommand(NewMoveCommand(env))
	rootCmd.AddCommand(NewRemoveCommand(env))
	rootCmd.AddCommand(NewCopyCommand(env))
	rootCmd.AddCommand(NewLoadCommand(env))
	rootCmd.AddCommand(NewImportCommand(env))
	rootCmd.AddCommand(NewBrowseCommand(env))

	return rootCmd
}

func (e *Env) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if e.verbose {
		level = slog.LevelDebug
	}
	e.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if e.dataPath != "" {
		return nil
	}
	if fromEnv := os.Getenv(DataEnvVar); fromEnv != "" {
		e.dataPath = fromEnv
		return nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return fmt.Errorf("failed to locate config directory (set --data or $%s): %w", DataEnvVar, err)
	}
	e.dataPath = filepath.Join(dir, "savekeeper", "games.json")
	return nil
}

// Execute runs the root command
func Execute() error {
	env := NewEnv(filesystem.NewOSFileSystem())
	rootCmd := NewRootCommand(env)
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("Error: "+err.Error()))
		if errors.Is(err, saves.ErrMismatch) {
			_, _ = fmt.Fprintln(os.Stderr, tui.SubtleStyle.Render("The profiles changed on disk since they were loaded. Run the command again to reload."))
		}
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
