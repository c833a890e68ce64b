package cli

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/jakoblorz/savekeeper/internal/game"
	"github.com/spf13/cobra"
)

const defaultGameFormat = `{{ .Name }}  {{ .ID }}
  savefile: {{ .SavefilePath }}
  profiles: {{ .ProfilesDirectory }}`

// NewGameCommand creates the game command group
func NewGameCommand(env *Env) *cobra.Command {
	cobraCmd := &cobra.Command{
		Use:   "game",
		Short: "Register and configure games",
	}

	cobraCmd.AddCommand(newGameAddCommand(env))
	cobraCmd.AddCommand(newGameListCommand(env))
	cobraCmd.AddCommand(newGameRemoveCommand(env))
	cobraCmd.AddCommand(newGameSetCommand(env))

	return cobraCmd
}

// GameAddCommand handles game add
type GameAddCommand struct {
	env      *Env
	savefile string
	profiles string
}

func newGameAddCommand(env *Env) *cobra.Command {
	cmd := &GameAddCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Register a game",
		Long: `Register a game with the savefile it loads and the directory holding
its profiles. Neither path has to exist yet.`,
		Example: `  savekeeper game add "Hollow Knight" \
    --savefile ~/.config/unity3d/Team\ Cherry/Hollow\ Knight/user1.dat \
    --profiles ~/saves/hollow-knight`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.savefile, "savefile", "", "Path of the savefile the game loads")
	cobraCmd.Flags().StringVar(&cmd.profiles, "profiles", "", "Directory whose subdirectories are profiles")
	_ = cobraCmd.MarkFlagRequired("savefile")
	_ = cobraCmd.MarkFlagRequired("profiles")

	return cobraCmd
}

// Run executes game add
func (c *GameAddCommand) Run(cmd *cobra.Command, args []string) error {
	registry, err := c.env.loadRegistry()
	if err != nil {
		return err
	}

	g, err := registry.Add(args[0], c.savefile, c.profiles)
	if err != nil {
		return fmt.Errorf("failed to add game: %w", err)
	}
	if err := registry.Save(); err != nil {
		return err
	}

	c.env.logger.Debug("registered game", "game", g.Name, "id", g.ID)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Registered %s (%s)\n", g.Name, g.ID)
	return nil
}

// GameListCommand handles game list
type GameListCommand struct {
	env    *Env
	format string
}

func newGameListCommand(env *Env) *cobra.Command {
	cmd := &GameListCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered games",
		Long: `List registered games. The output of each game can be customised with a
Go template. Sprig functions are available.`,
		Example: `  savekeeper game list --format '{{ .Name | upper }}'
  savekeeper game list --format '{{ .Name }}: {{ .ProfilesDirectory | base }}'`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.format, "format", defaultGameFormat, "Go template rendered for each game")

	return cobraCmd
}

// Run executes game list
func (c *GameListCommand) Run(cmd *cobra.Command, args []string) error {
	tmpl, err := template.New("game").Funcs(sprig.TxtFuncMap()).Parse(c.format)
	if err != nil {
		return fmt.Errorf("failed to parse format: %w", err)
	}

	registry, err := c.env.loadRegistry()
	if err != nil {
		return err
	}

	games := registry.List()
	if len(games) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No games registered")
		return nil
	}

	for _, g := range games {
		var b strings.Builder
		if err := tmpl.Execute(&b, g); err != nil {
			return fmt.Errorf("failed to render %s: %w", g.Name, err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), b.String())
	}
	return nil
}

func newGameRemoveCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Unregister a game",
		Long:  `Unregister a game. Its savefile and profiles stay on disk.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := env.loadRegistry()
			if err != nil {
				return err
			}
			g, err := registry.Remove(args[0])
			if err != nil {
				return err
			}
			if err := registry.Save(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed %s\n", g.Name)
			return nil
		},
	}
}

// GameSetCommand handles game set
type GameSetCommand struct {
	env      *Env
	savefile string
	profiles string
}

func newGameSetCommand(env *Env) *cobra.Command {
	cmd := &GameSetCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "set NAME",
		Short: "Change the savefile or profiles directory of a game",
		Long: `Change where a game's savefile or profiles live. A new profiles directory
must exist.`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.savefile, "savefile", "", "New savefile path")
	cobraCmd.Flags().StringVar(&cmd.profiles, "profiles", "", "New profiles directory")

	return cobraCmd
}

// Run executes game set
func (c *GameSetCommand) Run(cmd *cobra.Command, args []string) error {
	if c.savefile == "" && c.profiles == "" {
		return fmt.Errorf("nothing to change (use --savefile or --profiles)")
	}

	registry, err := c.env.loadRegistry()
	if err != nil {
		return err
	}
	g, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	// The current profiles directory may be gone; that is a reason to move it.
	session := game.NewSession(c.env.fs, g).WithLogger(c.env.logger)
	if c.profiles != "" {
		if err := session.SetProfilesDirectory(c.profiles); err != nil {
			return fmt.Errorf("failed to set profiles directory: %w", err)
		}
	}
	if c.savefile != "" {
		if err := session.SetSavefilePath(c.savefile); err != nil {
			return fmt.Errorf("failed to set savefile: %w", err)
		}
	}
	if err := registry.Save(); err != nil {
		return err
	}

	c.env.logger.Debug("updated game", "game", g.Name, "savefile", g.SavefilePath, "profiles", g.ProfilesDirectory)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated %s\n", g.Name)
	return nil
}
