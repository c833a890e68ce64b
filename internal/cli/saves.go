package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLoadCommand creates the load command
func NewLoadCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "load GAME PROFILE PATH",
		Short: "Load a profile savefile into the game",
		Long:  `Overwrite the game's current savefile with the savefile at PATH.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opened, err := env.openProfile(args[0], args[1])
			if err != nil {
				return err
			}
			save, err := opened.resolveSavefile(args[2])
			if err != nil {
				return err
			}

			if err := opened.session.LoadSave(save); err != nil {
				return fmt.Errorf("failed to load %s: %w", opened.display(save), err)
			}

			env.logger.Debug("loaded savefile", "from", save.Location(), "to", opened.session.Savefile().Location())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Loaded %s into %s\n", opened.display(save), opened.session.Game().Name)
			return nil
		},
	}
}

// NewImportCommand creates the import command
func NewImportCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "import GAME PROFILE [DESTPATH]",
		Short: "Copy the game's current savefile into a profile",
		Long: `Copy the game's current savefile into the folder at DESTPATH, or the
profile folder when omitted. Existing savefiles are never overwritten.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opened, err := env.openProfile(args[0], args[1])
			if err != nil {
				return err
			}
			dest := opened.profile.Folder
			if len(args) > 2 {
				if dest, err = opened.resolveFolder(args[2]); err != nil {
					return err
				}
			}

			imported, err := opened.session.ImportSave(dest)
			if err != nil {
				return fmt.Errorf("failed to import savefile: %w", err)
			}

			env.logger.Debug("imported savefile", "from", opened.session.Savefile().Location(), "to", imported.Location())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported as %s\n", opened.display(imported))
			return nil
		},
	}
}

// NewBrowseCommand creates the browse command
func NewBrowseCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "browse GAME PROFILE",
		Short: "Browse and organise a profile interactively",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opened, err := env.openProfile(args[0], args[1])
			if err != nil {
				return err
			}
			return env.browse(opened.profile)
		},
	}
}
