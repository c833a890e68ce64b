package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMkdirCommand creates the mkdir command
func NewMkdirCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir GAME PROFILE PATH [NAME]",
		Short: "Create a folder inside a profile",
		Long: `Create a folder named NAME inside the folder at PATH. Use "." for the
profile folder itself. Prompts for the name when it is omitted.`,
		Example: `  savekeeper mkdir "Hollow Knight" main . bosses`,
		Args:    cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			opened, err := env.openProfile(args[0], args[1])
			if err != nil {
				return err
			}
			parent, err := opened.resolveFolder(args[2])
			if err != nil {
				return err
			}

			name, err := env.nameArg(args, 3, "Folder name", parent)
			if err != nil {
				return err
			}

			folder, err := opened.profile.CreateFolder(parent, name)
			if err != nil {
				return fmt.Errorf("failed to create folder: %w", err)
			}

			env.logger.Debug("created folder", "path", folder.Location())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", opened.display(folder))
			return nil
		},
	}
}

// NewRenameCommand creates the rename command
func NewRenameCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "rename GAME PROFILE PATH [NEWNAME]",
		Short: "Rename a savefile or folder",
		Long: `Rename the item at PATH. Use "." to rename the profile itself. Prompts
for the new name when it is omitted.`,
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			opened, err := env.openProfile(args[0], args[1])
			if err != nil {
				return err
			}
			item, err := opened.resolve(args[2])
			if err != nil {
				return err
			}

			name, err := env.nameArg(args, 3, fmt.Sprintf("Rename %s to", item.Name()), item.Parent())
			if err != nil {
				return err
			}

			before := opened.display(item)
			if err := opened.profile.RenameItem(item, name); err != nil {
				return fmt.Errorf("failed to rename %s: %w", before, err)
			}

			env.logger.Debug("renamed", "from", before, "to", item.Location())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Renamed %s to %s\n", before, opened.display(item))
			return nil
		},
	}
}

// NewMoveCommand creates the move command
func NewMoveCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "move GAME PROFILE PATH DESTPATH",
		Short: "Move a savefile or folder into another folder",
		Long:  `Move the item at PATH into the folder at DESTPATH, keeping its name.`,
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			opened, err := env.openProfile(args[0], args[1])
			if err != nil {
				return err
			}
			item, err := opened.resolve(args[2])
			if err != nil {
				return err
			}
			dest, err := opened.resolveFolder(args[3])
			if err != nil {
				return err
			}

			before := opened.display(item)
			if err := opened.profile.MoveItem(item, dest); err != nil {
				return fmt.Errorf("failed to move %s: %w", before, err)
			}

			env.logger.Debug("moved", "from", before, "to", item.Location())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Moved %s to %s\n", before, opened.display(item))
			return nil
		},
	}
}

// RemoveCommand handles the rm command
type RemoveCommand struct {
	env *Env
	yes bool
}

// NewRemoveCommand creates the rm command
func NewRemoveCommand(env *Env) *cobra.Command {
	cmd := &RemoveCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "rm GAME PROFILE PATH",
		Short: "Delete a savefile or folder",
		Long:  `Delete the item at PATH. Folders are deleted with everything inside.`,
		Args:  cobra.ExactArgs(3),
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().BoolVarP(&cmd.yes, "yes", "y", false, "Do not ask for confirmation")

	return cobraCmd
}

// Run executes the rm command
func (c *RemoveCommand) Run(cmd *cobra.Command, args []string) error {
	opened, err := c.env.openProfile(args[0], args[1])
	if err != nil {
		return err
	}
	item, err := opened.resolve(args[2])
	if err != nil {
		return err
	}
	path := opened.display(item)

	if !c.yes {
		description := "The savefile is deleted from disk."
		if item.IsFolder() {
			description = "The folder and everything inside it are deleted from disk."
		}
		confirmed, err := c.env.confirm(fmt.Sprintf("Delete %s?", path), description)
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	if err := opened.profile.DeleteItem(item); err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}

	c.env.logger.Debug("deleted", "path", item.Location())
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted %s\n", path)
	return nil
}

// NewCopyCommand creates the copy command
func NewCopyCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "copy GAME PROFILE PATH DESTPATH",
		Short: "Copy a savefile into a folder",
		Long: `Copy the savefile at PATH into the folder at DESTPATH. When the name is
taken the copy gets a numbered suffix.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			opened, err := env.openProfile(args[0], args[1])
			if err != nil {
				return err
			}
			save, err := opened.resolveSavefile(args[2])
			if err != nil {
				return err
			}
			dest, err := opened.resolveFolder(args[3])
			if err != nil {
				return err
			}

			copied, err := opened.profile.CopySavefile(save, dest)
			if err != nil {
				return fmt.Errorf("failed to copy %s: %w", opened.display(save), err)
			}

			env.logger.Debug("copied", "from", save.Location(), "to", copied.Location())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Copied %s to %s\n", opened.display(save), opened.display(copied))
			return nil
		},
	}
}
