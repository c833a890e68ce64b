package cli

import (
	"fmt"

	"github.com/jakoblorz/savekeeper/internal/saves"
	"github.com/jakoblorz/savekeeper/internal/tui"
	"github.com/spf13/cobra"
)

// TreeCommand handles the tree command
type TreeCommand struct {
	env  *Env
	open []string
	all  bool
}

// NewTreeCommand creates the tree command
func NewTreeCommand(env *Env) *cobra.Command {
	cmd := &TreeCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "tree GAME PROFILE",
		Short: "Print the savefiles of a profile",
		Long: `Print the flattened save list of a profile. Folders are closed unless
opened with --open or --all.`,
		Example: `  savekeeper tree "Hollow Knight" main
  savekeeper tree "Hollow Knight" main --open bosses --open bosses/radiance
  savekeeper tree "Hollow Knight" main --all`,
		Args: cobra.ExactArgs(2),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringSliceVar(&cmd.open, "open", nil, "Folder to open, relative to the profile (repeatable)")
	cobraCmd.Flags().BoolVar(&cmd.all, "all", false, "Open every folder")

	return cobraCmd
}

// Run executes the tree command
func (c *TreeCommand) Run(cmd *cobra.Command, args []string) error {
	opened, err := c.env.openProfile(args[0], args[1])
	if err != nil {
		return err
	}
	profile := opened.profile

	if c.all {
		openAll(profile.Folder)
	}
	for _, path := range c.open {
		folder, err := opened.resolveFolder(path)
		if err != nil {
			return err
		}
		// Opening a nested folder only shows when its ancestors are open too.
		for f := folder; f != nil && f != profile.Folder; f = f.Parent() {
			f.SetOpen(true)
		}
	}
	profile.UpdateSaveListEntries()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), tui.TitleStyle.Render(fmt.Sprintf("%s / %s", profile.Game(), profile.Name())))
	_, _ = fmt.Fprint(cmd.OutOrStdout(), tui.RenderEntries(profile, -1))
	return nil
}

func openAll(folder *saves.Folder) {
	for _, child := range folder.Children() {
		if sub, ok := child.(*saves.Folder); ok {
			sub.SetOpen(true)
			openAll(sub)
		}
	}
}
