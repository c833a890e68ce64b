package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewProfilesCommand creates the profiles command
func NewProfilesCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles GAME",
		Short: "List the profiles of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, session, err := env.openSession(args[0])
			if err != nil {
				return err
			}

			profiles := session.Profiles()
			if len(profiles) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No profiles in %s\n", session.Game().ProfilesDirectory)
				return nil
			}
			for _, profile := range profiles {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), profile.Name())
			}
			return nil
		},
	}
}

// NewProfileCommand creates the profile command group
func NewProfileCommand(env *Env) *cobra.Command {
	cobraCmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage profiles",
	}

	cobraCmd.AddCommand(&cobra.Command{
		Use:   "create GAME [NAME]",
		Short: "Create an empty profile",
		Long:  `Create an empty profile. Prompts for the name when it is omitted.`,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, session, err := env.openSession(args[0])
			if err != nil {
				return err
			}

			name, err := env.nameArg(args, 1, "Profile name", session.ProfilesRoot())
			if err != nil {
				return err
			}

			profile, err := session.CreateProfile(name)
			if err != nil {
				return fmt.Errorf("failed to create profile: %w", err)
			}

			env.logger.Debug("created profile", "game", session.Game().Name, "path", profile.Location())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Created profile %s\n", profile.Name())
			return nil
		},
	})

	return cobraCmd
}
