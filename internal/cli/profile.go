package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/mindcare/internal/api/response"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile management commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "new",
		Short: "Create a fresh profile and make it current",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Profile
			if err := client.Post(cmd.Context(), "/api/v1/profiles", nil, &result); err != nil {
				return err
			}
			if err := cfg.SaveProfile(result.ID); err != nil {
				return fmt.Errorf("failed to save profile: %w", err)
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current profile ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.ProfileID == "" {
				return fmt.Errorf("no profile yet, run 'mindcare profile new'")
			}
			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(response.Profile{ID: cfg.ProfileID})
			return nil
		},
	})

	return cmd
}
