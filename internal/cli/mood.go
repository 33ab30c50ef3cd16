package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/mindcare/internal/api/response"
)

func newMoodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Daily mood check-in",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <mood>",
		Short: "Record today's mood (Excellent, Good, Okay, Struggling, Difficult)",
		Args:  cobra.ExactArgs(1),
		RunE: withProfile(func(cmd *cobra.Command, args []string) error {
			var result response.Mood
			if err := client.Post(cmd.Context(), "/api/v1/mood", map[string]string{"mood": args[0]}, &result); err != nil {
				return err
			}
			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		}),
	})

	return cmd
}
