package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/mindcare/internal/api/request"
	"github.com/mcoot/mindcare/internal/api/response"
)

func newEmergencyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emergency",
		Short: "Emergency helplines and crisis support",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Emergency
			if err := client.Get(cmd.Context(), "/api/v1/emergency", &result); err != nil {
				return err
			}
			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "call <number>",
		Short: "Start a simulated call to a helpline",
		Args:  cobra.ExactArgs(1),
		RunE: withProfile(func(cmd *cobra.Command, args []string) error {
			var result response.Call
			if err := client.Post(cmd.Context(), "/api/v1/emergency/call", request.CallRequest{Number: args[0]}, &result); err != nil {
				return err
			}
			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		}),
	})

	return cmd
}
