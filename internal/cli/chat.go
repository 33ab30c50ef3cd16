package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/mindcare/internal/api/response"
)

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "AI copilot commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "send <message>",
		Short: "Send a message and wait for the copilot's reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: withProfile(func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"content": strings.Join(args, " ")}
			var result response.ChatMessage
			if err := client.Post(cmd.Context(), "/api/v1/copilot/messages", req, &result); err != nil {
				return err
			}
			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "history",
		Short: "Show the conversation so far",
		RunE: withProfile(func(cmd *cobra.Command, args []string) error {
			var result response.Conversation
			if err := client.Get(cmd.Context(), "/api/v1/copilot/messages", &result); err != nil {
				return err
			}
			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		}),
	})

	return cmd
}
