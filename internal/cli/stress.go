package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/mindcare/internal/api/response"
)

func newStressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Stress check commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "run <camera|voice|file>",
		Short:     "Run a stress check",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"camera", "voice", "file"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.StressResult
			if err := client.Post(cmd.Context(), "/api/v1/stress/"+url.PathEscape(args[0]), nil, &result); err != nil {
				return err
			}
			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	})

	return cmd
}
