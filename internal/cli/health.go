package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/mcoot/mindcare/internal/api/response"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server and storage health",
		Long:  "Check server and storage health. Exits non-zero when the storage backend is failing.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Health
			out := NewOutput(cmd.OutOrStdout(), cfg.Output)

			err := client.Get(cmd.Context(), "/api/v1/health", &result)
			var reqErr *RequestError
			if errors.As(err, &reqErr) && reqErr.Status == http.StatusServiceUnavailable &&
				json.Unmarshal([]byte(reqErr.Message), &result) == nil {
				out.Print(result)
				return fmt.Errorf("server is %s: storage %s", result.Status, result.Storage)
			}
			if err != nil {
				return err
			}

			out.Print(result)
			return nil
		},
	}
}
