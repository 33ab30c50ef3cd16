package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/mindcare/internal/api/response"
)

func newResourcesCmd() *cobra.Command {
	var query, category, kind string

	cmd := &cobra.Command{
		Use:   "resources",
		Short: "Search the self-help resource library",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := url.Values{}
			if query != "" {
				params.Set("q", query)
			}
			if category != "" {
				params.Set("category", category)
			}
			if kind != "" {
				params.Set("type", kind)
			}
			path := "/api/v1/resources"
			if len(params) > 0 {
				path += "?" + params.Encode()
			}

			var result response.ResourceList
			if err := client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}
			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Search title, description and tags")
	cmd.Flags().StringVar(&category, "category", "", "study, stress, mindfulness, time-management or self-care")
	cmd.Flags().StringVar(&kind, "type", "", "article, video, exercise or guide")

	return cmd
}
