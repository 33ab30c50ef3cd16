package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/mindcare/internal/api/response"
)

func newLocaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locale",
		Short: "Language commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show the current language",
		RunE: withProfile(func(cmd *cobra.Command, args []string) error {
			var result response.Locale
			if err := client.Get(cmd.Context(), "/api/v1/locale", &result); err != nil {
				return err
			}
			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <language>",
		Short: "Switch language (en or hi)",
		Args:  cobra.ExactArgs(1),
		RunE: withProfile(func(cmd *cobra.Command, args []string) error {
			var result response.Locale
			if err := client.Put(cmd.Context(), "/api/v1/locale", map[string]string{"language": args[0]}, &result); err != nil {
				return err
			}
			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "translate <key>",
		Short: "Look up a translation key in the current language",
		Args:  cobra.ExactArgs(1),
		RunE: withProfile(func(cmd *cobra.Command, args []string) error {
			var result response.Translation
			if err := client.Get(cmd.Context(), "/api/v1/locale/translate?key="+url.QueryEscape(args[0]), &result); err != nil {
				return err
			}
			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		}),
	})

	return cmd
}
