package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mcoot/mindcare/internal/api/response"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "mindcare",
		Short: "CLI tool for the MindCare API",
		Long: `mindcare is a CLI tool for the MindCare student wellness JSON API.

Every command acts on a profile, which is created on first use and
remembered in the profile file. It covers accounts, language, the AI
copilot, mood check-ins, counselor booking, the peer forum and stress checks.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load profile from file if not provided via flag/env
			if err := cfg.LoadProfile(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL, cfg.ProfileID, newLogger(cmd.ErrOrStderr(), cfg.Verbose))
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: MINDCARE_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.ProfileID, "profile", cfg.ProfileID, "Profile ID (env: MINDCARE_PROFILE)")
	rootCmd.PersistentFlags().StringVar(&cfg.ProfileFile, "profile-file", cfg.ProfileFile, "Profile file path (env: MINDCARE_PROFILE_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newAccountCmd())
	rootCmd.AddCommand(newLocaleCmd())
	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(newMoodCmd())
	rootCmd.AddCommand(newBookingCmd())
	rootCmd.AddCommand(newForumCmd())
	rootCmd.AddCommand(newStressCmd())
	rootCmd.AddCommand(newResourcesCmd())
	rootCmd.AddCommand(newEmergencyCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command. Ctrl-C cancels the request in flight.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ensureProfile creates and saves a profile when none is configured yet
func ensureProfile(ctx context.Context) error {
	if cfg.ProfileID != "" {
		return nil
	}

	var result response.Profile
	if err := client.Post(ctx, "/api/v1/profiles", nil, &result); err != nil {
		return err
	}
	if err := cfg.SaveProfile(result.ID); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	client.SetProfile(result.ID)
	return nil
}

// withProfile wraps a command body so it runs with a profile
func withProfile(run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := ensureProfile(cmd.Context()); err != nil {
			return err
		}
		return run(cmd, args)
	}
}
