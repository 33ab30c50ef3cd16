package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/mindcare/internal/api/request"
	"github.com/mcoot/mindcare/internal/api/response"
)

func newBookingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booking",
		Short: "Counselor booking commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "counselors",
		Short: "List counselors and time slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Catalogue
			if err := client.Get(cmd.Context(), "/api/v1/counselors", &result); err != nil {
				return err
			}
			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	})

	cmd.AddCommand(newBookingSubmitCmd())

	return cmd
}

func newBookingSubmitCmd() *cobra.Command {
	var req request.BookingRequest

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Book a session with a counselor",
		RunE: withProfile(func(cmd *cobra.Command, args []string) error {
			var result response.Booking
			if err := client.Post(cmd.Context(), "/api/v1/bookings", req, &result); err != nil {
				return err
			}
			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		}),
	}

	cmd.Flags().StringVar(&req.CounselorID, "counselor", "", "Counselor ID (required)")
	cmd.Flags().StringVar(&req.Date, "date", "", "Date as YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&req.Time, "time", "", "Time slot, e.g. \"9:00 AM\" (required)")
	cmd.Flags().StringVar(&req.SessionType, "type", "", "Session type: online, in-person, phone")
	cmd.Flags().StringVar(&req.Reason, "reason", "", "Reason for the session (required)")
	cmd.Flags().StringVar(&req.Urgency, "urgency", "", "Urgency: normal, moderate, urgent")
	cmd.Flags().BoolVar(&req.PreviousCounseling, "previous", false, "Had counseling before")
	cmd.Flags().StringVar(&req.AdditionalNotes, "notes", "", "Additional notes")
	_ = cmd.MarkFlagRequired("counselor")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}
