package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mcoot/mindcare/internal/dependencies/clock"
	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/services/booking"
	"github.com/mcoot/mindcare/internal/web/middleware"
	"github.com/mcoot/mindcare/internal/web/templates/pages"
)

// bookingErrors maps validation failures to form messages
var bookingErrors = map[error]string{
	model.ErrCounselorNotFound:      "Please choose a counselor",
	model.ErrInvalidDate:            "Please choose a date from today onwards",
	model.ErrCounselorUnavailable:   "That counselor is not available on the chosen day",
	model.ErrInvalidTimeSlot:        "Please choose a time slot",
	model.ErrTimeSlotTaken:          "That time slot is already taken",
	model.ErrUnsupportedSessionType: "That counselor does not offer this session type",
	model.ErrMissingReason:          "Please tell us briefly why you are booking",
	model.ErrInvalidUrgency:         "Please choose an urgency",
}

// BookingHandler handles counselor booking
type BookingHandler struct {
	booking *booking.Service
	clock   clock.Clock
	logger  *slog.Logger
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService *booking.Service, clk clock.Clock, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{booking: bookingService, clock: clk, logger: logger}
}

// Form renders the booking form
func (h *BookingHandler) Form(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, booking.Request{
		CounselorID: r.URL.Query().Get("counselor"),
		SessionType: model.SessionTypeOnline,
		Details:     model.BookingDetails{Urgency: model.UrgencyNormal},
	}, "")
}

// Submit validates and saves the booking, then shows the confirmation
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetProfile(r.Context())
	req := booking.Request{
		CounselorID: r.FormValue("counselor"),
		Date:        strings.TrimSpace(r.FormValue("date")),
		Time:        r.FormValue("time"),
		SessionType: model.SessionType(r.FormValue("session_type")),
		Details: model.BookingDetails{
			Reason:             r.FormValue("reason"),
			Urgency:            model.Urgency(r.FormValue("urgency")),
			PreviousCounseling: r.FormValue("previous_counseling") == "true",
			AdditionalNotes:    r.FormValue("notes"),
		},
	}

	saved, err := h.booking.Submit(r.Context(), p.ID, p.Session.Current(), req)
	if err != nil {
		for target, msg := range bookingErrors {
			if errors.Is(err, target) {
				h.renderForm(w, r, http.StatusUnprocessableEntity, req, msg)
				return
			}
		}
		h.logger.Error("failed to submit booking", slog.String("profile", string(p.ID)), slog.Any("error", err))
		renderError(w, r, http.StatusInternalServerError, "Something went wrong")
		return
	}

	render(w, r, http.StatusOK, pages.BookingConfirmed(pages.BookingConfirmedData{
		PageData: pageData(r, "Booking confirmed", "booking"),
		Booking:  saved,
	}))
}

func (h *BookingHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, form booking.Request, errorMsg string) {
	render(w, r, status, pages.Booking(pages.BookingData{
		PageData:   pageData(r, "Book a Counselor", "booking"),
		Counselors: h.booking.Counselors(),
		TimeSlots:  h.booking.TimeSlots(),
		Form:       form,
		MinDate:    h.clock.Now().Format(booking.DateLayout),
		Error:      errorMsg,
	}))
}
