package handler

import (
	"net/http"

	"github.com/mcoot/mindcare/internal/api/middleware"
	"github.com/mcoot/mindcare/internal/api/request"
	"github.com/mcoot/mindcare/internal/api/response"
	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/services/booking"
)

// BookingHandler handles counselor booking endpoints
type BookingHandler struct {
	booking *booking.Service
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *booking.Service) *BookingHandler {
	return &BookingHandler{booking: bookingService}
}

// Counselors handles GET /api/v1/counselors
func (h *BookingHandler) Counselors(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.CatalogueFromModel(h.booking.Counselors(), h.booking.TimeSlots()))
}

// Submit handles POST /api/v1/bookings
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.BookingRequest
	if !decode(w, r, &req) {
		return
	}

	if req.CounselorID == "" {
		WriteError(w, NewInvalidRequestError("counselor_id is required"))
		return
	}

	p := middleware.MustGetProfile(r.Context())
	result, err := h.booking.Submit(r.Context(), p.ID, p.Session.Current(), booking.Request{
		CounselorID: req.CounselorID,
		Date:        req.Date,
		Time:        req.Time,
		SessionType: model.SessionType(req.SessionType),
		Details: model.BookingDetails{
			Reason:             req.Reason,
			Urgency:            model.Urgency(req.Urgency),
			PreviousCounseling: req.PreviousCounseling,
			AdditionalNotes:    req.AdditionalNotes,
		},
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, response.BookingFromModel(result))
}
