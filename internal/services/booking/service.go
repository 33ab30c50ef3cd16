package booking

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mcoot/mindcare/internal/dependencies/clock"
	"github.com/mcoot/mindcare/internal/metrics"
	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/storage"
)

// DateLayout is the wire format of booking dates
const DateLayout = "2006-01-02"

// Request is a booking as submitted by the student
type Request struct {
	CounselorID string               `json:"counselorId"`
	Date        string               `json:"date"`
	Time        string               `json:"time"`
	SessionType model.SessionType    `json:"sessionType"`
	Details     model.BookingDetails `json:"details"`
}

// Service exposes the counselor catalogue and saves booking drafts
type Service struct {
	storage    storage.Storage
	clock      clock.Clock
	logger     *slog.Logger
	counselors []model.Counselor
	slots      []model.TimeSlot
}

// New creates a booking service with the built-in catalogue
func New(s storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage:    s,
		clock:      clk,
		logger:     logger.With("component", "booking"),
		counselors: defaultCounselors(),
		slots:      defaultTimeSlots(),
	}
}

// Counselors returns the catalogue
func (s *Service) Counselors() []model.Counselor {
	return append([]model.Counselor(nil), s.counselors...)
}

// Counselor returns a counselor by ID
func (s *Service) Counselor(id string) (*model.Counselor, error) {
	for i := range s.counselors {
		if s.counselors[i].ID == id {
			c := s.counselors[i]
			return &c, nil
		}
	}
	return nil, model.ErrCounselorNotFound
}

// TimeSlots returns the bookable times of day
func (s *Service) TimeSlots() []model.TimeSlot {
	return append([]model.TimeSlot(nil), s.slots...)
}

// Submit validates the request and overwrites the profile's booking slot.
// user may be nil when nobody is logged in.
func (s *Service) Submit(
	ctx context.Context,
	profileID model.ProfileID,
	user *model.SessionUser,
	req Request,
) (*model.Booking, error) {
	counselor, err := s.Counselor(req.CounselorID)
	if err != nil {
		return nil, err
	}

	date, err := s.parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if !counselor.IsAvailableOn(date.Weekday()) {
		return nil, model.ErrCounselorUnavailable
	}
	if err := s.checkSlot(req.Time); err != nil {
		return nil, err
	}

	sessionType := req.SessionType
	if sessionType == "" {
		sessionType = model.SessionTypeOnline
	}
	if !counselor.Offers(sessionType) {
		return nil, model.ErrUnsupportedSessionType
	}

	details := req.Details
	if strings.TrimSpace(details.Reason) == "" {
		return nil, model.ErrMissingReason
	}
	if details.Urgency == "" {
		details.Urgency = model.UrgencyNormal
	}
	if !details.Urgency.IsValid() {
		return nil, model.ErrInvalidUrgency
	}

	booking := &model.Booking{
		Counselor:   *counselor,
		Date:        date.Format(DateLayout),
		Time:        req.Time,
		SessionType: sessionType,
		Details:     details,
		User:        user,
		SubmittedAt: s.clock.Now(),
	}
	if err := storage.SetJSON(ctx, s.storage, storage.BookingKey(profileID), booking); err != nil {
		return nil, fmt.Errorf("write booking slot: %w", err)
	}

	metrics.BookingsTotal.Inc()
	s.logger.Info("booking submitted",
		"profile", string(profileID),
		"counselor", counselor.ID,
		"date", booking.Date,
		"time", booking.Time,
	)
	return booking, nil
}

// parseDate accepts dates from today onwards in the clock's location
func (s *Service) parseDate(value string) (time.Time, error) {
	now := s.clock.Now()
	date, err := time.ParseInLocation(DateLayout, value, now.Location())
	if err != nil {
		return time.Time{}, model.ErrInvalidDate
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return time.Time{}, model.ErrInvalidDate
	}
	return date, nil
}

func (s *Service) checkSlot(value string) error {
	for _, slot := range s.slots {
		if slot.Time != value {
			continue
		}
		if !slot.Available {
			return model.ErrTimeSlotTaken
		}
		return nil
	}
	return model.ErrInvalidTimeSlot
}
