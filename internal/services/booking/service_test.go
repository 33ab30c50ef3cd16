package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/mindcare/internal/dependencies/mocks"
	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/storage"
	"github.com/mcoot/mindcare/internal/storage/memory"
	"github.com/mcoot/mindcare/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	// Monday
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) validRequest() Request {
	return Request{
		CounselorID: "1",
		Date:        "2024-01-02", // Tuesday
		Time:        "9:00 AM",
		SessionType: model.SessionTypeOnline,
		Details:     model.BookingDetails{Reason: "Exam anxiety"},
	}
}

func (s *ServiceSuite) TestCatalogue() {
	counselors := s.service.Counselors()
	s.Require().Len(counselors, 3)
	s.Equal("Dr. Sarah Chen", counselors[0].Name)
	s.Equal("Dr. Michael Rodriguez", counselors[1].Name)
	s.Equal("Dr. Emily Watson", counselors[2].Name)

	slots := s.service.TimeSlots()
	s.Len(slots, 8)
	s.False(slots[1].Available)
	s.False(slots[5].Available)
}

func (s *ServiceSuite) TestSubmitSavesDraft() {
	user := &model.SessionUser{ID: "1", Name: "Asha"}
	booking, err := s.service.Submit(s.ctx, "p1", user, s.validRequest())
	s.Require().NoError(err)

	s.Equal("Dr. Sarah Chen", booking.Counselor.Name)
	s.Equal(model.UrgencyNormal, booking.Details.Urgency)
	s.Equal(s.clock.Now(), booking.SubmittedAt)

	var saved model.Booking
	s.Require().NoError(storage.GetJSON(s.ctx, s.storage, storage.BookingKey("p1"), &saved))
	s.Equal("2024-01-02", saved.Date)
	s.Equal("Asha", saved.User.Name)
	s.Equal(booking.Counselor.Availability, saved.Counselor.Availability)
}

func (s *ServiceSuite) TestSubmitOverwritesPreviousDraft() {
	_, err := s.service.Submit(s.ctx, "p1", nil, s.validRequest())
	s.Require().NoError(err)

	req := s.validRequest()
	req.Time = "4:00 PM"
	_, err = s.service.Submit(s.ctx, "p1", nil, req)
	s.Require().NoError(err)

	var saved model.Booking
	s.Require().NoError(storage.GetJSON(s.ctx, s.storage, storage.BookingKey("p1"), &saved))
	s.Equal("4:00 PM", saved.Time)
	s.Nil(saved.User)
	s.Equal(1, s.storage.Len())
}

func (s *ServiceSuite) TestSubmitTodayIsAllowed() {
	req := s.validRequest()
	req.Date = "2024-01-01"

	_, err := s.service.Submit(s.ctx, "p1", nil, req)
	s.NoError(err)
}

func (s *ServiceSuite) TestSubmitValidation() {
	tests := []struct {
		name   string
		modify func(*Request)
		err    error
	}{
		{"unknown counselor", func(r *Request) { r.CounselorID = "9" }, model.ErrCounselorNotFound},
		{"bad date", func(r *Request) { r.Date = "02/01/2024" }, model.ErrInvalidDate},
		{"past date", func(r *Request) { r.Date = "2023-12-31" }, model.ErrInvalidDate},
		{"day off", func(r *Request) { r.Date = "2024-01-04" }, model.ErrCounselorUnavailable},
		{"unknown slot", func(r *Request) { r.Time = "8:00 PM" }, model.ErrInvalidTimeSlot},
		{"taken slot", func(r *Request) { r.Time = "10:00 AM" }, model.ErrTimeSlotTaken},
		{"phone not offered", func(r *Request) { r.SessionType = model.SessionTypePhone }, model.ErrUnsupportedSessionType},
		{"blank reason", func(r *Request) { r.Details.Reason = "  " }, model.ErrMissingReason},
		{"bad urgency", func(r *Request) { r.Details.Urgency = "whenever" }, model.ErrInvalidUrgency},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := s.validRequest()
			tt.modify(&req)
			_, err := s.service.Submit(s.ctx, "p1", nil, req)
			s.ErrorIs(err, tt.err)
		})
	}
	s.Zero(s.storage.Len())
}

func (s *ServiceSuite) TestSubmitDefaultsSessionTypeToOnline() {
	req := s.validRequest()
	req.SessionType = ""

	booking, err := s.service.Submit(s.ctx, "p1", nil, req)
	s.Require().NoError(err)
	s.Equal(model.SessionTypeOnline, booking.SessionType)
}
