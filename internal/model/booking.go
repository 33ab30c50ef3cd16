package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// SessionType is how a counseling session is held
type SessionType string

const (
	SessionTypeOnline   SessionType = "online"
	SessionTypeInPerson SessionType = "in-person"
	SessionTypePhone    SessionType = "phone"
)

// Counselor is an entry in the booking catalogue
type Counselor struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Title          string        `json:"title"`
	Specialization []string      `json:"specialization"`
	Rating         float64       `json:"rating"`
	Experience     string        `json:"experience"`
	Availability   Weekdays      `json:"availability"`
	SessionTypes   []SessionType `json:"sessionTypes"`
	Bio            string        `json:"bio"`
}

// IsAvailableOn reports whether the counselor works on the given weekday
func (c *Counselor) IsAvailableOn(day time.Weekday) bool {
	for _, d := range c.Availability {
		if d == day {
			return true
		}
	}
	return false
}

// Offers reports whether the counselor offers the session type
func (c *Counselor) Offers(t SessionType) bool {
	for _, st := range c.SessionTypes {
		if st == t {
			return true
		}
	}
	return false
}

// Weekdays encodes as a list of day names, e.g. ["Monday","Friday"]
type Weekdays []time.Weekday

func (w Weekdays) MarshalJSON() ([]byte, error) {
	names := make([]string, len(w))
	for i, d := range w {
		names[i] = d.String()
	}
	return json.Marshal(names)
}

func (w *Weekdays) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	days := make(Weekdays, 0, len(names))
	for _, name := range names {
		day, ok := parseWeekday(name)
		if !ok {
			return fmt.Errorf("unknown weekday %q", name)
		}
		days = append(days, day)
	}
	*w = days
	return nil
}

func parseWeekday(name string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == name {
			return d, true
		}
	}
	return 0, false
}

// TimeSlot is a bookable time of day
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// Urgency is how soon the student would like support
type Urgency string

const (
	UrgencyNormal   Urgency = "normal"
	UrgencyModerate Urgency = "moderate"
	UrgencyUrgent   Urgency = "urgent"
)

// IsValid reports whether u is a known urgency
func (u Urgency) IsValid() bool {
	return u == UrgencyNormal || u == UrgencyModerate || u == UrgencyUrgent
}

// BookingDetails is the free-text part of a booking request
type BookingDetails struct {
	Reason             string  `json:"reason"`
	Urgency            Urgency `json:"urgency"`
	PreviousCounseling bool    `json:"previousCounseling"`
	AdditionalNotes    string  `json:"additionalNotes"`
}

// Booking is the draft saved when a booking is submitted.
// It overwrites any previous draft for the profile.
type Booking struct {
	Counselor   Counselor      `json:"counselor"`
	Date        string         `json:"date"` // YYYY-MM-DD
	Time        string         `json:"time"`
	SessionType SessionType    `json:"sessionType"`
	Details     BookingDetails `json:"details"`
	User        *SessionUser   `json:"user"`
	SubmittedAt time.Time      `json:"submittedAt"`
}
