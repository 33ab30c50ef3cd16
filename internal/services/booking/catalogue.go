package booking

import (
	"time"

	"github.com/mcoot/mindcare/internal/model"
)

func defaultCounselors() []model.Counselor {
	return []model.Counselor{
		{
			ID:             "1",
			Name:           "Dr. Sarah Chen",
			Title:          "Licensed Clinical Psychologist",
			Specialization: []string{"Anxiety", "Depression", "Academic Stress"},
			Rating:         4.9,
			Experience:     "8 years",
			Availability:   model.Weekdays{time.Monday, time.Tuesday, time.Wednesday, time.Friday},
			SessionTypes:   []model.SessionType{model.SessionTypeOnline, model.SessionTypeInPerson},
			Bio:            "Specialized in cognitive behavioral therapy for students. Experienced in treating academic anxiety and adjustment disorders.",
		},
		{
			ID:             "2",
			Name:           "Dr. Michael Rodriguez",
			Title:          "Counseling Psychologist",
			Specialization: []string{"Stress Management", "Life Transitions", "Mindfulness"},
			Rating:         4.8,
			Experience:     "12 years",
			Availability:   model.Weekdays{time.Tuesday, time.Wednesday, time.Thursday, time.Saturday},
			SessionTypes:   []model.SessionType{model.SessionTypeOnline, model.SessionTypePhone},
			Bio:            "Focuses on mindfulness-based interventions and stress reduction techniques for college students.",
		},
		{
			ID:             "3",
			Name:           "Dr. Emily Watson",
			Title:          "Student Counselor",
			Specialization: []string{"Relationship Issues", "Self-Esteem", "Career Anxiety"},
			Rating:         4.7,
			Experience:     "6 years",
			Availability:   model.Weekdays{time.Monday, time.Wednesday, time.Thursday, time.Friday},
			SessionTypes:   []model.SessionType{model.SessionTypeOnline, model.SessionTypeInPerson, model.SessionTypePhone},
			Bio:            "Specializes in helping students navigate personal relationships and career-related stress.",
		},
	}
}

func defaultTimeSlots() []model.TimeSlot {
	return []model.TimeSlot{
		{Time: "9:00 AM", Available: true},
		{Time: "10:00 AM", Available: false},
		{Time: "11:00 AM", Available: true},
		{Time: "1:00 PM", Available: true},
		{Time: "2:00 PM", Available: true},
		{Time: "3:00 PM", Available: false},
		{Time: "4:00 PM", Available: true},
		{Time: "5:00 PM", Available: true},
	}
}
