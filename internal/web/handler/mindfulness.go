package handler

import (
	"net/http"

	"github.com/mcoot/mindcare/internal/services/mindfulness"
	"github.com/mcoot/mindcare/internal/web/templates/pages"
)

// MindfulnessHandler handles the mindfulness room
type MindfulnessHandler struct{}

// NewMindfulnessHandler creates a new MindfulnessHandler
func NewMindfulnessHandler() *MindfulnessHandler {
	return &MindfulnessHandler{}
}

// View renders the room. ?minutes= sets the timer and ?ambience= the sound.
func (h *MindfulnessHandler) View(w http.ResponseWriter, r *http.Request) {
	ambience := mindfulness.FindAmbience(r.URL.Query().Get("ambience"))
	data := pages.MindfulnessData{
		PageData: pageData(r, "Mindfulness", "mindfulness"),
		Breathing: []pages.BreathingStep{
			{Name: "Breathe In", Seconds: int(mindfulness.DefaultPattern.Inhale.Seconds())},
			{Name: "Hold", Seconds: int(mindfulness.DefaultPattern.Hold.Seconds())},
			{Name: "Breathe Out", Seconds: int(mindfulness.DefaultPattern.Exhale.Seconds())},
		},
		Ambience: ambience.ID,
		Guide:    mindfulness.GuideSteps,
		Benefits: mindfulness.Benefits,
	}
	for _, a := range mindfulness.Ambiences {
		data.Ambiences = append(data.Ambiences, pages.FilterOption{ID: a.ID, Name: a.Name})
	}

	status := http.StatusOK
	minutes, err := mindfulness.ParseMinutes(r.URL.Query().Get("minutes"))
	if err != nil {
		status = http.StatusBadRequest
		data.Error = err.Error()
		minutes = mindfulness.DefaultMinutes
	}
	data.Minutes = minutes
	data.Clock = mindfulness.FormatClock(mindfulness.NewTimer(minutes).Remaining(0))
	render(w, r, status, pages.Mindfulness(data))
}
