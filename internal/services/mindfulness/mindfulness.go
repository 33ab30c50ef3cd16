// Package mindfulness holds the breathing pattern, meditation timer and
// ambience choices of the mindfulness room.
package mindfulness

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mcoot/mindcare/internal/model"
)

// Phase is one step of a breathing cycle
type Phase string

const (
	Inhale Phase = "inhale"
	Hold   Phase = "hold"
	Exhale Phase = "exhale"
)

// Pattern is the length of each breathing phase
type Pattern struct {
	Inhale time.Duration
	Hold   time.Duration
	Exhale time.Duration
}

// DefaultPattern is 4-4-6 breathing
var DefaultPattern = Pattern{Inhale: 4 * time.Second, Hold: 4 * time.Second, Exhale: 6 * time.Second}

// Cycle is the length of one full breath
func (p Pattern) Cycle() time.Duration {
	return p.Inhale + p.Hold + p.Exhale
}

// PhaseAt returns the phase elapsed into an exercise, the 1-based cycle
// number and the time left in the phase
func (p Pattern) PhaseAt(elapsed time.Duration) (Phase, int, time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	cycle := int(elapsed/p.Cycle()) + 1
	into := elapsed % p.Cycle()
	switch {
	case into < p.Inhale:
		return Inhale, cycle, p.Inhale - into
	case into < p.Inhale+p.Hold:
		return Hold, cycle, p.Inhale + p.Hold - into
	default:
		return Exhale, cycle, p.Cycle() - into
	}
}

// Meditation timer bounds, in minutes
const (
	MinMinutes     = 1
	MaxMinutes     = 60
	DefaultMinutes = 5
)

// ParseMinutes reads a meditation length. Blank input is DefaultMinutes.
func ParseMinutes(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultMinutes, nil
	}
	minutes, err := strconv.Atoi(value)
	if err != nil || minutes < MinMinutes || minutes > MaxMinutes {
		return 0, model.ErrInvalidDuration
	}
	return minutes, nil
}

// Timer counts down a meditation session
type Timer struct {
	Length time.Duration
}

// NewTimer creates a timer for the given number of minutes
func NewTimer(minutes int) Timer {
	return Timer{Length: time.Duration(minutes) * time.Minute}
}

// Remaining is the time left after elapsed, never negative
func (t Timer) Remaining(elapsed time.Duration) time.Duration {
	if elapsed >= t.Length {
		return 0
	}
	if elapsed < 0 {
		return t.Length
	}
	return t.Length - elapsed
}

// Progress is the percentage of the session completed
func (t Timer) Progress(elapsed time.Duration) int {
	if t.Length <= 0 {
		return 100
	}
	done := t.Length - t.Remaining(elapsed)
	return int(done * 100 / t.Length)
}

// FormatClock renders d as mm:ss, rounding down to the second
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Ambience is a background sound choice
type Ambience struct {
	ID   string
	Name string
}

// Ambiences in display order. The first is the default.
var Ambiences = []Ambience{
	{ID: "ocean", Name: "Ocean Waves"},
	{ID: "rain", Name: "Gentle Rain"},
	{ID: "forest", Name: "Forest Sounds"},
}

// FindAmbience returns the ambience with id, or the default
func FindAmbience(id string) Ambience {
	for _, a := range Ambiences {
		if a.ID == id {
			return a
		}
	}
	return Ambiences[0]
}

// GuideSteps is the getting started list of the meditation guide
var GuideSteps = []string{
	"Find a comfortable seated position",
	"Close your eyes or soften your gaze",
	"Focus on your natural breath",
	"When your mind wanders, gently return to your breath",
	"Be kind and patient with yourself",
}

// Benefits of a regular practice
var Benefits = []string{
	"Reduces stress and anxiety",
	"Improves emotional regulation",
	"Enhances self-awareness",
	"Increases focus and attention",
	"Promotes better sleep",
}
