package model

// Mood is a daily check-in value
type Mood string

const (
	MoodExcellent  Mood = "Excellent"
	MoodGood       Mood = "Good"
	MoodOkay       Mood = "Okay"
	MoodStruggling Mood = "Struggling"
	MoodDifficult  Mood = "Difficult"
)

// MoodOptions lists the check-in choices in display order
var MoodOptions = []Mood{MoodExcellent, MoodGood, MoodOkay, MoodStruggling, MoodDifficult}

// IsValid reports whether m is one of MoodOptions
func (m Mood) IsValid() bool {
	for _, opt := range MoodOptions {
		if opt == m {
			return true
		}
	}
	return false
}
