package model

import "time"

// AccountID uniquely identifies an account. It is derived from the
// creation timestamp in Unix milliseconds.
type AccountID string

// ProfileID identifies one client profile (the server-side stand-in for a
// browser profile). Session, mood and booking slots are scoped to it.
type ProfileID string

// Account defaults applied at signup, and when projecting records that
// predate a field.
const (
	DefaultSignupScore = 80
	FallbackScore      = 75
	DefaultBadge       = "New Member"
)

// Account is a durable record created at signup
type Account struct {
	ID                AccountID `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"passwordHash"` // bcrypt hash
	MentalHealthScore int       `json:"mentalHealthScore"`
	Badges            []string  `json:"badges"`
	CreatedAt         time.Time `json:"createdAt"`
}

// SessionUser is the public projection of an Account held by an active
// session. It is a snapshot: later changes to the account are not reflected.
type SessionUser struct {
	ID                AccountID `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	MentalHealthScore int       `json:"mentalHealthScore"`
	Badges            []string  `json:"badges"`
}

// Projection returns the public view of the account.
// A zero score or a missing badge list falls back to the defaults; an
// explicitly empty badge list stays empty.
func (a *Account) Projection() SessionUser {
	score := a.MentalHealthScore
	if score == 0 {
		score = FallbackScore
	}
	badges := []string{DefaultBadge}
	if a.Badges != nil {
		badges = make([]string, len(a.Badges))
		copy(badges, a.Badges)
	}
	return SessionUser{
		ID:                a.ID,
		Name:              a.Name,
		Email:             a.Email,
		MentalHealthScore: score,
		Badges:            badges,
	}
}
