package model

import "time"

// Helpline is an emergency phone line
type Helpline struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	Description string `json:"description"`
	Available   string `json:"available"`
}

// CrisisResource is an organisation offering crisis support
type CrisisResource struct {
	Name        string   `json:"name"`
	Website     string   `json:"website"`
	Description string   `json:"description"`
	Services    []string `json:"services"`
}

// QuickAction is a shortcut on the emergency page
type QuickAction struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Urgent      bool   `json:"urgent"`
	URL         string `json:"url,omitempty"`
}

// WarningSigns groups the signs that call for help
type WarningSigns struct {
	Immediate []string `json:"immediate"`
	Soon      []string `json:"soon"`
}

// Call is a simulated call to a helpline. The line is busy until EndsAt.
type Call struct {
	Helpline  Helpline  `json:"helpline"`
	StartedAt time.Time `json:"startedAt"`
	EndsAt    time.Time `json:"endsAt"`
}
