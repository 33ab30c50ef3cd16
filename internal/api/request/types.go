package request

// SignupRequest is the request body for creating an account
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SetLocaleRequest is the request body for choosing a language
type SetLocaleRequest struct {
	Language string `json:"language"`
}

// SendMessageRequest is the request body for messaging the copilot
type SendMessageRequest struct {
	Content string `json:"content"`
}

// MoodRequest is the request body for a mood check-in
type MoodRequest struct {
	Mood string `json:"mood"`
}

// BookingRequest is the request body for booking a counselor
type BookingRequest struct {
	CounselorID        string `json:"counselor_id"`
	Date               string `json:"date"`
	Time               string `json:"time"`
	SessionType        string `json:"session_type,omitempty"`
	Reason             string `json:"reason"`
	Urgency            string `json:"urgency,omitempty"`
	PreviousCounseling bool   `json:"previous_counseling"`
	AdditionalNotes    string `json:"additional_notes,omitempty"`
}

// CreatePostRequest is the request body for a forum post
type CreatePostRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags,omitempty"`
	Anonymous bool     `json:"anonymous"`
}

// ReplyRequest is the request body for a forum reply
type ReplyRequest struct {
	Content   string `json:"content"`
	Anonymous bool   `json:"anonymous"`
}

// EmergencyContactRequest is the emergency contact within SettingsRequest
type EmergencyContactRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// PreferencesRequest holds the notification switches
type PreferencesRequest struct {
	EmailNotifications bool `json:"email_notifications"`
	PushNotifications  bool `json:"push_notifications"`
	WeeklyReports      bool `json:"weekly_reports"`
	CommunityUpdates   bool `json:"community_updates"`
	CrisisAlerts       bool `json:"crisis_alerts"`
}

// SettingsRequest is the request body for saving profile settings.
// A missing preferences object keeps the saved preferences.
type SettingsRequest struct {
	Bio              string                  `json:"bio"`
	University       string                  `json:"university"`
	Year             string                  `json:"year"`
	EmergencyContact EmergencyContactRequest `json:"emergency_contact"`
	Preferences      *PreferencesRequest     `json:"preferences,omitempty"`
}

// CallRequest is the request body for a simulated helpline call
type CallRequest struct {
	Number string `json:"number"`
}
