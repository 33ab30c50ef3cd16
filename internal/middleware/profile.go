package middleware

// Where clients carry their profile ID
const (
	ProfileHeader = "X-Profile-ID"
	ProfileCookie = "profile"
)
