package model

import "time"

// Limits on profile detail fields
const (
	MaxBioLength   = 500
	MaxFieldLength = 100
)

// EmergencyContact is the person to reach in a crisis
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// ProfileDetails is the editable part of the profile page
type ProfileDetails struct {
	Bio              string           `json:"bio"`
	University       string           `json:"university"`
	Year             string           `json:"year"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
}

// Preferences are the notification switches on the profile page
type Preferences struct {
	EmailNotifications bool `json:"emailNotifications"`
	PushNotifications  bool `json:"pushNotifications"`
	WeeklyReports      bool `json:"weeklyReports"`
	CommunityUpdates   bool `json:"communityUpdates"`
	CrisisAlerts       bool `json:"crisisAlerts"`
}

// DefaultPreferences is what a profile starts with
func DefaultPreferences() Preferences {
	return Preferences{
		EmailNotifications: true,
		WeeklyReports:      true,
		CommunityUpdates:   true,
		CrisisAlerts:       true,
	}
}

// Settings is everything saved from the profile page
type Settings struct {
	Details     ProfileDetails `json:"details"`
	Preferences Preferences    `json:"preferences"`
	UpdatedAt   time.Time      `json:"updatedAt,omitzero"`
}
