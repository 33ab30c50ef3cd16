package storage

import (
	"github.com/mcoot/mindcare/internal/model"
)

// Fixed slot names
const (
	AccountsKey  = "mindcare_users"
	sessionSlot  = "mindcare_user"
	moodSlot     = "todayMood"
	bookingSlot  = "counselor_booking"
	settingsSlot = "profile_settings"
	profilesPart = "profile"
)

// SessionKey returns the key of a profile's session slot
func SessionKey(profileID model.ProfileID) string {
	return profileKey(profileID, sessionSlot)
}

// MoodKey returns the key of a profile's last selected mood
func MoodKey(profileID model.ProfileID) string {
	return profileKey(profileID, moodSlot)
}

// BookingKey returns the key of a profile's booking draft
func BookingKey(profileID model.ProfileID) string {
	return profileKey(profileID, bookingSlot)
}

// SettingsKey returns the key of a profile's saved profile page settings
func SettingsKey(profileID model.ProfileID) string {
	return profileKey(profileID, settingsSlot)
}

func profileKey(profileID model.ProfileID, slot string) string {
	return profilesPart + ":" + string(profileID) + ":" + slot
}
