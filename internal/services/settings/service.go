// Package settings stores the details and preferences edited on the
// profile page.
package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mcoot/mindcare/internal/dependencies/clock"
	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/storage"
)

// Service reads and writes a profile's settings slot
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a settings service
func New(s storage.Storage, clk clock.Clock) *Service {
	return &Service{storage: s, clock: clk}
}

// Get returns the saved settings, or empty details with the default
// preferences when nothing has been saved
func (s *Service) Get(ctx context.Context, profileID model.ProfileID) (*model.Settings, error) {
	var saved model.Settings
	err := storage.GetJSON(ctx, s.storage, storage.SettingsKey(profileID), &saved)
	if errors.Is(err, model.ErrKeyNotFound) {
		return &model.Settings{Preferences: model.DefaultPreferences()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings slot: %w", err)
	}
	return &saved, nil
}

// SaveDetails replaces the profile details and keeps the preferences
func (s *Service) SaveDetails(ctx context.Context, profileID model.ProfileID, details model.ProfileDetails) (*model.Settings, error) {
	details = normalizeDetails(details)
	if err := validateDetails(details); err != nil {
		return nil, err
	}
	current, err := s.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}
	current.Details = details
	return s.write(ctx, profileID, current)
}

// SavePreferences replaces the notification preferences and keeps the details
func (s *Service) SavePreferences(ctx context.Context, profileID model.ProfileID, prefs model.Preferences) (*model.Settings, error) {
	current, err := s.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}
	current.Preferences = prefs
	return s.write(ctx, profileID, current)
}

// Save replaces both details and preferences
func (s *Service) Save(ctx context.Context, profileID model.ProfileID, settings model.Settings) (*model.Settings, error) {
	settings.Details = normalizeDetails(settings.Details)
	if err := validateDetails(settings.Details); err != nil {
		return nil, err
	}
	return s.write(ctx, profileID, &settings)
}

func (s *Service) write(ctx context.Context, profileID model.ProfileID, settings *model.Settings) (*model.Settings, error) {
	settings.UpdatedAt = s.clock.Now()
	if err := storage.SetJSON(ctx, s.storage, storage.SettingsKey(profileID), settings); err != nil {
		return nil, fmt.Errorf("write settings slot: %w", err)
	}
	return settings, nil
}

func normalizeDetails(d model.ProfileDetails) model.ProfileDetails {
	d.Bio = strings.TrimSpace(d.Bio)
	d.University = strings.TrimSpace(d.University)
	d.Year = strings.TrimSpace(d.Year)
	d.EmergencyContact.Name = strings.TrimSpace(d.EmergencyContact.Name)
	d.EmergencyContact.Phone = strings.TrimSpace(d.EmergencyContact.Phone)
	d.EmergencyContact.Relationship = strings.TrimSpace(d.EmergencyContact.Relationship)
	return d
}

func validateDetails(d model.ProfileDetails) error {
	if utf8.RuneCountInString(d.Bio) > model.MaxBioLength {
		return fmt.Errorf("%w: bio is longer than %d characters", model.ErrInvalidSettings, model.MaxBioLength)
	}
	fields := map[string]string{
		"university":   d.University,
		"year":         d.Year,
		"contact name": d.EmergencyContact.Name,
		"relationship": d.EmergencyContact.Relationship,
		"phone":        d.EmergencyContact.Phone,
	}
	for name, value := range fields {
		if utf8.RuneCountInString(value) > model.MaxFieldLength {
			return fmt.Errorf("%w: %s is longer than %d characters", model.ErrInvalidSettings, name, model.MaxFieldLength)
		}
	}
	if !validPhone(d.EmergencyContact.Phone) {
		return fmt.Errorf("%w: phone may only contain digits, spaces and + - ( )", model.ErrInvalidSettings)
	}
	return nil
}

// validPhone accepts an empty value
func validPhone(phone string) bool {
	for _, r := range phone {
		if unicode.IsDigit(r) || strings.ContainsRune(" +-()", r) {
			continue
		}
		return false
	}
	return true
}
