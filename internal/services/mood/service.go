package mood

import (
	"context"
	"fmt"

	"github.com/mcoot/mindcare/internal/metrics"
	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/storage"
)

// Service records daily mood check-ins
type Service struct {
	storage storage.Storage
}

// New creates a mood service
func New(s storage.Storage) *Service {
	return &Service{storage: s}
}

// Options returns the check-in choices in display order
func (s *Service) Options() []model.Mood {
	return append([]model.Mood(nil), model.MoodOptions...)
}

// Record overwrites the profile's mood slot. The slot holds the bare mood
// name and is never read back.
func (s *Service) Record(ctx context.Context, profileID model.ProfileID, mood model.Mood) error {
	if !mood.IsValid() {
		return model.ErrInvalidMood
	}
	if err := s.storage.Set(ctx, storage.MoodKey(profileID), []byte(mood)); err != nil {
		return fmt.Errorf("write mood slot: %w", err)
	}
	metrics.MoodCheckinsTotal.WithLabelValues(string(mood)).Inc()
	return nil
}
