// Package support serves the emergency page: helplines, crisis resources
// and a simulated call that stays "connecting" for CallDuration.
package support

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mcoot/mindcare/internal/dependencies/clock"
	"github.com/mcoot/mindcare/internal/metrics"
	"github.com/mcoot/mindcare/internal/model"
)

// CallDuration is how long a simulated call shows as connecting
const CallDuration = 3 * time.Second

// Service is safe for concurrent use
type Service struct {
	clock  clock.Clock
	logger *slog.Logger

	mu    sync.Mutex
	calls map[model.ProfileID]model.Call
}

// New creates an emergency support service
func New(clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		clock:  clk,
		logger: logger.With("component", "support"),
		calls:  make(map[model.ProfileID]model.Call),
	}
}

// Helplines returns the emergency numbers in display order
func (s *Service) Helplines() []model.Helpline {
	return append([]model.Helpline(nil), helplines...)
}

// QuickActions returns the emergency shortcuts in display order
func (s *Service) QuickActions() []model.QuickAction {
	return append([]model.QuickAction(nil), quickActions...)
}

// CrisisResources returns the crisis support organisations
func (s *Service) CrisisResources() []model.CrisisResource {
	out := make([]model.CrisisResource, len(crisisResources))
	for i, r := range crisisResources {
		r.Services = append([]string(nil), r.Services...)
		out[i] = r
	}
	return out
}

// CopingStrategies returns things to try right now
func (s *Service) CopingStrategies() []string {
	return append([]string(nil), copingStrategies...)
}

// WarningSigns returns the signs that call for help
func (s *Service) WarningSigns() model.WarningSigns {
	return model.WarningSigns{
		Immediate: append([]string(nil), warningSigns.Immediate...),
		Soon:      append([]string(nil), warningSigns.Soon...),
	}
}

// Lookup finds a helpline by number. Only digits are compared.
func (s *Service) Lookup(number string) (model.Helpline, error) {
	want := digits(number)
	if want == "" {
		return model.Helpline{}, model.ErrUnknownHelpline
	}
	for _, h := range helplines {
		if digits(h.Number) == want {
			return h, nil
		}
	}
	return model.Helpline{}, model.ErrUnknownHelpline
}

// Call starts a simulated call. A profile has at most one connecting call.
func (s *Service) Call(ctx context.Context, profileID model.ProfileID, number string) (*model.Call, error) {
	helpline, err := s.Lookup(number)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	s.mu.Lock()
	s.pruneLocked(now)
	if _, busy := s.calls[profileID]; busy {
		s.mu.Unlock()
		return nil, model.ErrCallInProgress
	}
	call := model.Call{Helpline: helpline, StartedAt: now, EndsAt: now.Add(CallDuration)}
	s.calls[profileID] = call
	s.mu.Unlock()

	metrics.HelplineCallsTotal.WithLabelValues(helpline.Number).Inc()
	s.logger.InfoContext(ctx, "helpline call started", "profile", string(profileID), "number", helpline.Number)
	return &call, nil
}

// ActiveCall returns the profile's connecting call, if any
func (s *Service) ActiveCall(profileID model.ProfileID) (*model.Call, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(s.clock.Now())
	call, ok := s.calls[profileID]
	if !ok {
		return nil, false
	}
	return &call, true
}

// pruneLocked must be called with mu held
func (s *Service) pruneLocked(now time.Time) {
	for id, call := range s.calls {
		if !now.Before(call.EndsAt) {
			delete(s.calls, id)
		}
	}
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
