package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mcoot/mindcare/internal/dependencies/clock"
	"github.com/mcoot/mindcare/internal/metrics"
	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/services/chat"
	"github.com/mcoot/mindcare/internal/services/locale"
	"github.com/mcoot/mindcare/internal/services/scheduler"
	"github.com/mcoot/mindcare/internal/services/session"
	"github.com/mcoot/mindcare/internal/storage"
)

// ErrInvalidID is returned for profile IDs that are not UUIDs
var ErrInvalidID = errors.New("invalid profile id")

// Profile bundles the per-profile stores
type Profile struct {
	ID      model.ProfileID
	Session *session.Store
	Locale  *locale.Store
	Chat    *chat.Conversation
}

// Config holds configuration for the registry and the stores it creates
type Config struct {
	Session session.Config
	Chat    chat.Config

	// IdleTimeout evicts profiles not used for this long. Zero disables it.
	IdleTimeout time.Duration
	// MaxProfiles caps the profiles held in memory; the least recently used
	// is evicted beyond it. Zero disables the cap.
	MaxProfiles int
	// RevalidateSession re-reads the session slot on every Get, for storage
	// that expires slots on its own
	RevalidateSession bool
}

// DefaultConfig returns default registry configuration
func DefaultConfig() Config {
	return Config{
		Session:     session.DefaultConfig(),
		Chat:        chat.DefaultConfig(),
		IdleTimeout: 30 * time.Minute,
		MaxProfiles: 10000,
	}
}

type entry struct {
	profile  *Profile
	lastUsed time.Time
}

// Registry creates profiles on first use and keeps them in memory
type Registry struct {
	storage   storage.Storage
	clock     clock.Clock
	accounts  *session.Accounts
	catalog   locale.Catalog
	assistant *chat.Assistant
	scheduler *scheduler.Scheduler
	cfg       Config
	logger    *slog.Logger

	mu        sync.Mutex
	profiles  map[model.ProfileID]*entry
	lastSweep time.Time
}

// NewRegistry creates a Registry
func NewRegistry(
	s storage.Storage,
	clk clock.Clock,
	accounts *session.Accounts,
	catalog locale.Catalog,
	assistant *chat.Assistant,
	sched *scheduler.Scheduler,
	cfg Config,
	logger *slog.Logger,
) *Registry {
	return &Registry{
		storage:   s,
		clock:     clk,
		accounts:  accounts,
		catalog:   catalog,
		assistant: assistant,
		scheduler: sched,
		cfg:       cfg,
		logger:    logger,
		profiles:  make(map[model.ProfileID]*entry),
		lastSweep: clk.Now(),
	}
}

// NewID generates a fresh profile ID
func NewID() model.ProfileID {
	return model.ProfileID(uuid.NewString())
}

// ParseID validates a client-supplied profile ID
func ParseID(value string) (model.ProfileID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidID, err)
	}
	return model.ProfileID(id.String()), nil
}

// Get returns the profile, creating it and restoring its session on first
// use. A malformed session slot is logged and the profile starts logged out.
// Idle profiles are swept out as a side effect.
func (r *Registry) Get(ctx context.Context, id model.ProfileID) (*Profile, error) {
	r.mu.Lock()
	now := r.clock.Now()
	evicted := r.sweepLocked(now, false)

	if e, ok := r.profiles[id]; ok {
		e.lastUsed = now
		r.mu.Unlock()
		r.closeAll(evicted)
		if r.cfg.RevalidateSession {
			if err := r.initialize(ctx, e.profile); err != nil {
				return nil, err
			}
		}
		return e.profile, nil
	}
	defer func() {
		r.mu.Unlock()
		r.closeAll(evicted)
	}()

	logger := r.logger.With("profile", string(id))
	p := &Profile{
		ID:      id,
		Session: session.New(r.storage, r.clock, r.accounts, id, r.cfg.Session, r.logger),
		Locale:  locale.New(r.catalog),
		Chat:    chat.NewConversation(r.assistant, r.scheduler, r.clock, r.cfg.Chat, logger),
	}

	if err := r.initialize(ctx, p); err != nil {
		p.Chat.Close()
		return nil, err
	}

	r.profiles[id] = &entry{profile: p, lastUsed: now}
	evicted = append(evicted, r.trimLocked()...)
	metrics.ActiveProfiles.Set(float64(len(r.profiles)))
	logger.Info("profile loaded", "authenticated", p.Session.IsAuthenticated())
	return p, nil
}

// initialize (re)reads the profile's session slot
func (r *Registry) initialize(ctx context.Context, p *Profile) error {
	err := p.Session.Initialize(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, session.ErrMalformedSession) {
		return fmt.Errorf("initialize profile %s: %w", p.ID, err)
	}
	r.logger.Error("discarding malformed session slot", "profile", string(p.ID), "error", err)
	return nil
}

// Sweep evicts profiles idle for longer than IdleTimeout and returns how
// many were removed
func (r *Registry) Sweep() int {
	r.mu.Lock()
	evicted := r.sweepLocked(r.clock.Now(), true)
	r.mu.Unlock()
	r.closeAll(evicted)
	return len(evicted)
}

// sweepLocked evicts idle profiles. Unless forced it runs at most once per
// IdleTimeout.
func (r *Registry) sweepLocked(now time.Time, force bool) []*Profile {
	if r.cfg.IdleTimeout <= 0 {
		return nil
	}
	if !force && now.Sub(r.lastSweep) < r.cfg.IdleTimeout {
		return nil
	}
	r.lastSweep = now

	var evicted []*Profile
	cutoff := now.Add(-r.cfg.IdleTimeout)
	for id, e := range r.profiles {
		if !e.lastUsed.After(cutoff) {
			delete(r.profiles, id)
			evicted = append(evicted, e.profile)
		}
	}
	if len(evicted) > 0 {
		metrics.ActiveProfiles.Set(float64(len(r.profiles)))
	}
	return evicted
}

// trimLocked evicts least recently used profiles beyond MaxProfiles
func (r *Registry) trimLocked() []*Profile {
	var evicted []*Profile
	for r.cfg.MaxProfiles > 0 && len(r.profiles) > r.cfg.MaxProfiles {
		var oldestID model.ProfileID
		var oldest *entry
		for id, e := range r.profiles {
			if oldest == nil || e.lastUsed.Before(oldest.lastUsed) {
				oldestID, oldest = id, e
			}
		}
		delete(r.profiles, oldestID)
		evicted = append(evicted, oldest.profile)
	}
	return evicted
}

// closeAll cancels the pending work of evicted profiles
func (r *Registry) closeAll(evicted []*Profile) {
	for _, p := range evicted {
		p.Chat.Close()
		r.logger.Debug("profile evicted", "profile", string(p.ID))
	}
}

// Remove drops the in-memory profile and cancels its pending chat replies.
// Durable data is kept.
func (r *Registry) Remove(id model.ProfileID) {
	r.mu.Lock()
	e, ok := r.profiles[id]
	delete(r.profiles, id)
	metrics.ActiveProfiles.Set(float64(len(r.profiles)))
	r.mu.Unlock()

	if ok {
		e.profile.Chat.Close()
		r.logger.Info("profile removed", "profile", string(id))
	}
}

// Count returns the number of profiles in memory
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.profiles)
}

// Close removes every profile
func (r *Registry) Close() {
	r.mu.Lock()
	profiles := r.profiles
	r.profiles = make(map[model.ProfileID]*entry)
	metrics.ActiveProfiles.Set(0)
	r.mu.Unlock()

	for _, e := range profiles {
		e.profile.Chat.Close()
	}
}
