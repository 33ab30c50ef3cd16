package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/mindcare/internal/dependencies/clock"
	"github.com/mcoot/mindcare/internal/metrics"
	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/storage"
)

// Errors
var (
	// ErrNotInitialized is the panic value when the session is read before Initialize
	ErrNotInitialized = errors.New("session store used before initialization")

	// ErrMalformedSession is returned by Initialize when the session slot cannot be decoded
	ErrMalformedSession = errors.New("malformed session slot")

	errEmailExists = errors.New("email already exists")
)

// Config holds configuration for the session store
type Config struct {
	PasswordCost int
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		PasswordCost: bcrypt.DefaultCost,
	}
}

// Store holds the authenticated account, if any, of one profile and keeps
// its session slot in durable storage
type Store struct {
	storage   storage.Storage
	clock     clock.Clock
	accounts  *Accounts
	profileID model.ProfileID
	cost      int
	logger    *slog.Logger

	mu          sync.RWMutex
	initialized bool
	current     *model.SessionUser
}

// New creates a session store for a profile. Initialize must be called
// before Current or IsAuthenticated.
func New(
	s storage.Storage,
	clk clock.Clock,
	accounts *Accounts,
	profileID model.ProfileID,
	cfg Config,
	logger *slog.Logger,
) *Store {
	if cfg.PasswordCost == 0 {
		cfg.PasswordCost = DefaultConfig().PasswordCost
	}
	return &Store{
		storage:   s,
		clock:     clk,
		accounts:  accounts,
		profileID: profileID,
		cost:      cfg.PasswordCost,
		logger:    logger.With("component", "session", "profile", string(profileID)),
	}
}

// Initialize adopts the persisted session, if any, without re-validating it
// against the account collection
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.initialized = true

	data, err := s.storage.Get(ctx, storage.SessionKey(s.profileID))
	if errors.Is(err, model.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session slot: %w", err)
	}

	user, err := decodeSession(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedSession, err)
	}
	s.current = user
	return nil
}

// Login activates a session for the account matching both email and password.
// Surrounding whitespace in the email is ignored.
// The boolean reports success; the error is reserved for storage faults.
func (s *Store) Login(ctx context.Context, email, password string) (*model.SessionUser, bool, error) {
	email = normalizeEmail(email)
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, false, err
	}

	for i := range accounts {
		account := &accounts[i]
		if account.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), passwordDigest(password)) != nil {
			continue
		}

		user := account.Projection()
		if err := s.activate(ctx, &user); err != nil {
			metrics.LoginsTotal.WithLabelValues(metrics.ResultError).Inc()
			return nil, false, err
		}
		metrics.LoginsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
		s.logger.Info("login succeeded", "account", string(user.ID))
		return cloneUser(&user), true, nil
	}

	metrics.LoginsTotal.WithLabelValues(metrics.ResultFailure).Inc()
	s.logger.Info("login failed")
	return nil, false, nil
}

// Signup appends a new account and activates a session for it.
// It fails without side effects if the email is already registered.
func (s *Store) Signup(ctx context.Context, name, email, password string) (*model.SessionUser, bool, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	hash, err := bcrypt.GenerateFromPassword(passwordDigest(password), s.cost)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, false, fmt.Errorf("hash password: %w", err)
	}

	now := s.clock.Now()
	account := model.Account{
		ID:                model.AccountID(strconv.FormatInt(now.UnixMilli(), 10)),
		Name:              name,
		Email:             email,
		PasswordHash:      string(hash),
		MentalHealthScore: model.DefaultSignupScore,
		Badges:            []string{model.DefaultBadge},
		CreatedAt:         now,
	}

	err = s.accounts.Update(ctx, func(accounts []model.Account) ([]model.Account, error) {
		for _, existing := range accounts {
			if existing.Email == email {
				return nil, errEmailExists
			}
		}
		return append(accounts, account), nil
	})
	if errors.Is(err, errEmailExists) {
		metrics.SignupsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		s.logger.Info("signup rejected, email exists")
		return nil, false, nil
	}
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, false, err
	}

	user := account.Projection()
	if err := s.activate(ctx, &user); err != nil {
		metrics.SignupsTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, false, err
	}
	metrics.SignupsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	s.logger.Info("signup succeeded", "account", string(user.ID))
	return cloneUser(&user), true, nil
}

// Logout clears the active session and removes the session slot.
// The account collection is untouched.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Delete(ctx, storage.SessionKey(s.profileID)); err != nil {
		return fmt.Errorf("delete session slot: %w", err)
	}
	s.current = nil
	s.initialized = true
	return nil
}

// Current returns a copy of the active session user, or nil when logged out.
// It panics with ErrNotInitialized if Initialize has not run.
func (s *Store) Current() *model.SessionUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.mustBeInitialized()
	return cloneUser(s.current)
}

// IsAuthenticated reports whether a session is active.
// It panics with ErrNotInitialized if Initialize has not run.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.mustBeInitialized()
	return s.current != nil
}

// Initialized reports whether Initialize (or a mutating operation) has run
func (s *Store) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

func (s *Store) mustBeInitialized() {
	if !s.initialized {
		panic(ErrNotInitialized)
	}
}

// activate persists the snapshot first; the in-memory session only changes
// once the write succeeded
func (s *Store) activate(ctx context.Context, user *model.SessionUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := storage.SetJSON(ctx, s.storage, storage.SessionKey(s.profileID), user); err != nil {
		return fmt.Errorf("write session slot: %w", err)
	}
	s.current = cloneUser(user)
	s.initialized = true
	return nil
}

func cloneUser(u *model.SessionUser) *model.SessionUser {
	if u == nil {
		return nil
	}
	clone := *u
	if u.Badges != nil {
		clone.Badges = append(make([]string, 0, len(u.Badges)), u.Badges...)
	}
	return &clone
}
