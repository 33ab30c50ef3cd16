package profile

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/mindcare/internal/dependencies/mocks"
	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/services/chat"
	"github.com/mcoot/mindcare/internal/services/locale"
	"github.com/mcoot/mindcare/internal/services/scheduler"
	"github.com/mcoot/mindcare/internal/services/session"
	"github.com/mcoot/mindcare/internal/storage"
	"github.com/mcoot/mindcare/internal/storage/memory"
	redisstorage "github.com/mcoot/mindcare/internal/storage/redis"
	"github.com/mcoot/mindcare/internal/testutil"
)

type RegistrySuite struct {
	suite.Suite
	storage  *testutil.FaultyStorage
	clock    *mocks.MockClock
	registry *Registry
	logs     *testutil.LogBuffer
	ctx      context.Context
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	s.storage = testutil.NewFaultyStorage(memory.New())
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.registry = s.newRegistry()
	s.ctx = context.Background()
}

func (s *RegistrySuite) newRegistry() *Registry {
	return s.newRegistryWith(s.storage, func(*Config) {})
}

func (s *RegistrySuite) newRegistryWith(store storage.Storage, configure func(*Config)) *Registry {
	logger, logs := testutil.CaptureLogger()
	s.logs = logs
	cfg := DefaultConfig()
	cfg.Session.PasswordCost = bcrypt.MinCost
	configure(&cfg)
	return NewRegistry(
		store,
		s.clock,
		session.NewAccounts(store),
		locale.DefaultCatalog(),
		chat.NewDefaultAssistant(mocks.NewMockRandom()),
		scheduler.New(s.clock),
		cfg,
		logger,
	)
}

func (s *RegistrySuite) TestGetCreatesInitializedProfile() {
	id := NewID()
	p, err := s.registry.Get(s.ctx, id)
	s.Require().NoError(err)

	s.Equal(id, p.ID)
	s.False(p.Session.IsAuthenticated())
	s.Equal(model.LanguageEnglish, p.Locale.Language())
	s.Len(p.Chat.Messages(), 1)
	s.Equal(1, s.registry.Count())
}

func (s *RegistrySuite) TestGetReturnsSameProfile() {
	id := NewID()
	first, _ := s.registry.Get(s.ctx, id)
	second, _ := s.registry.Get(s.ctx, id)
	s.Same(first, second)
}

func (s *RegistrySuite) TestConcurrentGetCreatesOneProfile() {
	id := NewID()
	results := make([]*Profile, 10)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = s.registry.Get(s.ctx, id)
		}(i)
	}
	wg.Wait()

	for _, p := range results {
		s.Same(results[0], p)
	}
}

func (s *RegistrySuite) TestGetRestoresSession() {
	id := NewID()
	p, _ := s.registry.Get(s.ctx, id)
	_, ok, err := p.Session.Signup(s.ctx, "Asha", "asha@example.com", "pw1")
	s.Require().NoError(err)
	s.Require().True(ok)

	restarted := s.newRegistry()
	p, err = restarted.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("Asha", p.Session.Current().Name)
}

func (s *RegistrySuite) TestMalformedSessionStartsLoggedOut() {
	id := NewID()
	s.Require().NoError(s.storage.Set(s.ctx, storage.SessionKey(id), []byte("garbage")))

	p, err := s.registry.Get(s.ctx, id)
	s.Require().NoError(err)
	s.False(p.Session.IsAuthenticated())
	s.Contains(s.logs.String(), "discarding malformed session slot")
	s.Contains(s.logs.String(), string(id))
}

func (s *RegistrySuite) TestStorageFaultIsNotCached() {
	id := NewID()
	s.storage.FailGets(true)

	_, err := s.registry.Get(s.ctx, id)
	s.ErrorIs(err, testutil.ErrInjected)
	s.Zero(s.registry.Count())

	s.storage.FailGets(false)
	_, err = s.registry.Get(s.ctx, id)
	s.NoError(err)
}

func (s *RegistrySuite) TestRemoveResetsLocale() {
	id := NewID()
	p, _ := s.registry.Get(s.ctx, id)
	p.Locale.SetLanguage(model.LanguageHindi)

	s.registry.Remove(id)
	s.Zero(s.registry.Count())

	p, _ = s.registry.Get(s.ctx, id)
	s.Equal(model.LanguageEnglish, p.Locale.Language())
}

func (s *RegistrySuite) TestRemoveClosesChat() {
	id := NewID()
	p, _ := s.registry.Get(s.ctx, id)
	s.registry.Remove(id)

	_, err := p.Chat.Send(s.ctx, "hello")
	s.ErrorIs(err, chat.ErrConversationClosed)
}

func (s *RegistrySuite) TestIdleProfilesAreEvicted() {
	registry := s.newRegistryWith(s.storage, func(cfg *Config) { cfg.IdleTimeout = 10 * time.Minute })

	idle := NewID()
	p, _ := registry.Get(s.ctx, idle)
	_, ok, err := p.Session.Signup(s.ctx, "Asha", "asha@example.com", "pw1")
	s.Require().NoError(err)
	s.Require().True(ok)
	p.Locale.SetLanguage(model.LanguageHindi)

	s.clock.Advance(11 * time.Minute)
	_, err = registry.Get(s.ctx, NewID())
	s.Require().NoError(err)
	s.Equal(1, registry.Count())

	_, err = p.Chat.Send(s.ctx, "hello")
	s.ErrorIs(err, chat.ErrConversationClosed)

	// Reloading restores the durable session but not the locale
	reloaded, err := registry.Get(s.ctx, idle)
	s.Require().NoError(err)
	s.NotSame(p, reloaded)
	s.Equal("Asha", reloaded.Session.Current().Name)
	s.Equal(model.LanguageEnglish, reloaded.Locale.Language())
}

func (s *RegistrySuite) TestRecentlyUsedProfilesSurviveSweep() {
	registry := s.newRegistryWith(s.storage, func(cfg *Config) { cfg.IdleTimeout = 10 * time.Minute })

	active := NewID()
	first, _ := registry.Get(s.ctx, active)
	idle := NewID()
	_, _ = registry.Get(s.ctx, idle)

	s.clock.Advance(6 * time.Minute)
	_, _ = registry.Get(s.ctx, active)
	s.clock.Advance(6 * time.Minute)

	s.Equal(1, registry.Sweep())
	s.Equal(1, registry.Count())
	again, _ := registry.Get(s.ctx, active)
	s.Same(first, again)
}

func (s *RegistrySuite) TestZeroIdleTimeoutKeepsProfiles() {
	registry := s.newRegistryWith(s.storage, func(cfg *Config) { cfg.IdleTimeout = 0 })
	_, _ = registry.Get(s.ctx, NewID())

	s.clock.Advance(24 * time.Hour)
	s.Zero(registry.Sweep())
	s.Equal(1, registry.Count())
}

func (s *RegistrySuite) TestMaxProfilesEvictsLeastRecentlyUsed() {
	registry := s.newRegistryWith(s.storage, func(cfg *Config) { cfg.MaxProfiles = 2 })

	oldest, second := NewID(), NewID()
	first, _ := registry.Get(s.ctx, oldest)
	s.clock.Advance(time.Second)
	_, _ = registry.Get(s.ctx, second)
	s.clock.Advance(time.Second)
	_, _ = registry.Get(s.ctx, NewID())

	s.Equal(2, registry.Count())
	_, err := first.Chat.Send(s.ctx, "hello")
	s.ErrorIs(err, chat.ErrConversationClosed)
}

func (s *RegistrySuite) TestRevalidatedSessionFollowsSlotExpiry() {
	mini := miniredis.RunT(s.T())
	client := goredis.NewClient(&goredis.Options{Addr: mini.Addr()})
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.SessionTTL = time.Minute
	store := redisstorage.NewWithClient(client, redisCfg)
	defer func() { _ = store.Close() }()

	registry := s.newRegistryWith(store, func(cfg *Config) { cfg.RevalidateSession = true })

	id := NewID()
	p, _ := registry.Get(s.ctx, id)
	_, ok, err := p.Session.Signup(s.ctx, "Asha", "asha@example.com", "pw1")
	s.Require().NoError(err)
	s.Require().True(ok)

	p, err = registry.Get(s.ctx, id)
	s.Require().NoError(err)
	s.True(p.Session.IsAuthenticated())

	mini.FastForward(2 * time.Minute)

	p, err = registry.Get(s.ctx, id)
	s.Require().NoError(err)
	s.False(p.Session.IsAuthenticated())

	// The account itself does not expire
	_, ok, err = p.Session.Login(s.ctx, "asha@example.com", "pw1")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *RegistrySuite) TestParseID() {
	id := NewID()
	parsed, err := ParseID(string(id))
	s.Require().NoError(err)
	s.Equal(id, parsed)

	_, err = ParseID("profile:../x")
	s.ErrorIs(err, ErrInvalidID)
}
