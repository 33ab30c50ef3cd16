package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/mindcare/internal/dependencies/mocks"
	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/storage"
	"github.com/mcoot/mindcare/internal/storage/memory"
	"github.com/mcoot/mindcare/internal/testutil"
)

const profile = model.ProfileID("profile-1")

type StoreSuite struct {
	suite.Suite
	storage  *testutil.FaultyStorage
	clock    *mocks.MockClock
	accounts *Accounts
	store    *Store
	ctx      context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.storage = testutil.NewFaultyStorage(memory.New())
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.accounts = NewAccounts(s.storage)
	s.store = s.newStore(profile)
	s.ctx = context.Background()
	s.Require().NoError(s.store.Initialize(s.ctx))
}

func (s *StoreSuite) newStore(id model.ProfileID) *Store {
	return New(s.storage, s.clock, s.accounts, id, Config{PasswordCost: bcrypt.MinCost}, testutil.NopLogger())
}

func (s *StoreSuite) listAccounts() []model.Account {
	accounts, err := s.accounts.List(s.ctx)
	s.Require().NoError(err)
	return accounts
}

// Initialize tests

func (s *StoreSuite) TestInitializeWithoutSlotHasNoSession() {
	s.False(s.store.IsAuthenticated())
	s.Nil(s.store.Current())
}

func (s *StoreSuite) TestInitializeAdoptsPersistedSession() {
	user := model.SessionUser{ID: "42", Name: "Ravi", Email: "ravi@example.com", MentalHealthScore: 60, Badges: []string{"Early Bird"}}
	s.Require().NoError(storage.SetJSON(s.ctx, s.storage, storage.SessionKey(profile), user))

	store := s.newStore(profile)
	s.Require().NoError(store.Initialize(s.ctx))

	s.True(store.IsAuthenticated())
	s.Equal(&user, store.Current())
}

func (s *StoreSuite) TestInitializeDoesNotRevalidateAgainstAccounts() {
	user := model.SessionUser{ID: "7", Name: "Ghost", Email: "ghost@example.com"}
	s.Require().NoError(storage.SetJSON(s.ctx, s.storage, storage.SessionKey(profile), user))

	store := s.newStore(profile)
	s.Require().NoError(store.Initialize(s.ctx))

	s.Empty(s.listAccounts())
	s.Equal("Ghost", store.Current().Name)
}

func (s *StoreSuite) TestInitializeMalformedSlotReturnsError() {
	s.Require().NoError(s.storage.Set(s.ctx, storage.SessionKey(profile), []byte("{not json")))

	store := s.newStore(profile)
	err := store.Initialize(s.ctx)

	s.ErrorIs(err, ErrMalformedSession)
	s.True(store.Initialized())
	s.False(store.IsAuthenticated())
}

func (s *StoreSuite) TestInitializeRecordWithoutIDIsMalformed() {
	s.Require().NoError(s.storage.Set(s.ctx, storage.SessionKey(profile), []byte(`{"name":"x"}`)))

	store := s.newStore(profile)
	s.ErrorIs(store.Initialize(s.ctx), ErrMalformedSession)
}

func (s *StoreSuite) TestInitializeNullSlotHasNoSession() {
	s.Require().NoError(s.storage.Set(s.ctx, storage.SessionKey(profile), []byte("null")))

	store := s.newStore(profile)
	s.Require().NoError(store.Initialize(s.ctx))
	s.False(store.IsAuthenticated())
}

func (s *StoreSuite) TestInitializeStorageFault() {
	s.storage.FailGets(true)

	store := s.newStore(profile)
	err := store.Initialize(s.ctx)

	s.ErrorIs(err, testutil.ErrInjected)
	s.NotErrorIs(err, ErrMalformedSession)
}

func (s *StoreSuite) TestCurrentPanicsBeforeInitialize() {
	store := s.newStore("fresh")

	s.PanicsWithValue(ErrNotInitialized, func() { store.Current() })
	s.PanicsWithValue(ErrNotInitialized, func() { store.IsAuthenticated() })
}

// Signup tests

func (s *StoreSuite) TestSignupFreshEmailSucceeds() {
	user, ok, err := s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")
	s.Require().NoError(err)
	s.Require().True(ok)

	s.Equal("Asha", user.Name)
	s.Equal(80, user.MentalHealthScore)
	s.Equal([]string{"New Member"}, user.Badges)

	accounts := s.listAccounts()
	s.Require().Len(accounts, 1)
	projection := accounts[0].Projection()
	s.Equal(&projection, user)
	s.Equal(user, s.store.Current())
}

func (s *StoreSuite) TestSignupDerivesIDFromClock() {
	user, ok, err := s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")
	s.Require().NoError(err)
	s.Require().True(ok)

	s.Equal(model.AccountID("1704110400000"), user.ID)
	s.Equal(s.clock.Now(), s.listAccounts()[0].CreatedAt)
}

func (s *StoreSuite) TestSignupHashesPassword() {
	_, _, err := s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")
	s.Require().NoError(err)

	account := s.listAccounts()[0]
	s.NotEqual("pw1", account.PasswordHash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), passwordDigest("pw1")))
}

func (s *StoreSuite) TestLongPasswordSignupAndLogin() {
	password := strings.Repeat("correct horse battery staple ", 4)
	s.Require().Greater(len(password), 100)

	_, ok, err := s.store.Signup(s.ctx, "Asha", "asha@example.com", password)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Require().NoError(s.store.Logout(s.ctx))

	_, ok, err = s.store.Login(s.ctx, "asha@example.com", password)
	s.Require().NoError(err)
	s.True(ok)
	s.Require().NoError(s.store.Logout(s.ctx))

	// Passwords sharing the first 72 bytes are still distinct
	_, ok, err = s.store.Login(s.ctx, "asha@example.com", password+"!")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *StoreSuite) TestEmailWhitespaceIsIgnored() {
	user, ok, err := s.store.Signup(s.ctx, " Asha ", "  asha@example.com\t", "pw1")
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal("Asha", user.Name)
	s.Equal("asha@example.com", user.Email)
	s.Require().NoError(s.store.Logout(s.ctx))

	_, ok, err = s.store.Login(s.ctx, "asha@example.com", "pw1")
	s.Require().NoError(err)
	s.True(ok)

	_, ok, err = s.store.Signup(s.ctx, "Again", "asha@example.com ", "pw2")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *StoreSuite) TestSignupPersistsSessionSlot() {
	user, _, err := s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")
	s.Require().NoError(err)

	var persisted model.SessionUser
	s.Require().NoError(storage.GetJSON(s.ctx, s.storage, storage.SessionKey(profile), &persisted))
	s.Equal(*user, persisted)
}

func (s *StoreSuite) TestSignupDuplicateEmailFails() {
	_, ok, err := s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")
	s.Require().NoError(err)
	s.Require().True(ok)

	other := s.newStore("profile-2")
	s.Require().NoError(other.Initialize(s.ctx))

	s.clock.Advance(time.Second)
	user, ok, err := other.Signup(s.ctx, "Asha Again", "asha@example.com", "pw2")
	s.Require().NoError(err)
	s.False(ok)
	s.Nil(user)

	s.Len(s.listAccounts(), 1)
	s.False(other.IsAuthenticated())
}

func (s *StoreSuite) TestSignupDuplicateLeavesExistingSessionUnchanged() {
	first, _, _ := s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")

	_, ok, err := s.store.Signup(s.ctx, "Someone", "asha@example.com", "pw9")
	s.Require().NoError(err)
	s.False(ok)
	s.Equal(first, s.store.Current())
}

func (s *StoreSuite) TestSignupEmailMatchIsCaseSensitive() {
	_, _, _ = s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")
	s.clock.Advance(time.Millisecond)

	_, ok, err := s.store.Signup(s.ctx, "Asha", "ASHA@example.com", "pw1")
	s.Require().NoError(err)
	s.True(ok)
	s.Len(s.listAccounts(), 2)
}

func (s *StoreSuite) TestSignupStorageFaultLeavesStateUnchanged() {
	s.storage.FailSets(true)

	_, ok, err := s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")
	s.ErrorIs(err, testutil.ErrInjected)
	s.False(ok)
	s.False(s.store.IsAuthenticated())

	s.storage.FailSets(false)
	s.Empty(s.listAccounts())
}

// Login tests

func (s *StoreSuite) TestLoginCorrectCredentialsSucceeds() {
	signedUp, _, _ := s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")
	s.Require().NoError(s.store.Logout(s.ctx))

	user, ok, err := s.store.Login(s.ctx, "asha@example.com", "pw1")
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(signedUp, user)
	s.Equal(user, s.store.Current())
}

func (s *StoreSuite) TestLoginWrongPasswordFails() {
	_, _, _ = s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")
	s.Require().NoError(s.store.Logout(s.ctx))

	user, ok, err := s.store.Login(s.ctx, "asha@example.com", "wrong")
	s.Require().NoError(err)
	s.False(ok)
	s.Nil(user)
	s.False(s.store.IsAuthenticated())
}

func (s *StoreSuite) TestLoginUnknownEmailFails() {
	_, ok, err := s.store.Login(s.ctx, "nobody@example.com", "pw1")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *StoreSuite) TestLoginFailureLeavesExistingSessionUnchanged() {
	current, _, _ := s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")

	_, ok, err := s.store.Login(s.ctx, "asha@example.com", "wrong")
	s.Require().NoError(err)
	s.False(ok)
	s.Equal(current, s.store.Current())

	var persisted model.SessionUser
	s.Require().NoError(storage.GetJSON(s.ctx, s.storage, storage.SessionKey(profile), &persisted))
	s.Equal(*current, persisted)
}

func (s *StoreSuite) TestLoginAppliesProjectionFallbacks() {
	hash, err := bcrypt.GenerateFromPassword(passwordDigest("pw"), bcrypt.MinCost)
	s.Require().NoError(err)
	legacy := []model.Account{{ID: "1", Name: "Old", Email: "old@example.com", PasswordHash: string(hash)}}
	s.Require().NoError(storage.SetJSON(s.ctx, s.storage, storage.AccountsKey, legacy))

	user, ok, err := s.store.Login(s.ctx, "old@example.com", "pw")
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(75, user.MentalHealthScore)
	s.Equal([]string{"New Member"}, user.Badges)
}

func (s *StoreSuite) TestLoginKeepsEmptyBadgeList() {
	hash, err := bcrypt.GenerateFromPassword(passwordDigest("pw"), bcrypt.MinCost)
	s.Require().NoError(err)
	raw := `[{"id":"1","name":"Old","email":"old@example.com","passwordHash":"` + string(hash) + `","badges":[]}]`
	s.Require().NoError(s.storage.Set(s.ctx, storage.AccountsKey, []byte(raw)))

	user, ok, err := s.store.Login(s.ctx, "old@example.com", "pw")
	s.Require().NoError(err)
	s.Require().True(ok)
	s.NotNil(user.Badges)
	s.Empty(user.Badges)
	s.NotNil(s.store.Current().Badges)
}

func (s *StoreSuite) TestSessionIsSnapshotOfAccount() {
	_, _, _ = s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")

	err := s.accounts.Update(s.ctx, func(accounts []model.Account) ([]model.Account, error) {
		accounts[0].Name = "Asha Renamed"
		return accounts, nil
	})
	s.Require().NoError(err)

	s.Equal("Asha", s.store.Current().Name)
}

func (s *StoreSuite) TestLoginStorageFault() {
	s.storage.FailGets(true)

	_, ok, err := s.store.Login(s.ctx, "asha@example.com", "pw1")
	s.ErrorIs(err, testutil.ErrInjected)
	s.False(ok)
}

// Logout tests

func (s *StoreSuite) TestLogoutClearsSessionAndSlot() {
	_, _, _ = s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")

	s.Require().NoError(s.store.Logout(s.ctx))
	s.False(s.store.IsAuthenticated())

	_, err := s.storage.Get(s.ctx, storage.SessionKey(profile))
	s.ErrorIs(err, model.ErrKeyNotFound)

	restarted := s.newStore(profile)
	s.Require().NoError(restarted.Initialize(s.ctx))
	s.False(restarted.IsAuthenticated())
}

func (s *StoreSuite) TestLogoutKeepsAccounts() {
	_, _, _ = s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")
	s.Require().NoError(s.store.Logout(s.ctx))

	s.Len(s.listAccounts(), 1)
}

func (s *StoreSuite) TestLogoutWithoutSessionIsNoop() {
	s.NoError(s.store.Logout(s.ctx))
	s.False(s.store.IsAuthenticated())
}

func (s *StoreSuite) TestLogoutStorageFaultKeepsSession() {
	_, _, _ = s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")
	s.storage.FailDeletes(true)

	s.ErrorIs(s.store.Logout(s.ctx), testutil.ErrInjected)
	s.True(s.store.IsAuthenticated())
}

// Scenario tests

func (s *StoreSuite) TestAshaSignupScenario() {
	user, ok, err := s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal("Asha", user.Name)
	s.Equal(80, user.MentalHealthScore)

	_, ok, err = s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")
	s.Require().NoError(err)
	s.False(ok)
	s.Len(s.listAccounts(), 1)
}

func (s *StoreSuite) TestAshaLoginScenario() {
	signedUp, _, err := s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")
	s.Require().NoError(err)

	_, ok, err := s.store.Login(s.ctx, "asha@example.com", "wrong")
	s.Require().NoError(err)
	s.False(ok)

	user, ok, err := s.store.Login(s.ctx, "asha@example.com", "pw1")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(signedUp, user)
}

func (s *StoreSuite) TestSessionSurvivesRestart() {
	signedUp, _, _ := s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")

	restarted := s.newStore(profile)
	s.Require().NoError(restarted.Initialize(s.ctx))
	s.Equal(signedUp, restarted.Current())
}

func (s *StoreSuite) TestProfilesAreIsolated() {
	_, _, _ = s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")

	other := s.newStore("profile-2")
	s.Require().NoError(other.Initialize(s.ctx))
	s.False(other.IsAuthenticated())

	_, ok, err := other.Login(s.ctx, "asha@example.com", "pw1")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *StoreSuite) TestCurrentReturnsCopy() {
	_, _, _ = s.store.Signup(s.ctx, "Asha", "asha@example.com", "pw1")

	user := s.store.Current()
	user.Name = "Mutated"
	user.Badges[0] = "Mutated"

	s.Equal("Asha", s.store.Current().Name)
	s.Equal([]string{"New Member"}, s.store.Current().Badges)
}
