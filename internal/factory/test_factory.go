package factory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/mindcare/internal/dependencies/mocks"
	"github.com/mcoot/mindcare/internal/services/chat"
	"github.com/mcoot/mindcare/internal/services/profile"
	"github.com/mcoot/mindcare/internal/services/session"
	"github.com/mcoot/mindcare/internal/services/stress"
	"github.com/mcoot/mindcare/internal/storage/memory"
	"github.com/mcoot/mindcare/internal/testutil"
)

// TestStart is the mock clock's starting time, a Monday
var TestStart = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock   *mocks.MockClock
	MockRandom  *mocks.MockRandom
	Permissions *stress.StaticPermissions
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Timers fire as soon as they are scheduled and password hashing is cheap.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(TestStart)
	mockRandom := mocks.NewMockRandom()
	perms := stress.NewStaticPermissions(true, true)

	cfg := profile.DefaultConfig()
	cfg.Session = session.Config{PasswordCost: bcrypt.MinCost}
	cfg.Chat = chat.DefaultConfig()
	app := newWithDependencies(store, mockClock, mockRandom, perms, cfg, testutil.NopLogger())

	return &TestApp{
		App:         app,
		MockClock:   mockClock,
		MockRandom:  mockRandom,
		Permissions: perms,
	}
}
