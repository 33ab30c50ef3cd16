package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/mindcare/internal/api"
	"github.com/mcoot/mindcare/internal/api/response"
	"github.com/mcoot/mindcare/internal/factory"
	"github.com/mcoot/mindcare/internal/services/chat"
	"github.com/mcoot/mindcare/internal/services/profile"
	"github.com/mcoot/mindcare/internal/services/session"
	"github.com/mcoot/mindcare/internal/web"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath  string
	serverURL   string
	profileFile string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "mindcare-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/mindcare")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath:  binaryPath,
		serverURL:   serverURL,
		profileFile: filepath.Join(t.TempDir(), "profile"),
	}
}

// withProfileFile returns a runner sharing the binary but acting as another device
func (r *cliRunner) withProfileFile(path string) *cliRunner {
	return &cliRunner{binaryPath: r.binaryPath, serverURL: r.serverURL, profileFile: path}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--profile-file", r.profileFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	cmd.Env = append(os.Environ(), "MINDCARE_PROFILE=")
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func runJSON[T any](t *testing.T, r *cliRunner, args ...string) T {
	t.Helper()

	output, err := r.run(args...)
	require.NoError(t, err, "output: %s", output)

	var result T
	require.NoError(t, json.Unmarshal([]byte(output), &result), "output: %s", output)
	return result
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application with real clock, fast hashing and short chat delay
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	app, err := factory.New(t.Context(), factory.Config{
		Logger: logger,
		Profile: &profile.Config{
			Session: session.Config{PasswordCost: bcrypt.MinCost},
			Chat:    chat.Config{ReplyDelay: 10 * time.Millisecond},
		},
	})
	require.NoError(t, err)

	// Create routers
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		Storage:         app.Storage,
		Profiles:        app.Profiles,
		MoodService:     app.MoodService,
		BookingService:  app.BookingService,
		ForumService:    app.ForumService,
		StressAnalyzer:  app.StressAnalyzer,
		SettingsService: app.SettingsService,
		ResourceLibrary: app.ResourceLibrary,
		SupportService:  app.SupportService,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:          logger,
		Clock:           app.Clock,
		Profiles:        app.Profiles,
		MoodService:     app.MoodService,
		BookingService:  app.BookingService,
		ForumService:    app.ForumService,
		StressAnalyzer:  app.StressAnalyzer,
		SettingsService: app.SettingsService,
		ResourceLibrary: app.ResourceLibrary,
		SupportService:  app.SupportService,
		HubManager:      app.HubManager,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/metrics", apiRouter)
	mux.Handle("/", webRouter)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			app.HubManager.Close()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
			_ = app.Close()
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// nextWeekday returns the next date (after today) falling on day
func nextWeekday(day time.Weekday) string {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

type messageResponse struct {
	Message string `json:"message"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	resp := runJSON[response.Health](t, cli, "health")
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_AccountCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Profile is created on first use and saved
	created := runJSON[response.Profile](t, cli, "profile", "new")
	saved, err := os.ReadFile(cli.profileFile)
	require.NoError(t, err)
	assert.Equal(t, created.ID, string(saved))

	session := runJSON[response.Session](t, cli, "account", "signup", "--name", "Asha", "--email", "asha@uni.edu", "--password", "pw1")
	assert.True(t, session.Authenticated)
	assert.Equal(t, "Asha", session.User.Name)

	session = runJSON[response.Session](t, cli, "account", "me")
	assert.True(t, session.Authenticated)

	msg := runJSON[messageResponse](t, cli, "account", "logout")
	assert.Equal(t, "Logged out", msg.Message)

	session = runJSON[response.Session](t, cli, "account", "me")
	assert.False(t, session.Authenticated)

	// Duplicate signup from another device fails
	other := cli.withProfileFile(filepath.Join(t.TempDir(), "profile2"))
	output, err := other.run("account", "signup", "--name", "X", "--email", "asha@uni.edu", "--password", "pw2")
	assert.Error(t, err)
	assert.Contains(t, output, "EMAIL_EXISTS")

	// The first account still logs in there
	session = runJSON[response.Session](t, other, "account", "login", "--email", "asha@uni.edu", "--password", "pw1")
	assert.Equal(t, "asha@uni.edu", session.User.Email)
}

func TestCLI_LocaleAndChat(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	loc := runJSON[response.Locale](t, cli, "locale", "set", "hi")
	assert.Equal(t, "hi", loc.Language)

	tr := runJSON[response.Translation](t, cli, "locale", "translate", "nav.home")
	assert.Equal(t, "होम", tr.Text)

	reply := runJSON[response.ChatMessage](t, cli, "chat", "send", "I", "feel", "anxious")
	assert.Equal(t, "ai", reply.Sender)
	assert.Equal(t, "anxiety", reply.Topic)

	conv := runJSON[response.Conversation](t, cli, "chat", "history")
	assert.Len(t, conv.Messages, 3)
}

func TestCLI_MoodAndBooking(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Mood check-in needs an account
	_, err := cli.run("mood", "set", "Good")
	assert.Error(t, err)

	runJSON[response.Session](t, cli, "account", "signup", "--name", "Asha", "--email", "asha@uni.edu", "--password", "pw1")
	mood := runJSON[response.Mood](t, cli, "mood", "set", "Good")
	assert.Equal(t, "Good", mood.Mood)

	catalogue := runJSON[response.Catalogue](t, cli, "booking", "counselors")
	require.NotEmpty(t, catalogue.Counselors)

	booking := runJSON[response.Booking](t, cli, "booking", "submit",
		"--counselor", "1",
		"--date", nextWeekday(time.Monday),
		"--time", "9:00 AM",
		"--reason", "Exam anxiety",
		"--urgency", "moderate",
	)
	assert.Equal(t, "Dr. Sarah Chen", booking.Counselor.Name)
	assert.Equal(t, "moderate", booking.Urgency)
	require.NotNil(t, booking.User)
	assert.Equal(t, "Asha", booking.User.Name)
}

func TestCLI_Forum(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	post := runJSON[response.Post](t, cli, "forum", "post", "--title", "Exam week", "--content", "Any tips?", "--tags", "exams,stress")
	assert.Equal(t, "Anonymous", post.Author.Name)
	assert.Equal(t, []string{"exams", "stress"}, post.Tags)

	liked := runJSON[response.Post](t, cli, "forum", "like", post.ID)
	assert.True(t, liked.Liked)

	reply := runJSON[response.Reply](t, cli, "forum", "reply", post.ID, "--content", "Sleep well")
	assert.Equal(t, "Sleep well", reply.Content)

	list := runJSON[response.PostList](t, cli, "forum", "list", "--tag", "exams")
	require.NotEmpty(t, list.Posts)
	assert.Equal(t, post.ID, list.Posts[0].ID)
}

func TestCLI_StressCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	result := runJSON[response.StressResult](t, cli, "stress", "run", "file")
	assert.Equal(t, "file", result.Mode)
	assert.Equal(t, 40, result.StressLevel)

	_, err := cli.run("stress", "run", "telepathy")
	assert.Error(t, err)
}

func TestWeb_HomePageServed(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	resp, err := http.Get(ts.addr + "/")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Set-Cookie"), "profile=")
}
