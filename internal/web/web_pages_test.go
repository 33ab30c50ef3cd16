package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageToggle(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	doc := parseHTML(rr.Body)
	assert.Equal(t, "en", doc.Find("html").AttrOr("lang", ""))
	assertContainsText(t, doc, "form.language-toggle button", "हिन्दी")
	assert.Equal(t, "hi", doc.Find("form.language-toggle input[name='lang']").AttrOr("value", ""))

	rr = ts.post("/language", url.Values{"lang": {"hi"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	rr = ts.followRedirect(rr)
	doc = parseHTML(rr.Body)
	assert.Equal(t, "hi", doc.Find("html").AttrOr("lang", ""))
	assertContainsText(t, doc, "h1", "आपका मानसिक स्वास्थ्य साथी")
	assertContainsText(t, doc, "nav", "होम")
	assertContainsText(t, doc, "form.language-toggle button", "English")

	// Another browser still sees English
	other := ts.newBrowser()
	doc = parseHTML(other.get("/").Body)
	assertContainsText(t, doc, "h1", "Your Mental Wellness Companion")
}

func TestLanguageToggleIgnoresUnknownLanguage(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/language", url.Values{"lang": {"fr"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	doc := parseHTML(ts.get("/").Body)
	assert.Equal(t, "en", doc.Find("html").AttrOr("lang", ""))
}

func TestCopilotPage(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/copilot")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "h1", "AI Mental Health Assistant")
	assert.Equal(t, 1, doc.Find("#messages .message-ai").Length(), "Expected the greeting")
	assertContainsElement(t, doc, "form#chat-form[hx-post='/copilot']")
	assertContainsElement(t, doc, ".suggestions button[data-type='stress']")
}

func TestCopilotSendHTMX(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.postHTMX("/copilot", url.Values{"message": {"I can't sleep at night"}})
	require.Equal(t, http.StatusOK, rr.Code)

	// Only the new exchange is returned for the swap
	doc := parseHTML(rr.Body)
	assert.Equal(t, 2, doc.Find(".message").Length())
	assertContainsText(t, doc, ".message-user", "I can't sleep at night")
	assertContainsElement(t, doc, ".message-ai[data-topic='sleep']")

	doc = parseHTML(ts.get("/copilot").Body)
	assert.Equal(t, 3, doc.Find("#messages .message").Length())
}

func TestCopilotSendForm(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/copilot", url.Values{"message": {"I'm feeling stressed about exams"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/copilot", rr.Header().Get("Location"))

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsElement(t, doc, ".message-ai[data-topic='stress']")
}

func TestCopilotEmptyMessage(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.postHTMX("/copilot", url.Values{"message": {"   "}})
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.post("/copilot", url.Values{"message": {""}})
	assert.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Please type a message")
	assert.Equal(t, 1, doc.Find("#messages .message").Length())
}

func TestForumList(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/forum")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "h1", "Peer Support Forum")
	assertContainsElement(t, doc, "section.forum[sse-connect='/forum/events']")
	assert.Equal(t, 3, doc.Find("#forum-posts article.post").Length())
	assertContainsElement(t, doc, ".popular-tags a")

	doc = parseHTML(ts.get("/forum?q=sleep").Body)
	assertContainsText(t, doc, "#forum-posts", "Late night study sessions affecting my sleep")

	doc = parseHTML(ts.get("/forum?q=zzzzzz").Body)
	assertContainsText(t, doc, "#forum-posts .empty", "No posts found.")
}

func TestForumCreatePost(t *testing.T) {
	ts := newWebTestServer(t)
	ts.signup("Asha", "asha@uni.edu", "secret123")

	path := ts.createPost("Exam week", "Any tips for staying calm?", "Exams, Stress")

	rr := ts.get(path)
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash-success", "Your post is live")
	assertContainsText(t, doc, ".post-title", "Exam week")
	assertContainsText(t, doc, ".author-name", "Asha")
	assertContainsText(t, doc, ".tags", "#exams")

	doc = parseHTML(ts.get("/forum").Body)
	assert.Equal(t, 4, doc.Find("#forum-posts article.post").Length())
	assertContainsText(t, doc, "#forum-posts article.post:first-child .post-title", "Exam week")
}

func TestForumCreatePostAnonymously(t *testing.T) {
	ts := newWebTestServer(t)
	ts.signup("Asha", "asha@uni.edu", "secret123")

	form := url.Values{"title": {"Quiet question"}, "content": {"Is it normal to feel lost?"}, "anonymous": {"true"}}
	rr := ts.post("/forum/posts", form)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".author-name", "Anonymous")
}

func TestForumCreatePostValidation(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/forum/posts", url.Values{"title": {""}, "content": {"body"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Please give your post a title and some content")
}

func TestForumLikeToggles(t *testing.T) {
	ts := newWebTestServer(t)
	path := ts.createPost("Exam week", "Any tips?", "")

	rr := ts.post(path+"/like", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	doc := parseHTML(ts.get(path).Body)
	assertContainsText(t, doc, ".like-count", "1")
	assertContainsElement(t, doc, ".like-button.liked")

	// Another browser sees the count but not the liked state
	other := ts.newBrowser()
	doc = parseHTML(other.get(path).Body)
	assertContainsText(t, doc, ".like-count", "1")
	assertNotContainsElement(t, doc, ".like-button.liked")

	ts.post(path+"/like", nil)
	doc = parseHTML(ts.get(path).Body)
	assertContainsText(t, doc, ".like-count", "0")
	assertNotContainsElement(t, doc, ".like-button.liked")
}

func TestForumReply(t *testing.T) {
	ts := newWebTestServer(t)
	path := ts.createPost("Exam week", "Any tips?", "")

	rr := ts.post(path+"/replies", url.Values{"content": {"Take breaks!"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, path, rr.Header().Get("Location"))

	doc := parseHTML(ts.followRedirect(rr).Body)
	assert.Equal(t, 1, doc.Find(".replies li.reply").Length())
	assertContainsText(t, doc, ".replies", "Take breaks!")
	assertContainsText(t, doc, ".reply-count", "1 reply")

	rr = ts.post(path+"/replies", url.Values{"content": {"  "}})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	doc = parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Reply cannot be empty")
}

func TestForumUnknownPost(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/forum/posts/nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = ts.post("/forum/posts/nope/like", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = ts.post("/forum/posts/nope/replies", url.Values{"content": {"hi"}})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBookingForm(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/booking?counselor=2")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "h1", "Book a Counselor")
	assert.Equal(t, 3, doc.Find("input[name='counselor']").Length())
	assertContainsElement(t, doc, "#counselor-2 input[checked]")
	assertContainsElement(t, doc, "input[name='time'][value='10:00 AM'][disabled]")
	assert.Equal(t, "2024-01-01", doc.Find("input[name='date']").AttrOr("min", ""))
}

func TestBookingSubmit(t *testing.T) {
	ts := newWebTestServer(t)
	ts.signup("Asha", "asha@uni.edu", "secret123")

	form := url.Values{
		"counselor":    {"1"},
		"date":         {"2024-01-01"},
		"time":         {"9:00 AM"},
		"session_type": {"online"},
		"reason":       {"Exam anxiety"},
		"urgency":      {"normal"},
	}
	rr := ts.post("/booking", form)
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "h1", "Your session has been booked")
	assertContainsText(t, doc, ".booking-summary .counselor-name", "Dr. Sarah Chen")
	assertContainsText(t, doc, ".booking-summary .time", "9:00 AM")
}

func TestBookingValidation(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{
		"counselor":    {"2"},
		"date":         {"2024-01-01"},
		"time":         {"9:00 AM"},
		"session_type": {"online"},
		"reason":       {"Exam anxiety"},
		"urgency":      {"normal"},
	}
	rr := ts.post("/booking", form)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "not available on the chosen day")
	// The form keeps what was entered
	assertContainsText(t, doc, "textarea[name='reason']", "Exam anxiety")

	form.Set("counselor", "1")
	form.Set("reason", "")
	rr = ts.post("/booking", form)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	doc = parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Please tell us briefly why you are booking")
}

func TestStressCheck(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/stress")
	assert.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assert.Equal(t, 3, doc.Find("#stress-form button[name='mode']").Length())
	assertNotContainsElement(t, doc, ".stress-result")

	rr = ts.post("/stress", url.Values{"mode": {"file"}})
	require.Equal(t, http.StatusOK, rr.Code)
	doc = parseHTML(rr.Body)
	assertContainsElement(t, doc, ".stress-result[data-mode='file']")
	assertContainsText(t, doc, ".stress-level", "40%")
	assertContainsText(t, doc, ".emotion", "Neutral")
	assertNotContainsElement(t, doc, ".substituted")
}

func TestStressCheckWithoutCamera(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.Permissions.Camera = false

	rr := ts.post("/stress", url.Values{"mode": {"camera"}})
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, ".stress-result[data-mode='camera']")
	assertContainsElement(t, doc, ".notice.substituted")
	assertContainsElement(t, doc, ".recommendations li")
}

func TestStressCheckUnknownMode(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/stress", url.Values{"mode": {"telepathy"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Please choose camera, voice or file analysis")
}

func TestNotFoundPage(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/does-not-exist")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "section.error h1", "404")
	assertContainsText(t, doc, "section.error", "Page not found")
}

func TestPrivacyBannerAndHelpline(t *testing.T) {
	ts := newWebTestServer(t)

	for _, path := range []string{"/", "/forum", "/booking", "/stress", "/copilot", "/login"} {
		doc := parseHTML(ts.get(path).Body)
		assertContainsElement(t, doc, ".privacy-banner")
		assertContainsElement(t, doc, "footer .helpline")
	}
}
