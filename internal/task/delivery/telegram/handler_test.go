package telegram_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-hero/internal/task"
	"task-hero/internal/task/delivery/telegram"
	"task-hero/internal/task/usecase"
	"task-hero/pkg/datemath"
	"task-hero/pkg/log"
	pkgTelegram "task-hero/pkg/telegram"
)

const allowedChat = 123

type capture struct {
	mu   sync.Mutex
	msgs []string
}

func (c *capture) add(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, s)
}

func (c *capture) all() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.msgs...)
}

// waitFor polls until at least n messages were sent.
func (c *capture) waitFor(t *testing.T, n int) []string {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if msgs := c.all(); len(msgs) >= n {
			return msgs
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d messages, got %v", n, c.all())
	return nil
}

type testEnv struct {
	engine *gin.Engine
	uc     task.UseCase
	sent   *capture
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sent := &capture{}
	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sendMessage") {
			var payload pkgTelegram.SendMessageRequest
			json.NewDecoder(r.Body).Decode(&payload)
			sent.add(payload.Text)
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(tgServer.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	now := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)
	cal, _ := datemath.NewCalendar("UTC")
	uc := usecase.New(log.NewNop(), nil, nil, cal, usecase.WithClock(func() time.Time { return now }))
	t.Cleanup(uc.Close)

	engine := gin.New()
	engine.POST("/webhook/telegram", telegram.New(log.NewNop(), uc, bot, allowedChat, time.UTC).HandleWebhook)

	return &testEnv{engine: engine, uc: uc, sent: sent}
}

func (e *testEnv) send(chatID int64, text string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: chatID},
			From:      &pkgTelegram.User{ID: 456},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func assertContains(t *testing.T, msg, substr string) {
	t.Helper()
	if !strings.Contains(msg, substr) {
		t.Errorf("expected message containing %q, got %q", substr, msg)
	}
}

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	env := newTestEnv(t)

	body, _ := json.Marshal(pkgTelegram.Update{UpdateID: 1})
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestHandleWebhook_OtherChatIgnored(t *testing.T) {
	env := newTestEnv(t)

	if w := env.send(999, "/add Sneaky"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	time.Sleep(50 * time.Millisecond)
	if len(env.uc.Pending()) != 0 || len(env.sent.all()) != 0 {
		t.Errorf("messages from other chats must be ignored")
	}
}

func TestHandleHelp(t *testing.T) {
	env := newTestEnv(t)

	env.send(allowedChat, "/start")
	msgs := env.sent.waitFor(t, 1)
	assertContains(t, msgs[0], "/add")
}

func TestAddListAndComplete(t *testing.T) {
	env := newTestEnv(t)

	env.send(allowedChat, "/add Write report | hard | 45")
	msgs := env.sent.waitFor(t, 1)
	assertContains(t, msgs[0], "Write report")
	assertContains(t, msgs[0], "+50 XP")

	pending := env.uc.Pending()
	if len(pending) != 1 || pending[0].EstimatedMinutes != 45 {
		t.Fatalf("unexpected pending tasks: %+v", pending)
	}

	env.send(allowedChat, "/tasks@TaskHeroBot")
	msgs = env.sent.waitFor(t, 2)
	assertContains(t, msgs[1], "Write report")
	assertContains(t, msgs[1], pending[0].ID[:8])

	env.send(allowedChat, "/done "+pending[0].ID[:6])
	msgs = env.sent.waitFor(t, 3)
	assertContains(t, msgs[2], "Completed")
	assertContains(t, msgs[2], "+50 XP")

	if len(env.uc.Completed()) != 1 {
		t.Errorf("expected the task in history")
	}
}

func TestPlainTextAddsEasyTask(t *testing.T) {
	env := newTestEnv(t)

	env.send(allowedChat, "Water the plants")
	env.sent.waitFor(t, 1)

	pending := env.uc.Pending()
	if len(pending) != 1 || pending[0].Title != "Water the plants" || pending[0].Difficulty != "easy" {
		t.Errorf("unexpected pending tasks: %+v", pending)
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"/add", "usage: /add"},
		{"/add Title | epic", "difficulty"},
		{"/add Title | easy | soon", "whole number"},
		{"/done", "usage: /done"},
		{"/done ffff", "No pending task"},
		{"/theme neon", "theme must be"},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			env := newTestEnv(t)
			env.send(allowedChat, tc.text)
			msgs := env.sent.waitFor(t, 1)
			assertContains(t, msgs[0], tc.want)
		})
	}
}

func TestStatsAndTheme(t *testing.T) {
	env := newTestEnv(t)

	env.send(allowedChat, "/theme dark")
	msgs := env.sent.waitFor(t, 1)
	assertContains(t, msgs[0], "dark")
	if env.uc.ThemePreference() != "dark" {
		t.Errorf("expected dark theme, got %s", env.uc.ThemePreference())
	}

	env.send(allowedChat, "/stats")
	msgs = env.sent.waitFor(t, 2)
	assertContains(t, msgs[1], "Level 1")
	assertContains(t, msgs[1], "XP: 0/100")
}

func TestMessagesProcessedInArrivalOrder(t *testing.T) {
	env := newTestEnv(t)

	titles := []string{"First", "Second", "Third", "Fourth", "Fifth"}
	for _, title := range titles {
		if w := env.send(allowedChat, "/add "+title); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	}
	env.sent.waitFor(t, len(titles))

	pending := env.uc.Pending()
	if len(pending) != len(titles) {
		t.Fatalf("expected %d pending tasks, got %d", len(titles), len(pending))
	}
	for i, title := range titles {
		if pending[i].Title != title {
			t.Errorf("pending[%d] = %q, want %q", i, pending[i].Title, title)
		}
		if i > 0 && !pending[i].ScheduledStart.Equal(pending[i-1].ScheduledEnd) {
			t.Errorf("task %q should start when %q ends", title, titles[i-1])
		}
	}
}
