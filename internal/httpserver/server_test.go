package httpserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-hero/internal/httpserver"
	"task-hero/internal/task/usecase"
	"task-hero/pkg/datemath"
	"task-hero/pkg/log"
)

func newServer(t *testing.T, cfg httpserver.Config) (*httpserver.HTTPServer, error) {
	t.Helper()
	uc := usecase.New(log.NewNop(), nil, nil, datemath.Local())
	t.Cleanup(uc.Close)
	if cfg.TaskUseCase == nil {
		cfg.TaskUseCase = uc
	}
	return httpserver.New(log.NewNop(), cfg)
}

func TestNewValidates(t *testing.T) {
	_, err := newServer(t, httpserver.Config{Mode: "test"})
	assert.Error(t, err, "port is required")

	_, err = httpserver.New(log.NewNop(), httpserver.Config{Port: 8080, Mode: "test"})
	assert.Error(t, err, "task use case is required")
}

func TestRoutes(t *testing.T) {
	srv, err := newServer(t, httpserver.Config{Port: 8080, Mode: "test", Environment: httpserver.EnvironmentProduction, RateLimitPerMin: 600})
	require.NoError(t, err)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/live", http.StatusOK},
		{http.MethodGet, "/api/v1/tasks", http.StatusOK},
		{http.MethodGet, "/api/v1/stats", http.StatusOK},
		{http.MethodPost, "/webhook/telegram", http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, tc.want, w.Code)
			if tc.want == http.StatusOK {
				assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
			}
		})
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv, err := newServer(t, httpserver.Config{Port: 18089, Mode: "test"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

type stubTelegramHandler struct{ calls int }

func (h *stubTelegramHandler) HandleWebhook(c *gin.Context) {
	h.calls++
	c.Status(http.StatusOK)
}

func TestTelegramWebhookIsRateLimited(t *testing.T) {
	tg := &stubTelegramHandler{}
	// 10 per minute gives a burst of one.
	srv, err := newServer(t, httpserver.Config{Port: 8080, Mode: "test", Environment: httpserver.EnvironmentProduction, RateLimitPerMin: 10, TelegramHandler: tg})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, 1, tg.calls)
}
