package gcalendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"task-hero/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestNewClientFromCredentials(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token.json")

	t.Run("broken config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), tokenPath)
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("installed app without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), filepath.Join(dir, "missing.json"))
		if err == nil {
			t.Fatalf("expected missing token error")
		}
	})

	t.Run("installed app with token", func(t *testing.T) {
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600)
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("installed app bad token", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		os.WriteFile(bad, []byte(`{"broken": true`), 0o600)
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), bad)
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("missing credentials file", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(dir, "nope.json"), tokenPath)
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
			json.NewDecoder(r.Body).Decode(&body)
			w.Write([]byte(`{"id": "event-123", "htmlLink": "https://calendar.google.com/event-uri", "status": "confirmed"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	zero := int64(0)
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:      "🔔 Task Starting Soon!",
		StartTime:    start,
		EndTime:      start.Add(time.Minute),
		PopupMinutes: &zero,
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.ID != "event-123" {
		t.Errorf("unexpected id: %s", event.ID)
	}

	reminders, ok := body["reminders"].(map[string]any)
	if !ok {
		t.Fatalf("expected reminders in request body: %v", body)
	}
	if reminders["useDefault"] != false {
		t.Errorf("expected useDefault=false, got %v", reminders["useDefault"])
	}
	overrides, _ := reminders["overrides"].([]any)
	if len(overrides) != 1 {
		t.Fatalf("expected one override, got %v", reminders["overrides"])
	}
	if o := overrides[0].(map[string]any); o["method"] != "popup" || o["minutes"] != float64(0) {
		t.Errorf("unexpected override: %v", o)
	}
}

func TestCreateEventError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{}); err == nil {
		t.Fatalf("expected create event error")
	}
}

func TestDeleteEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		switch r.URL.Path {
		case "/calendar/v3/calendars/primary/events/ok":
			w.WriteHeader(http.StatusNoContent)
		case "/calendar/v3/calendars/primary/events/gone":
			w.WriteHeader(http.StatusGone)
			w.Write([]byte(`{"error": {"code": 410, "message": "Resource has been deleted"}}`))
		case "/calendar/v3/calendars/primary/events/missing":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": {"code": 404, "message": "Not Found"}}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
	ctx := context.Background()

	if err := client.DeleteEvent(ctx, "", "ok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, id := range []string{"gone", "missing"} {
		if err := client.DeleteEvent(ctx, "primary", id); !errors.Is(err, gcalendar.ErrEventNotFound) {
			t.Errorf("DeleteEvent(%s): expected ErrEventNotFound, got %v", id, err)
		}
	}
	err := client.DeleteEvent(ctx, "primary", "boom")
	if err == nil || errors.Is(err, gcalendar.ErrEventNotFound) {
		t.Errorf("expected generic error, got %v", err)
	}
}
