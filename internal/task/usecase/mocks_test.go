package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"task-hero/internal/model"
	"task-hero/internal/notifier"
)

type mockRepo struct {
	mu      sync.Mutex
	saved   []model.Snapshot
	stored  *model.Snapshot
	saveErr error
	loadErr error
}

func (m *mockRepo) Load(ctx context.Context) (model.Snapshot, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return model.Snapshot{}, false, m.loadErr
	}
	if m.stored == nil {
		return model.Snapshot{}, false, nil
	}
	return *m.stored, true, nil
}

func (m *mockRepo) Save(ctx context.Context, snap model.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, snap)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.stored = &snap
	return nil
}

func (m *mockRepo) Saves() []model.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Snapshot(nil), m.saved...)
}

type scheduledReminder struct {
	Title     string
	Body      string
	TriggerAt time.Time
}

type mockNotifier struct {
	mu          sync.Mutex
	scheduled   []scheduledReminder
	cancelled   []string
	scheduleErr error
	cancelErr   error
}

func (m *mockNotifier) Schedule(ctx context.Context, title, body string, triggerAt time.Time) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.scheduleErr != nil {
		return "", m.scheduleErr
	}
	m.scheduled = append(m.scheduled, scheduledReminder{Title: title, Body: body, TriggerAt: triggerAt})
	return fmt.Sprintf("reminder-%d", len(m.scheduled)), nil
}

func (m *mockNotifier) Cancel(ctx context.Context, handle string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancelErr != nil {
		return m.cancelErr
	}
	m.cancelled = append(m.cancelled, handle)
	return nil
}

var errBoom = errors.New("boom")

var _ notifier.Notifier = (*mockNotifier)(nil)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
