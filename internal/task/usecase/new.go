package usecase

import (
	"context"
	"sync"
	"time"

	"task-hero/internal/gamification"
	"task-hero/internal/model"
	"task-hero/internal/notifier"
	"task-hero/internal/schedule"
	"task-hero/internal/task"
	"task-hero/internal/task/repository"
	"task-hero/pkg/datemath"
	pkgLog "task-hero/pkg/log"
)

const (
	defaultReminderLead   = time.Minute
	defaultAdapterTimeout = 10 * time.Second
	saveQueueSize         = 64
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.StateRepository
	notifier notifier.Notifier
	engine   gamification.Engine
	calendar datemath.Calendar

	clock          func() time.Time
	reminderLead   time.Duration
	defaultMinutes int
	adapterTimeout time.Duration

	mu          sync.Mutex
	pending     []model.Task
	completed   []model.Task
	progression model.Progression
	theme       model.Theme
	now         time.Time
	suggestion  time.Time
	closed      bool

	saves     chan model.Snapshot
	saverDone chan struct{}
}

// Option customises the use case.
type Option func(*implUseCase)

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) Option {
	return func(uc *implUseCase) { uc.clock = clock }
}

// WithReminderLead sets how long before a task's start its reminder fires.
func WithReminderLead(d time.Duration) Option {
	return func(uc *implUseCase) {
		if d > 0 {
			uc.reminderLead = d
		}
	}
}

// WithDefaultMinutes sets the duration used when none is supplied.
func WithDefaultMinutes(minutes int) Option {
	return func(uc *implUseCase) {
		if minutes > 0 {
			uc.defaultMinutes = minutes
		}
	}
}

// WithAdapterTimeout bounds each reminder and save call.
func WithAdapterTimeout(d time.Duration) Option {
	return func(uc *implUseCase) {
		if d > 0 {
			uc.adapterTimeout = d
		}
	}
}

// New creates a new task UseCase instance with empty state.
// repo and n may be nil, in which case nothing is persisted or reminded.
func New(
	l pkgLog.Logger,
	repo repository.StateRepository,
	n notifier.Notifier,
	cal datemath.Calendar,
	opts ...Option,
) task.UseCase {
	uc := &implUseCase{
		l:              l,
		repo:           repo,
		notifier:       n,
		engine:         gamification.New(cal),
		calendar:       cal,
		clock:          time.Now,
		reminderLead:   defaultReminderLead,
		defaultMinutes: model.DefaultEstimatedMinutes,
		adapterTimeout: defaultAdapterTimeout,
		progression:    model.NewProgression(),
		theme:          model.ThemeSystem,
		saves:          make(chan model.Snapshot, saveQueueSize),
		saverDone:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(uc)
	}

	uc.refresh(uc.clock())
	go uc.runSaver()
	return uc
}

// refresh moves the current-time reference and recomputes the suggestion.
// Callers hold uc.mu.
func (uc *implUseCase) refresh(now time.Time) {
	uc.now = now
	uc.suggestion = schedule.SuggestStart(uc.pending, now)
}

// snapshotLocked copies the state. Callers hold uc.mu.
func (uc *implUseCase) snapshotLocked() model.Snapshot {
	return model.Snapshot{
		Tasks:           model.CloneTasks(uc.pending),
		CompletedTasks:  model.CloneTasks(uc.completed),
		Progression:     uc.progression,
		ThemePreference: uc.theme,
	}
}

// persist queues a save of the current state. Callers hold uc.mu, so queued
// snapshots are in mutation order.
func (uc *implUseCase) persist(ctx context.Context) {
	if uc.repo == nil {
		return
	}
	if uc.closed {
		uc.l.Warnf(ctx, "task.usecase.persist: use case closed, state not saved (non-fatal)")
		return
	}
	uc.saves <- uc.snapshotLocked()
}

func (uc *implUseCase) runSaver() {
	defer close(uc.saverDone)
	for snap := range uc.saves {
		ctx, cancel := context.WithTimeout(context.Background(), uc.adapterTimeout)
		if err := uc.repo.Save(ctx, snap); err != nil {
			uc.l.Warnf(ctx, "task.usecase.runSaver: save failed (non-fatal): %v", err)
		}
		cancel()
	}
}

func (uc *implUseCase) Close() {
	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		<-uc.saverDone
		return
	}
	uc.closed = true
	close(uc.saves)
	uc.mu.Unlock()

	<-uc.saverDone
}
