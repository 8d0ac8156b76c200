package usecase

import (
	"context"
	"time"
)

func (uc *implUseCase) Tick(now time.Time) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.refresh(now)
}

func (uc *implUseCase) RunClock(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	uc.l.Infof(ctx, "task.usecase.RunClock: ticking every %s", interval)
	for {
		select {
		case <-ctx.Done():
			uc.l.Infof(ctx, "task.usecase.RunClock: stopped")
			return
		case <-ticker.C:
			uc.Tick(uc.clock())
		}
	}
}
