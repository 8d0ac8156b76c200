package usecase

import (
	"context"
	"fmt"

	"task-hero/internal/model"
	"task-hero/internal/task"
)

func (uc *implUseCase) SetThemePreference(ctx context.Context, theme model.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("%w: %q", task.ErrInvalidTheme, theme)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.theme = theme
	uc.persist(ctx)
	uc.l.Infof(ctx, "task.usecase.SetThemePreference: theme=%s", theme)
	return nil
}

func (uc *implUseCase) ThemePreference() model.Theme {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.theme
}

func (uc *implUseCase) EffectiveTheme(system model.Theme) model.Theme {
	return uc.ThemePreference().Resolve(system)
}
