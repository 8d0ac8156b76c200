package gamification

import (
	"time"

	"task-hero/internal/model"
	"task-hero/pkg/datemath"
)

// Engine applies XP awards and completion events to a Progression.
// It holds no state of its own.
type Engine struct {
	calendar  datemath.Calendar
	threshold int
}

// New creates an Engine that compares streak days in cal.
func New(cal datemath.Calendar) Engine {
	return Engine{calendar: cal, threshold: model.LevelUpThreshold}
}

// Threshold returns the XP needed per level.
func (e Engine) Threshold() int {
	if e.threshold <= 0 {
		return model.LevelUpThreshold
	}
	return e.threshold
}

// XPResult is the outcome of ApplyXP.
type XPResult struct {
	Progression  model.Progression
	LeveledUp    bool
	LevelsGained int
}

// ApplyXP adds award to state.XP and rolls every full threshold over into a level.
// A single large award can grant several levels at once.
func (e Engine) ApplyXP(state model.Progression, award int) XPResult {
	threshold := e.Threshold()
	total := state.XP + award
	if total < 0 {
		total = 0
	}

	if total < threshold {
		state.XP = total
		return XPResult{Progression: state}
	}

	gained := total / threshold
	state.Level += gained
	state.XP = total % threshold
	return XPResult{Progression: state, LeveledUp: true, LevelsGained: gained}
}

// ApplyStreak updates the streak counters for a completion at completedAt.
// lastCompletedAt is the completion time of the last history entry, nil if none.
func (e Engine) ApplyStreak(state model.Progression, completedAt time.Time, lastCompletedAt *time.Time) model.Progression {
	switch {
	case lastCompletedAt == nil:
		state.CurrentStreak = 1
	case e.calendar.IsSameDay(completedAt, *lastCompletedAt):
		// several completions in one day count once
	case e.calendar.IsConsecutiveDay(*lastCompletedAt, completedAt):
		state.CurrentStreak++
	default:
		state.CurrentStreak = 1
	}

	if state.CurrentStreak > state.LongestStreak {
		state.LongestStreak = state.CurrentStreak
	}
	return state
}

// Progress returns xp / threshold in [0, 1).
func (e Engine) Progress(state model.Progression) float64 {
	return float64(state.XP) / float64(e.Threshold())
}
