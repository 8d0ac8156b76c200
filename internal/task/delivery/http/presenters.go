package http

import (
	"time"

	"task-hero/internal/model"
	"task-hero/internal/task"
	"task-hero/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title            string `json:"title"`
	Difficulty       string `json:"difficulty"`
	EstimatedMinutes int    `json:"estimated_minutes"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:            r.Title,
		Difficulty:       model.Difficulty(r.Difficulty),
		EstimatedMinutes: r.EstimatedMinutes,
	}
}

type setThemeReq struct {
	Theme string `json:"theme" binding:"required"`
}

// --- Response DTOs ---

type taskResp struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Difficulty       string             `json:"difficulty"`
	XPAwarded        int                `json:"xp_awarded"`
	EstimatedMinutes int                `json:"estimated_minutes"`
	ScheduledStart   response.DateTime  `json:"scheduled_start"`
	ScheduledEnd     response.DateTime  `json:"scheduled_end"`
	HasReminder      bool               `json:"has_reminder"`
	Status           string             `json:"status"`
	CompletedAt      *response.DateTime `json:"completed_at,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:               t.ID,
		Title:            t.Title,
		Difficulty:       string(t.Difficulty),
		XPAwarded:        t.XPAwarded,
		EstimatedMinutes: t.EstimatedMinutes,
		ScheduledStart:   response.DateTime(t.ScheduledStart),
		ScheduledEnd:     response.DateTime(t.ScheduledEnd),
		HasReminder:      t.NotificationRef != "",
		Status:           string(t.Status),
		CompletedAt:      response.NewDateTime(t.CompletedAt),
	}
}

func newTaskListResp(tasks []model.Task) []taskResp {
	out := make([]taskResp, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, newTaskResp(t))
	}
	return out
}

type boardItemResp struct {
	taskResp
	Timing string `json:"timing"`
}

type boardResp struct {
	Tasks          []boardItemResp   `json:"tasks"`
	SuggestedStart response.DateTime `json:"suggested_start"`
}

func newBoardResp(items []task.BoardItem, suggestion time.Time) boardResp {
	out := make([]boardItemResp, 0, len(items))
	for _, it := range items {
		out = append(out, boardItemResp{taskResp: newTaskResp(it.Task), Timing: string(it.Timing)})
	}
	return boardResp{Tasks: out, SuggestedStart: response.DateTime(suggestion)}
}

type progressionResp struct {
	Level         int     `json:"level"`
	XP            int     `json:"xp"`
	Threshold     int     `json:"threshold"`
	Progress      float64 `json:"progress"`
	CurrentStreak int     `json:"current_streak"`
	LongestStreak int     `json:"longest_streak"`
	Avatar        string  `json:"avatar"`
}

func newProgressionResp(s task.Stats) progressionResp {
	return progressionResp{
		Level:         s.Level,
		XP:            s.XP,
		Threshold:     s.Threshold,
		Progress:      s.Progress,
		CurrentStreak: s.CurrentStreak,
		LongestStreak: s.LongestStreak,
		Avatar:        string(s.Avatar),
	}
}

type completeResp struct {
	Task         taskResp `json:"task"`
	XPAwarded    int      `json:"xp_awarded"`
	LeveledUp    bool     `json:"leveled_up"`
	LevelsGained int      `json:"levels_gained"`
	Level        int      `json:"level"`
	XP           int      `json:"xp"`
	Streak       int      `json:"current_streak"`
}

func newCompleteResp(o task.CompleteOutput) completeResp {
	return completeResp{
		Task:         newTaskResp(o.Task),
		XPAwarded:    o.XPAwarded,
		LeveledUp:    o.LeveledUp,
		LevelsGained: o.LevelsGained,
		Level:        o.Progression.Level,
		XP:           o.Progression.XP,
		Streak:       o.Progression.CurrentStreak,
	}
}

type suggestionResp struct {
	SuggestedStart response.DateTime `json:"suggested_start"`
}

type statsResp struct {
	progressionResp
	TotalXPEarned     int `json:"total_xp_earned"`
	CompletedThisWeek int `json:"completed_this_week"`
	CompletedTotal    int `json:"completed_total"`
	PendingTotal      int `json:"pending_total"`
}

func newStatsResp(s task.Stats) statsResp {
	return statsResp{
		progressionResp:   newProgressionResp(s),
		TotalXPEarned:     s.TotalXPEarned,
		CompletedThisWeek: s.CompletedThisWeek,
		CompletedTotal:    s.CompletedTotal,
		PendingTotal:      s.PendingTotal,
	}
}

type themeResp struct {
	Preference string `json:"preference"`
	Effective  string `json:"effective"`
}
