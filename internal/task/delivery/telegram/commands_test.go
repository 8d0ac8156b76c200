package telegram

import (
	"errors"
	"testing"

	"task-hero/internal/model"
	"task-hero/internal/task"
)

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		text     string
		wantCmd  string
		wantArgs string
	}{
		{"/add Buy milk", "/add", "Buy milk"},
		{"/TASKS@HeroBot", "/tasks", ""},
		{"  /done   abc  ", "/done", "abc"},
		{"just text", "", "just text"},
	}
	for _, tc := range tests {
		cmd, args := splitCommand(tc.text)
		if cmd != tc.wantCmd || args != tc.wantArgs {
			t.Errorf("splitCommand(%q) = %q, %q; want %q, %q", tc.text, cmd, args, tc.wantCmd, tc.wantArgs)
		}
	}
}

func TestParseAddArgs(t *testing.T) {
	tests := []struct {
		args    string
		want    task.CreateInput
		wantErr error
	}{
		{"Buy milk", task.CreateInput{Title: "Buy milk"}, nil},
		{"Report | HARD", task.CreateInput{Title: "Report", Difficulty: model.DifficultyHard}, nil},
		{"Report | medium | 45m", task.CreateInput{Title: "Report", Difficulty: model.DifficultyMedium, EstimatedMinutes: 45}, nil},
		{"Report | | 20", task.CreateInput{Title: "Report", EstimatedMinutes: 20}, nil},
		{"", task.CreateInput{}, errUsageAdd},
		{"a | b | c | d", task.CreateInput{}, errUsageAdd},
		{"Report | easy | x", task.CreateInput{}, errBadMinutes},
	}
	for _, tc := range tests {
		got, err := parseAddArgs(tc.args)
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("parseAddArgs(%q) error = %v, want %v", tc.args, err, tc.wantErr)
			continue
		}
		if tc.wantErr == nil && got != tc.want {
			t.Errorf("parseAddArgs(%q) = %+v, want %+v", tc.args, got, tc.want)
		}
	}
}

func TestMatchTaskID(t *testing.T) {
	pending := []model.Task{{ID: "abc123"}, {ID: "abd456"}, {ID: "ab"}}

	if id, err := matchTaskID(pending, "abc"); err != nil || id != "abc123" {
		t.Errorf("expected abc123, got %q, %v", id, err)
	}
	if id, err := matchTaskID(pending, "ab"); err != nil || id != "ab" {
		t.Errorf("exact match must win, got %q, %v", id, err)
	}
	if _, err := matchTaskID(pending, "a"); !errors.Is(err, errAmbiguousID) {
		t.Errorf("expected ambiguity, got %v", err)
	}
	if _, err := matchTaskID(pending, "zzz"); !task.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
	if _, err := matchTaskID(pending, " "); !errors.Is(err, errUsageDone) {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestErrorMessage(t *testing.T) {
	if got := errorMessage(errors.New("boom")); got != genericErrorReply {
		t.Errorf("internal errors must not leak, got %q", got)
	}
	if got := errorMessage(task.ErrEmptyTitle); got != "⚠️ "+task.ErrEmptyTitle.Error() {
		t.Errorf("unexpected validation message %q", got)
	}
}
