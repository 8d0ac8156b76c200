package telegram_test

import (
	"testing"

	"task-hero/pkg/telegram"
)

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain title", "plain title"},
		{"fix_db_migration *urgent", "fix\\_db\\_migration \\*urgent"},
		{"see [docs] `cmd`", "see \\[docs] \\`cmd\\`"},
	}
	for _, tc := range tests {
		if got := telegram.EscapeMarkdown(tc.in); got != tc.want {
			t.Errorf("EscapeMarkdown(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
