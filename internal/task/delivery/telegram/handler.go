package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"task-hero/internal/model"
	"task-hero/internal/schedule"
	pkgResponse "task-hero/pkg/response"
	pkgTelegram "task-hero/pkg/telegram"
)

const clockFormat = "Mon 15:04"

const helpText = "*Task Hero*\n\n" +
	"/add <title> | easy|medium|hard | minutes  add a task\n" +
	"/tasks  pending tasks\n" +
	"/done <id>  complete a task\n" +
	"/stats  level, XP and streaks\n" +
	"/theme light|dark|system  theme preference\n\n" +
	"Plain text adds an easy task."

var timingIcons = map[schedule.Timing]string{
	schedule.TimingUpcoming:   "⏳",
	schedule.TimingInProgress: "▶️",
	schedule.TimingOverdue:    "⚠️",
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It answers 200 once the message is queued; a single worker processes
// messages in arrival order so Telegram does not retry while reminders are in flight.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	if h.chatID != 0 && msg.Chat.ID != h.chatID {
		h.l.Warnf(ctx, "telegram handler: ignoring message from chat %d", msg.Chat.ID)
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	select {
	case h.updates <- msg:
	case <-ctx.Done():
		h.l.Warnf(ctx, "telegram handler: update dropped, queue full: %v", ctx.Err())
		pkgResponse.TooManyRequests(c)
		return
	}

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// runWorker processes queued messages one at a time.
func (h *handler) runWorker() {
	ctx := context.Background()
	for msg := range h.updates {
		if err := h.processMessage(ctx, msg); err != nil {
			h.l.Errorf(ctx, "telegram handler: processMessage failed: %v", err)
		}
	}
}

// processMessage runs one chat command and replies with its result.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if strings.TrimSpace(msg.Text) == "" {
		return nil
	}

	reply, err := h.dispatch(ctx, msg.Text)
	if err != nil {
		h.l.Debugf(ctx, "telegram handler: command %q failed: %v", msg.Text, err)
		return h.bot.SendMessage(ctx, msg.Chat.ID, errorMessage(err))
	}
	return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, reply, pkgTelegram.ParseModeMarkdown)
}

func (h *handler) dispatch(ctx context.Context, text string) (string, error) {
	cmd, args := splitCommand(text)
	switch cmd {
	case "/start", "/help":
		return helpText, nil
	case "/add", "":
		return h.add(ctx, args)
	case "/tasks":
		return h.tasks(), nil
	case "/done":
		return h.done(ctx, args)
	case "/stats":
		return h.stats(), nil
	case "/theme":
		return h.theme(ctx, args)
	default:
		return "Unknown command.\n\n" + helpText, nil
	}
}

func (h *handler) add(ctx context.Context, args string) (string, error) {
	input, err := parseAddArgs(args)
	if err != nil {
		return "", err
	}

	output, err := h.uc.Create(ctx, input)
	if err != nil {
		return "", err
	}

	t := output.Task
	reply := fmt.Sprintf("📝 Added *%s* (%s, %d min, +%d XP)\n🕒 %s – %s\nid `%s`",
		pkgTelegram.EscapeMarkdown(t.Title), t.Difficulty, t.EstimatedMinutes, t.XPAwarded,
		t.ScheduledStart.In(h.loc).Format(clockFormat), t.ScheduledEnd.In(h.loc).Format("15:04"),
		shortID(t.ID))
	if t.NotificationRef != "" {
		reply += "\n🔔 Reminder set"
	}
	return reply, nil
}

func (h *handler) tasks() string {
	board := h.uc.Board()
	if len(board) == 0 {
		return "🎉 No pending tasks. Next task would start " + h.uc.Suggestion().In(h.loc).Format(clockFormat) + "."
	}

	var b strings.Builder
	b.WriteString("*Pending tasks*\n\n")
	for i, item := range board {
		t := item.Task
		fmt.Fprintf(&b, "%d. %s *%s* (%s)\n    %s – %s  `%s`\n",
			i+1, timingIcons[item.Timing], pkgTelegram.EscapeMarkdown(t.Title), t.Difficulty,
			t.ScheduledStart.In(h.loc).Format(clockFormat), t.ScheduledEnd.In(h.loc).Format("15:04"),
			shortID(t.ID))
	}
	return b.String()
}

func (h *handler) done(ctx context.Context, args string) (string, error) {
	id, err := matchTaskID(h.uc.Pending(), args)
	if err != nil {
		return "", err
	}

	output, err := h.uc.Complete(ctx, id)
	if err != nil {
		return "", err
	}

	reply := fmt.Sprintf("✅ Completed *%s* +%d XP\n🔥 Streak: %d day(s)",
		pkgTelegram.EscapeMarkdown(output.Task.Title), output.XPAwarded, output.Progression.CurrentStreak)
	if output.LeveledUp {
		reply += fmt.Sprintf("\n🎉 Level up! You reached level %d", output.Progression.Level)
	}
	return reply, nil
}

func (h *handler) stats() string {
	s := h.uc.Stats()
	return fmt.Sprintf("*Level %d* (%s)\nXP: %d/%d\n🔥 Streak: %d (best %d)\n✅ This week: %d  Total: %d\n⭐ XP earned: %d\n📋 Pending: %d",
		s.Level, s.Avatar, s.XP, s.Threshold, s.CurrentStreak, s.LongestStreak,
		s.CompletedThisWeek, s.CompletedTotal, s.TotalXPEarned, s.PendingTotal)
}

func (h *handler) theme(ctx context.Context, args string) (string, error) {
	if args == "" {
		return "Theme: *" + string(h.uc.ThemePreference()) + "*", nil
	}

	theme := model.Theme(strings.ToLower(args))
	if err := h.uc.SetThemePreference(ctx, theme); err != nil {
		return "", err
	}
	return "Theme set to *" + string(theme) + "*", nil
}
