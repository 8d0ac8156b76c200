package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"task-hero/internal/notifier"
	pkgTelegram "task-hero/pkg/telegram"
)

const sendTimeout = 15 * time.Second

// Schedule arms a timer that sends the reminder at triggerAt.
func (n *implNotifier) Schedule(ctx context.Context, title, body string, triggerAt time.Time) (string, error) {
	if n.sender == nil || n.chatID == 0 {
		return "", fmt.Errorf("%w: telegram chat is not configured", notifier.ErrScheduling)
	}

	delay := triggerAt.Sub(n.now())
	if delay < 0 {
		return "", fmt.Errorf("%w: trigger time %s is in the past", notifier.ErrScheduling, triggerAt.Format(time.RFC3339))
	}

	handle := uuid.NewString()
	text := fmt.Sprintf("*%s*\n%s", pkgTelegram.EscapeMarkdown(title), pkgTelegram.EscapeMarkdown(body))

	n.mu.Lock()
	defer n.mu.Unlock()
	n.timers[handle] = time.AfterFunc(delay, func() { n.fire(handle, text) })
	return handle, nil
}

// Cancel stops a pending reminder.
func (n *implNotifier) Cancel(ctx context.Context, handle string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	timer, ok := n.timers[handle]
	if !ok {
		return fmt.Errorf("%w: %s", notifier.ErrNotFound, handle)
	}
	delete(n.timers, handle)
	if !timer.Stop() {
		return fmt.Errorf("%w: %s already fired", notifier.ErrNotFound, handle)
	}
	return nil
}

// Pending returns the number of armed reminders.
func (n *implNotifier) Pending() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.timers)
}

// Stop disarms every pending reminder.
func (n *implNotifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for handle, timer := range n.timers {
		timer.Stop()
		delete(n.timers, handle)
	}
}

func (n *implNotifier) fire(handle, text string) {
	n.mu.Lock()
	_, armed := n.timers[handle]
	delete(n.timers, handle)
	n.mu.Unlock()
	if !armed {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	if err := n.sender.SendMessageWithMode(ctx, n.chatID, text, pkgTelegram.ParseModeMarkdown); err != nil {
		n.l.Warnf(ctx, "telegram notifier: reminder %s not delivered (non-fatal): %v", handle, err)
	}
}
