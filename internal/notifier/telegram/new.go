package telegram

import (
	"context"
	"sync"
	"time"

	pkgLog "task-hero/pkg/log"
)

// Sender delivers a chat message; *pkgTelegram.Bot satisfies it.
type Sender interface {
	SendMessageWithMode(ctx context.Context, chatID int64, text, parseMode string) error
}

type implNotifier struct {
	l      pkgLog.Logger
	sender Sender
	chatID int64
	now    func() time.Time

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a Notifier that holds reminders in process and delivers them
// to chatID through sender when they fire. Reminders do not survive a restart.
func New(l pkgLog.Logger, sender Sender, chatID int64) *implNotifier {
	return &implNotifier{
		l:      l,
		sender: sender,
		chatID: chatID,
		now:    time.Now,
		timers: make(map[string]*time.Timer),
	}
}
