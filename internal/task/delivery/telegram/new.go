package telegram

import (
	"time"

	"github.com/gin-gonic/gin"

	"task-hero/internal/task"
	pkgLog "task-hero/pkg/log"
	pkgTelegram "task-hero/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l      pkgLog.Logger
	uc     task.UseCase
	bot    *pkgTelegram.Bot
	chatID int64
	loc    *time.Location

	// updates feeds the single worker, so messages reach the engine in arrival order.
	updates chan *pkgTelegram.Message
}

const updateQueueSize = 64

// New creates a new Telegram delivery handler that only serves chatID.
// Times in replies are shown in loc.
func New(l pkgLog.Logger, uc task.UseCase, bot *pkgTelegram.Bot, chatID int64, loc *time.Location) Handler {
	if loc == nil {
		loc = time.Local
	}
	h := &handler{
		l:       l,
		uc:      uc,
		bot:     bot,
		chatID:  chatID,
		loc:     loc,
		updates: make(chan *pkgTelegram.Message, updateQueueSize),
	}
	go h.runWorker()
	return h
}
