package http

import (
	"github.com/gin-gonic/gin"

	"task-hero/internal/task"
	"task-hero/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Board(c *gin.Context)
	Create(c *gin.Context)
	Complete(c *gin.Context)
	Completed(c *gin.Context)
	Progression(c *gin.Context)
	Suggestion(c *gin.Context)
	Stats(c *gin.Context)
	GetTheme(c *gin.Context)
	SetTheme(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
