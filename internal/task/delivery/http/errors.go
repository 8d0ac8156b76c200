package http

import (
	"github.com/gin-gonic/gin"

	"task-hero/internal/task"
	"task-hero/pkg/response"
)

// mapError writes the response for a use-case error:
// validation → 400, not found → 404, anything else → 500.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case task.IsValidation(err):
		response.Error(c, err, nil)
	case task.IsNotFound(err):
		response.NotFound(c, err)
	default:
		h.l.Errorf(c.Request.Context(), "task.delivery.http: %v", err)
		response.InternalError(c, err)
	}
}
