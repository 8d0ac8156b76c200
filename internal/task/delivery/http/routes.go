package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.Board)
		tasks.POST("", h.Create)
		tasks.GET("/completed", h.Completed)
		tasks.POST("/:id/complete", h.Complete)
	}

	rg.GET("/progression", h.Progression)
	rg.GET("/suggestion", h.Suggestion)
	rg.GET("/stats", h.Stats)
	rg.GET("/theme", h.GetTheme)
	rg.PUT("/theme", h.SetTheme)
}
