package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("task id is required")

// processCreateReq binds the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCompleteReq reads the task id from the URI.
func (h *handler) processCompleteReq(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}

// processSetThemeReq binds the theme request body.
func (h *handler) processSetThemeReq(c *gin.Context) (setThemeReq, error) {
	var req setThemeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
