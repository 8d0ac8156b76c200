package http

import (
	"github.com/gin-gonic/gin"

	"task-hero/internal/model"
	"task-hero/pkg/response"
)

// Board godoc
// @Summary     Pending tasks
// @Description Returns pending tasks ordered by start time, each classified as upcoming, in_progress or overdue, plus the suggested start for the next task.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} boardResp
// @Router      /api/v1/tasks [GET]
func (h *handler) Board(c *gin.Context) {
	response.OK(c, newBoardResp(h.uc.Board(), h.uc.Suggestion()))
}

// Create godoc
// @Summary     Create a task
// @Description Schedules a task right after the last outstanding one. Difficulty defaults to easy and the duration to 30 minutes.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Created(c, newTaskResp(output.Task))
}

// Complete godoc
// @Summary     Complete a task
// @Description Moves a pending task into history and awards its XP.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} completeResp
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processCompleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Complete(ctx, id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newCompleteResp(output))
}

// Completed godoc
// @Summary     Completion history
// @Description Returns completed tasks in completion order.
// @Tags        Tasks
// @Produce     json
// @Success     200 {array} taskResp
// @Router      /api/v1/tasks/completed [GET]
func (h *handler) Completed(c *gin.Context) {
	response.OK(c, newTaskListResp(h.uc.Completed()))
}

// Progression godoc
// @Summary     Level, XP and streaks
// @Tags        Progression
// @Produce     json
// @Success     200 {object} progressionResp
// @Router      /api/v1/progression [GET]
func (h *handler) Progression(c *gin.Context) {
	response.OK(c, newProgressionResp(h.uc.Stats()))
}

// Suggestion godoc
// @Summary     Suggested start for the next task
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} suggestionResp
// @Router      /api/v1/suggestion [GET]
func (h *handler) Suggestion(c *gin.Context) {
	response.OK(c, suggestionResp{SuggestedStart: response.DateTime(h.uc.Suggestion())})
}

// Stats godoc
// @Summary     Dashboard statistics
// @Tags        Progression
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/v1/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	response.OK(c, newStatsResp(h.uc.Stats()))
}

// GetTheme godoc
// @Summary     Theme preference
// @Description Returns the stored preference and the scheme it resolves to given the client's scheme.
// @Tags        Theme
// @Produce     json
// @Param       system query string false "Client colour scheme (light or dark)"
// @Success     200 {object} themeResp
// @Router      /api/v1/theme [GET]
func (h *handler) GetTheme(c *gin.Context) {
	system := model.Theme(c.Query("system"))
	response.OK(c, themeResp{
		Preference: string(h.uc.ThemePreference()),
		Effective:  string(h.uc.EffectiveTheme(system)),
	})
}

// SetTheme godoc
// @Summary     Set theme preference
// @Tags        Theme
// @Accept      json
// @Produce     json
// @Param       body body setThemeReq true "light, dark or system"
// @Success     200 {object} themeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/theme [PUT]
func (h *handler) SetTheme(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetThemeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	theme := model.Theme(req.Theme)
	if err := h.uc.SetThemePreference(ctx, theme); err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, themeResp{
		Preference: string(theme),
		Effective:  string(h.uc.EffectiveTheme(model.Theme(c.Query("system")))),
	})
}
