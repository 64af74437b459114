package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"prosync/pkg/response"
)

// Create godoc
// @Summary     Create a new task
// @Description Creates a task and inserts it at the front of the collection.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} taskDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, taskDetailResp{Task: newTaskResp(output.Task)})
}

// List godoc
// @Summary     List tasks
// @Description Returns tasks filtered by category and sorted by the requested key.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       category query string false "Category filter (All/Personal/Business/Bills/Taxes/Custom)"
// @Param       sort_by  query string false "Sort key (due_date/priority/created_at)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by its ID.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, taskDetailResp{Task: newTaskResp(output.Task)})
}

// Update godoc
// @Summary     Update a task
// @Description Partial update. Omitted fields are left untouched; id and created_at never change.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, taskDetailResp{Task: newTaskResp(output.Task)})
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes a task by ID. Deleting an unknown ID is a no-op.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Toggle godoc
// @Summary     Toggle task completion
// @Description Flips the completion flag. Toggling an unknown ID is a no-op.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.ToggleComplete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.ToggleComplete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Summary godoc
// @Summary     Dashboard summary counters
// @Description Total, completed, overdue and upcoming counts relative to the current time.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Success     200 {object} summaryResp
// @Router      /api/v1/tasks/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Summary(ctx, time.Now())
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSummaryResp(output))
}

// Groups godoc
// @Summary     Per-category and per-priority tallies
// @Description Counts of incomplete tasks for the dashboard cards.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Success     200 {object} groupsResp
// @Router      /api/v1/tasks/groups [GET]
func (h *handler) Groups(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Groups(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Groups: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGroupsResp(output))
}

// Calendar godoc
// @Summary     Calendar month buckets
// @Description Tasks bucketed by the day of the displayed month their due date falls on.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       year  query int true "Displayed year"
// @Param       month query int true "Displayed month (1-12)"
// @Success     200 {object} calendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/calendar [GET]
func (h *handler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCalendarReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Calendar(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Calendar: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCalendarResp(output))
}
