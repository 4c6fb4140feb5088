package api

import (
	"net/http"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EventTypeHandler struct {
	cmds commands.EventTypeCommands
	q    queries.HostQueries
}

func NewEventTypeHandler(cmds commands.EventTypeCommands, q queries.HostQueries) *EventTypeHandler {
	return &EventTypeHandler{cmds: cmds, q: q}
}

// @Summary Create event type
// @Tags event-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEventTypeRequest true "Event type"
// @Success 201 {object} resdto.EventTypeResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /me/event-types [post]
func (h *EventTypeHandler) Create(c *gin.Context) {
	hostID, ok := currentHost(c)
	if !ok {
		return
	}
	var req reqdto.CreateEventTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), hostID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/me/event-types/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromEventTypeView(view))
}

// @Summary List my event types
// @Tags event-types
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EventTypeResponse
// @Router /me/event-types [get]
func (h *EventTypeHandler) List(c *gin.Context) {
	hostID, ok := currentHost(c)
	if !ok {
		return
	}
	views, err := h.q.EventTypes(c.Request.Context(), hostID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventTypeViews(views))
}

// @Summary Update event type
// @Description Partial update; deactivating hides the event type from slot queries
// @Tags event-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event type ID"
// @Param request body reqdto.UpdateEventTypeRequest true "Fields to change"
// @Success 200 {object} resdto.EventTypeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /me/event-types/{id} [patch]
func (h *EventTypeHandler) Update(c *gin.Context) {
	hostID, ok := currentHost(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateEventTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), hostID, id, req.ToPatch())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventTypeView(view))
}

// @Summary Delete event type
// @Tags event-types
// @Security BearerAuth
// @Param id path string true "Event type ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /me/event-types/{id} [delete]
func (h *EventTypeHandler) Delete(c *gin.Context) {
	hostID, ok := currentHost(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), hostID, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
