package api

import (
	"net/http"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	q queries.SlotQueries
}

func NewSlotHandler(q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{q: q}
}

// @Summary List bookable slots
// @Description Free slots of an event type within [from, to), in UTC and ascending order
// @Tags slots
// @Produce json
// @Param hostId path string true "Host ID"
// @Param eventTypeId path string true "Event type ID"
// @Param from query string true "Window start (RFC3339)"
// @Param to query string true "Window end (RFC3339)"
// @Success 200 {object} resdto.SlotListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /hosts/{hostId}/event-types/{eventTypeId}/slots [get]
func (h *SlotHandler) List(c *gin.Context) {
	hostID, ok := pathID(c, "hostId")
	if !ok {
		return
	}
	eventTypeID, ok := pathID(c, "eventTypeId")
	if !ok {
		return
	}
	var q reqdto.ListSlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", "from and to must be RFC3339 timestamps")
		return
	}

	slots, err := h.q.ListSlots(c.Request.Context(), hostID, eventTypeID, q.From, q.To)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(slots))
}
