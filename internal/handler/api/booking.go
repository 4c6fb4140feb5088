package api

import (
	"net/http"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Reserve slot
// @Description Book a generated slot. A taken slot answers 409 with alternative slots.
// @Tags bookings
// @Accept json
// @Produce json
// @Param hostId path string true "Host ID"
// @Param eventTypeId path string true "Event type ID"
// @Param request body reqdto.ReserveSlotRequest true "Reservation request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /hosts/{hostId}/event-types/{eventTypeId}/bookings [post]
func (h *BookingHandler) Reserve(c *gin.Context) {
	hostID, ok := pathID(c, "hostId")
	if !ok {
		return
	}
	eventTypeID, ok := pathID(c, "eventTypeId")
	if !ok {
		return
	}
	var req reqdto.ReserveSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Reserve(c.Request.Context(), req.ToInput(hostID, eventTypeID))
	if err != nil {
		var conflict *commands.ConflictError
		if errs.As(err, &conflict) {
			httperr.AbortWithConflict(c, err, resdto.FromSlots(conflict.Alternatives))
			return
		}
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Frees the booked range. Cancelling an already cancelled booking succeeds.
// @Tags bookings
// @Accept json
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancellation reason"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	if err := h.cmds.Cancel(c.Request.Context(), id, req.Reason); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param scope query string false "upcoming (default) or past"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /me/bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	hostID, ok := currentHost(c)
	if !ok {
		return
	}
	var q reqdto.BookingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", "scope must be upcoming or past")
		return
	}
	views, err := h.q.ListForHost(c.Request.Context(), hostID, shared.BookingScope(q.Scope))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
