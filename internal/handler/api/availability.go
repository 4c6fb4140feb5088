package api

import (
	"net/http"

	"slotbook/internal/domain/availability"
	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	cmds commands.AvailabilityCommands
	q    queries.HostQueries
}

func NewAvailabilityHandler(cmds commands.AvailabilityCommands, q queries.HostQueries) *AvailabilityHandler {
	return &AvailabilityHandler{cmds: cmds, q: q}
}

// @Summary Get weekly availability
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.WeeklyAvailabilityResponse
// @Router /me/availability/weekly [get]
func (h *AvailabilityHandler) GetWeekly(c *gin.Context) {
	hostID, ok := currentHost(c)
	if !ok {
		return
	}
	views, err := h.q.WeeklyRules(c.Request.Context(), hostID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWeeklyRuleViews(views))
}

// @Summary Replace weekly availability
// @Description Days left out become unavailable. Times are wall-clock in the host's timezone.
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.WeeklyAvailabilityRequest true "Weekly rules"
// @Success 200 {object} resdto.WeeklyAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /me/availability/weekly [put]
func (h *AvailabilityHandler) PutWeekly(c *gin.Context) {
	hostID, ok := currentHost(c)
	if !ok {
		return
	}
	var req reqdto.WeeklyAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	views, err := h.cmds.ReplaceWeeklyRules(c.Request.Context(), hostID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWeeklyRuleViews(views))
}

// @Summary List date overrides
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date (YYYY-MM-DD), inclusive"
// @Success 200 {object} resdto.OverrideListResponse
// @Failure 400 {object} httperr.Response
// @Router /me/availability/overrides [get]
func (h *AvailabilityHandler) ListOverrides(c *gin.Context) {
	hostID, ok := currentHost(c)
	if !ok {
		return
	}
	var q reqdto.OverridesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	from, err := availability.ParseDate(q.From)
	if err != nil {
		httperr.Abort(c, errs.Validation(err))
		return
	}
	to, err := availability.ParseDate(q.To)
	if err != nil {
		httperr.Abort(c, errs.Validation(err))
		return
	}
	views, err := h.q.Overrides(c.Request.Context(), hostID, from, to)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOverrideViews(views))
}

// @Summary Put date overrides
// @Description Applies one override to every date from startDate to endDate
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OverrideRequest true "Override"
// @Success 200 {object} resdto.OverrideListResponse
// @Failure 400 {object} httperr.Response
// @Router /me/availability/overrides [put]
func (h *AvailabilityHandler) PutOverrides(c *gin.Context) {
	hostID, ok := currentHost(c)
	if !ok {
		return
	}
	var req reqdto.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	views, err := h.cmds.PutOverrides(c.Request.Context(), hostID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOverrideViews(views))
}

// @Summary Delete date override
// @Tags availability
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /me/availability/overrides/{date} [delete]
func (h *AvailabilityHandler) DeleteOverride(c *gin.Context) {
	hostID, ok := currentHost(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteOverride(c.Request.Context(), hostID, c.Param("date")); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Sync busy time
// @Description Calendar sync feed: replaces the busy blocks overlapping [from, to)
// @Tags availability
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.BusySyncRequest true "Busy blocks"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /me/busy [put]
func (h *AvailabilityHandler) SyncBusy(c *gin.Context) {
	hostID, ok := currentHost(c)
	if !ok {
		return
	}
	var req reqdto.BusySyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	window, blocks, err := req.Ranges()
	if err != nil {
		httperr.Abort(c, errs.Validation(err))
		return
	}
	if err := h.cmds.ReplaceBusy(c.Request.Context(), hostID, window, blocks); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
