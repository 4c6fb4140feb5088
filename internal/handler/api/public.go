package api

import (
	"net/http"

	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the booking pages a host shares as /{username}/{slug}.
type PublicHandler struct {
	q queries.PublicQueries
}

func NewPublicHandler(q queries.PublicQueries) *PublicHandler {
	return &PublicHandler{q: q}
}

// @Summary Get a host's public page
// @Description Profile and active event types, without the host's email
// @Tags public
// @Produce json
// @Param username path string true "Host username"
// @Success 200 {object} resdto.PublicHostResponse
// @Failure 404 {object} httperr.Response
// @Router /u/{username} [get]
func (h *PublicHandler) Host(c *gin.Context) {
	view, err := h.q.HostPage(c.Request.Context(), c.Param("username"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPublicHostView(view))
}

// @Summary Get a public event type
// @Description Inactive event types are reported as not found
// @Tags public
// @Produce json
// @Param username path string true "Host username"
// @Param slug path string true "Event type slug"
// @Success 200 {object} resdto.PublicEventTypePageResponse
// @Failure 404 {object} httperr.Response
// @Router /u/{username}/{slug} [get]
func (h *PublicHandler) EventType(c *gin.Context) {
	view, err := h.q.EventTypePage(c.Request.Context(), c.Param("username"), c.Param("slug"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPublicEventTypePageView(view))
}
