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

type HostHandler struct {
	cmds commands.HostCommands
	q    queries.HostQueries
}

func NewHostHandler(cmds commands.HostCommands, q queries.HostQueries) *HostHandler {
	return &HostHandler{cmds: cmds, q: q}
}

// @Summary Register host
// @Description Create a host and issue its bearer token
// @Tags hosts
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterHostRequest true "Host"
// @Success 201 {object} resdto.RegisterHostResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /hosts [post]
func (h *HostHandler) Register(c *gin.Context) {
	var req reqdto.RegisterHostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.RegisterHostResponse{
		Host:        resdto.FromHostView(result.Host),
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
	})
}

// @Summary Get my profile
// @Tags hosts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.HostResponse
// @Failure 401 {object} httperr.Response
// @Router /me [get]
func (h *HostHandler) Me(c *gin.Context) {
	hostID, ok := currentHost(c)
	if !ok {
		return
	}
	view, err := h.q.Profile(c.Request.Context(), hostID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHostView(view))
}

// @Summary Update my profile
// @Tags hosts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Profile"
// @Success 200 {object} resdto.HostResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /me [put]
func (h *HostHandler) UpdateMe(c *gin.Context) {
	hostID, ok := currentHost(c)
	if !ok {
		return
	}
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UpdateProfile(c.Request.Context(), hostID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHostView(view))
}
