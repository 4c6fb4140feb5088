package api

import (
	"net/http"

	"slotbook/internal/handler/httperr"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoHost = errs.New("authenticated host missing from context")

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func currentHost(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetHostID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoHost, "Unauthorized", nil)
	}
	return id, ok
}
