package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"slotbook/internal/handler/httperr"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthorized = errs.New("unauthorized")

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxHostIDKey = "host_id"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts a bearer token whose subject is a host id.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Access token required", nil)
			return
		}

		hostID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxHostIDKey, hostID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func SetHostID(c *gin.Context, id uuid.UUID) {
	c.Set(ctxHostIDKey, id)
}

func GetHostID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxHostIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
