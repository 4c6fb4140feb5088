//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"slotbook/internal/handler/dto/request"
	"slotbook/internal/handler/dto/response"
	"slotbook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// RegisterHost signs up a host through the API and returns its bearer token.
func RegisterHost(t *testing.T, router *gin.Engine, username, timezone string) (string, uuid.UUID) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/hosts", request.RegisterHostRequest{
		Username: username,
		Name:     "Host " + username,
		Email:    username + "@example.com",
		Timezone: timezone,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res response.RegisterHostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken, res.Host.ID
}
