//go:build unit

package telemetry

import (
	"context"
	"testing"

	"slotbook/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetupDisabledInstallsPropagator(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.TelemetryConfig{Enabled: false})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))

	fields := otel.GetTextMapPropagator().Fields()
	assert.Contains(t, fields, "traceparent")
	assert.Contains(t, fields, "baggage")
}

func TestClampRatio(t *testing.T) {
	assert.Equal(t, 0.0, clampRatio(-1))
	assert.Equal(t, 1.0, clampRatio(2))
	assert.Equal(t, 0.25, clampRatio(0.25))
}
