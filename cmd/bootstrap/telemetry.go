package bootstrap

import (
	"context"
	"log/slog"

	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(SetupTelemetry),
)

func SetupTelemetry(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	shutdown, err := telemetry.Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		return err
	}
	if cfg.Telemetry.Enabled {
		logger.Info("tracing enabled", "endpoint", cfg.Telemetry.OTLPEndpoint, "ratio", cfg.Telemetry.SampleRatio)
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
