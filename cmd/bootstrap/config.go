package bootstrap

import (
	"slotbook/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies a configuration loaded before the graph is built, so
// the store driver can pick which persistence module to install.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
		fx.Provide(
			func(cfg config.Config) config.BookingConfig { return cfg.Booking },
		),
	)
}
