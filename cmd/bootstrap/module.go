package bootstrap

import (
	"slotbook/cmd/bootstrap/components"
	"slotbook/internal/pkg/config"

	"go.uber.org/fx"
)

type Options struct {
	// MigrateOnStart applies the schema when the postgres driver is used.
	MigrateOnStart bool
}

func Module(cfg config.Config, opts Options) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		TelemetryModule,
		JWTModule,
		IntegrationModule,
		persistence(cfg, opts),
		components.UseCaseModule,
		components.HandlerModule,
		ServerModule,
	)
}

func persistence(cfg config.Config, opts Options) fx.Option {
	if cfg.Store.Driver == config.StoreDriverMemory {
		return components.MemoryPersistenceModule
	}
	options := []fx.Option{DBModule, components.PostgresPersistenceModule}
	if opts.MigrateOnStart {
		options = append(options, fx.Invoke(MigrateOnStart))
	}
	return fx.Options(options...)
}
