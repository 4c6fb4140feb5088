package components

import (
	"log/slog"

	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCoordinator,
		commands.NewHostCommands,
		commands.NewEventTypeCommands,
		func(
			hosts shared.HostStore,
			availability shared.AvailabilityStore,
			busy shared.BusyTimeStore,
			cfg config.BookingConfig,
			logger *slog.Logger,
		) commands.AvailabilityCommands {
			return commands.NewAvailabilityCommands(hosts, availability, busy, cfg.MaxRangeDays, logger)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		fx.Annotate(
			queries.NewSlotGenerator,
			fx.As(fx.Self()),
			fx.As(new(queries.SlotQueries)),
		),
		queries.NewBookingQueries,
		queries.NewHostQueries,
		queries.NewPublicQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
