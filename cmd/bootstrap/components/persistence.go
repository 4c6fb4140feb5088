package components

import (
	"slotbook/internal/infra/memory"
	"slotbook/internal/infra/postgres"
	"slotbook/internal/infra/postgres/pgq"
	"slotbook/internal/infra/uow"
	"slotbook/internal/usecase/shared"

	"go.uber.org/fx"
)

var PostgresPersistenceModule = fx.Module("persistence/postgres",
	fx.Provide(
		uow.NewPostgresUoW,
		pgq.New,
		fx.Annotate(
			postgres.NewHostStore,
			fx.As(new(shared.HostStore)),
		),
		fx.Annotate(
			postgres.NewAvailabilityStore,
			fx.As(new(shared.AvailabilityStore)),
		),
		fx.Annotate(
			postgres.NewEventTypeStore,
			fx.As(new(shared.EventTypeStore)),
		),
		fx.Annotate(
			postgres.NewBusyTimeStore,
			fx.As(new(shared.BusyTimeStore)),
		),
		fx.Annotate(
			postgres.NewLedger,
			fx.As(new(shared.ReservationLedger)),
		),
	),
)

// MemoryPersistenceModule keeps everything in process; state is lost on restart.
var MemoryPersistenceModule = fx.Module("persistence/memory",
	fx.Provide(
		fx.Annotate(
			memory.NewHostStore,
			fx.As(new(shared.HostStore)),
		),
		fx.Annotate(
			memory.NewAvailabilityStore,
			fx.As(new(shared.AvailabilityStore)),
		),
		fx.Annotate(
			memory.NewEventTypeStore,
			fx.As(new(shared.EventTypeStore)),
		),
		fx.Annotate(
			memory.NewBusyTimeStore,
			fx.As(new(shared.BusyTimeStore)),
		),
		fx.Annotate(
			memory.NewLedger,
			fx.As(new(shared.ReservationLedger)),
		),
	),
)
