package components

import (
	"slotbook/internal/handler"
	"slotbook/internal/handler/api"
	"slotbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotHandler,
		api.NewBookingHandler,
		api.NewHostHandler,
		api.NewAvailabilityHandler,
		api.NewEventTypeHandler,
		api.NewPublicHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Slot         *api.SlotHandler
	Booking      *api.BookingHandler
	Host         *api.HostHandler
	Availability *api.AvailabilityHandler
	EventType    *api.EventTypeHandler
	Public       *api.PublicHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Slot:         p.Slot,
		Booking:      p.Booking,
		Host:         p.Host,
		Availability: p.Availability,
		EventType:    p.EventType,
		Public:       p.Public,
	}
}
