package events

import (
	"context"
	"log/slog"

	"slotbook/internal/usecase/shared"
)

// LogPublisher is used when no Kafka brokers are configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, evt shared.BookingEvent) error {
	p.logger.Info("booking event",
		"kind", evt.Kind,
		"booking_id", evt.BookingID,
		"host_id", evt.HostID,
		"slot_start", evt.SlotStart,
	)
	return nil
}
