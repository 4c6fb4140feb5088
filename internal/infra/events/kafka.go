// Package events publishes committed booking events to downstream
// collaborators such as notification and video-link workers.
package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes one message per event to "<prefix><kind>", keyed by
// host id so a host's events stay ordered within a partition.
type KafkaPublisher struct {
	writer messageWriter
	prefix string
	logger *slog.Logger
}

func NewKafkaPublisher(cfg config.KafkaConfig, logger *slog.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.BrokerList()...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		WriteTimeout:           cfg.WriteTimeout,
	}
	return newKafkaPublisher(w, cfg.TopicPrefix, logger)
}

func newKafkaPublisher(w messageWriter, prefix string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: w, prefix: prefix, logger: logger}
}

func (p *KafkaPublisher) Topic(kind shared.EventKind) string {
	return p.prefix + string(kind)
}

func (p *KafkaPublisher) Publish(ctx context.Context, evt shared.BookingEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return errs.Wrap(err, "marshal booking event")
	}
	headers := []kafka.Header{
		{Key: "event_id", Value: []byte(evt.ID.String())},
		{Key: "event_type", Value: []byte(evt.Kind)},
	}
	msg := kafka.Message{
		Topic:   p.Topic(evt.Kind),
		Key:     []byte(evt.HostID.String()),
		Value:   payload,
		Headers: InjectTraceHeaders(ctx, headers),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrapf(err, "write %s", msg.Topic)
	}
	p.logger.Debug("booking event published", "topic", msg.Topic, "booking_id", evt.BookingID)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// InjectTraceHeaders appends W3C trace context headers to Kafka headers.
func InjectTraceHeaders(ctx context.Context, headers []kafka.Header) []kafka.Header {
	carrier := &headerCarrier{headers: headers}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	return carrier.headers
}

// ExtractTraceContext returns a context carrying the trace found in msg.
func ExtractTraceContext(ctx context.Context, msg kafka.Message) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, &headerCarrier{headers: msg.Headers})
}

type headerCarrier struct {
	headers []kafka.Header
}

func (c *headerCarrier) Get(key string) string {
	for _, h := range c.headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c.headers))
	for _, h := range c.headers {
		keys = append(keys, h.Key)
	}
	return keys
}

func (c *headerCarrier) Set(key, value string) {
	for i := range c.headers {
		if c.headers[i].Key == key {
			c.headers[i].Value = []byte(value)
			return
		}
	}
	c.headers = append(c.headers, kafka.Header{Key: key, Value: []byte(value)})
}

var _ propagation.TextMapCarrier = (*headerCarrier)(nil)
