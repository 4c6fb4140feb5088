package bootstrap

import (
	"context"
	"log/slog"

	"slotbook/internal/handler/middleware"
	"slotbook/internal/infra/events"
	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var IntegrationModule = fx.Module("integrations",
	fx.Provide(
		NewEventPublisher,
		NewRateLimiter,
	),
)

// NewEventPublisher writes to Kafka when brokers are configured and to the
// log otherwise.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.EventPublisher {
	if len(cfg.Kafka.BrokerList()) == 0 {
		logger.Info("kafka disabled, booking events go to the log")
		return events.NewLogPublisher(logger)
	}
	p := events.NewKafkaPublisher(cfg.Kafka, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	logger.Info("kafka publisher enabled", "brokers", cfg.Kafka.Brokers, "topic_prefix", cfg.Kafka.TopicPrefix)
	return p
}

// NewRateLimiter returns nil when REDIS_ADDR is empty.
func NewRateLimiter(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *middleware.RateLimiter {
	if cfg.Redis.Addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	logger.Info("rate limiting enabled (redis)", "limit", cfg.Redis.RateLimit, "window", cfg.Redis.RateLimitWindow, "redis_addr", cfg.Redis.Addr)
	return middleware.NewRateLimiter(rdb, cfg.Redis, "slotbook:rl", logger)
}
