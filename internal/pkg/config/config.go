package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets), security settings
// - default: Values common across all environments (timeouts, limits), standard settings
// - optional integrations (Redis, Kafka, tracing) are disabled when left empty
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Booking   BookingConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"720h"`
}

type BookingConfig struct {
	ReservationTimeout       time.Duration `envconfig:"BOOKING_RESERVATION_TIMEOUT" default:"2s"`
	MaxRangeDays             int           `envconfig:"BOOKING_MAX_RANGE_DAYS" default:"62"`
	AlternativeLimit         int           `envconfig:"BOOKING_ALTERNATIVE_LIMIT" default:"10"`
	AlternativeLookaheadDays int           `envconfig:"BOOKING_ALTERNATIVE_LOOKAHEAD_DAYS" default:"7"`
	HistoryLimit             int           `envconfig:"BOOKING_HISTORY_LIMIT" default:"100"`
}

type RedisConfig struct {
	Addr            string        `envconfig:"REDIS_ADDR"`
	Password        string        `envconfig:"REDIS_PASSWORD"`
	DB              int           `envconfig:"REDIS_DB" default:"0"`
	RateLimit       int           `envconfig:"BOOKING_RATE_LIMIT" default:"30"`
	RateLimitWindow time.Duration `envconfig:"BOOKING_RATE_LIMIT_WINDOW" default:"1m"`
	FailOpen        bool          `envconfig:"BOOKING_RATE_LIMIT_FAIL_OPEN" default:"true"`
}

type KafkaConfig struct {
	Brokers      string        `envconfig:"KAFKA_BROKERS"`
	TopicPrefix  string        `envconfig:"KAFKA_TOPIC_PREFIX" default:""`
	WriteTimeout time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"5s"`
}

type TelemetryConfig struct {
	Enabled      bool    `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName  string  `envconfig:"OTEL_SERVICE_NAME" default:"slotbook"`
	OTLPEndpoint string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	SampleRatio  float64 `envconfig:"OTEL_SAMPLING_RATIO" default:"1"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *KafkaConfig) BrokerList() []string {
	var out []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Store.Driver != StoreDriverMemory && cfg.Store.Driver != StoreDriverPostgres {
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
	if cfg.Store.Driver == StoreDriverPostgres && (cfg.DB.User == "" || cfg.DB.DBName == "") {
		return Config{}, fmt.Errorf("DB_USER and DB_NAME are required for the postgres store")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver: StoreDriverMemory,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Booking: BookingConfig{
			ReservationTimeout:       2 * time.Second,
			MaxRangeDays:             62,
			AlternativeLimit:         10,
			AlternativeLookaheadDays: 7,
			HistoryLimit:             100,
		},
		Redis: RedisConfig{
			RateLimit:       30,
			RateLimitWindow: time.Minute,
			FailOpen:        true,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "slotbook-test",
			SampleRatio: 1,
		},
	}
}
