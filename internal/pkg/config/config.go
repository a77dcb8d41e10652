package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: secrets and values that differ between environments
// - default: provider endpoints and tuning values shared by all environments
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Stripe    StripeConfig
	Printful  PrintfulConfig
	Email     EmailConfig
	Turnstile TurnstileConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Catalog   CatalogConfig
	Tracing   TracingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// Tokens are issued by the external auth provider and signed with a shared HS256 secret.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER" default:""`
}

type StripeConfig struct {
	WebhookSecret string        `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
	Tolerance     time.Duration `envconfig:"STRIPE_WEBHOOK_TOLERANCE" default:"5m"`
}

type PrintfulConfig struct {
	BaseURL       string        `envconfig:"PRINTFUL_API_URL" default:"https://api.printful.com"`
	Token         string        `envconfig:"PRINTFUL_API_TOKEN" required:"true"`
	StoreID       string        `envconfig:"PRINTFUL_STORE_ID" default:""`
	WebhookSecret string        `envconfig:"PRINTFUL_WEBHOOK_SECRET" default:""`
	Timeout       time.Duration `envconfig:"PRINTFUL_TIMEOUT" default:"15s"`
}

type EmailConfig struct {
	BaseURL string        `envconfig:"RESEND_API_URL" default:"https://api.resend.com"`
	APIKey  string        `envconfig:"RESEND_API_KEY" required:"true"`
	From    string        `envconfig:"EMAIL_FROM" default:"orders@example.com"`
	SiteURL string        `envconfig:"SITE_URL" default:"http://localhost:3000"`
	Timeout time.Duration `envconfig:"EMAIL_TIMEOUT" default:"10s"`
}

type TurnstileConfig struct {
	Secret    string        `envconfig:"TURNSTILE_SECRET" required:"true"`
	VerifyURL string        `envconfig:"TURNSTILE_VERIFY_URL" default:"https://challenges.cloudflare.com/turnstile/v0/siteverify"`
	ReplayTTL time.Duration `envconfig:"TURNSTILE_REPLAY_TTL" default:"10m"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	LockTTL  time.Duration `envconfig:"LOCK_TTL" default:"30s"`
}

// Empty Brokers disables event publishing.
type KafkaConfig struct {
	Brokers          []string `envconfig:"KAFKA_BROKERS" default:""`
	OrderEventsTopic string   `envconfig:"KAFKA_TOPIC_ORDER_EVENTS" default:"order-events"`
}

type CatalogConfig struct {
	Path string `envconfig:"CATALOG_PATH" default:"configs/catalog.yaml"`
}

type TracingConfig struct {
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"storefront"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env not loaded", "error", err.Error())
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret: "test-jwt-secret",
		},
		Stripe: StripeConfig{
			WebhookSecret: "whsec_test",
			Tolerance:     5 * time.Minute,
		},
		Printful: PrintfulConfig{
			BaseURL: "http://localhost:0",
			Token:   "test-printful-token",
			Timeout: time.Second,
		},
		Email: EmailConfig{
			BaseURL: "http://localhost:0",
			APIKey:  "test-resend-key",
			From:    "orders@example.com",
			SiteURL: "http://localhost:3000",
			Timeout: time.Second,
		},
		Turnstile: TurnstileConfig{
			Secret:    "test-turnstile-secret",
			ReplayTTL: time.Minute,
		},
		Redis: RedisConfig{
			Addr:    "localhost:16379",
			LockTTL: 5 * time.Second,
		},
		Kafka: KafkaConfig{
			OrderEventsTopic: "order-events",
		},
		Catalog: CatalogConfig{
			Path: "configs/catalog.yaml",
		},
		Tracing: TracingConfig{
			ServiceName: "storefront-test",
		},
	}
}
