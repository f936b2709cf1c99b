package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Database Database `validate:"required"`
	// Validated only when Database.Driver is postgres.
	Postgres Postgres `validate:"-"`

	Redis Redis `validate:"required"`

	Kafka Kafka `validate:"required"`

	Cache Cache `validate:"required"`

	Checkout Checkout `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Database struct {
	Driver     string `validate:"required,oneof=postgres sqlite"`
	SQLitePath string `validate:"required_if=Driver sqlite"`
	// Apply the embedded schema on start.
	Migrate bool
}

type Redis struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`

	IdempotencyTTL     time.Duration `validate:"gt=0"`
	IdempotencyLockTTL time.Duration `validate:"gt=0"`
}

type Kafka struct {
	GroupID        string   `validate:"required"`
	Brokers        []string `validate:"required,min=1,dive,hostname_port"`
	ReconcileTopic string   `validate:"required"`
	OutcomeTopic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Checkout struct {
	CompensationTimeout time.Duration `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Database: Database{
			Driver:     env("DB_DRIVER", "postgres"),
			SQLitePath: env("SQLITE_PATH", "checkout.db"),
			Migrate:    envBool("DB_MIGRATE", false),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "storefront"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),

			IdempotencyTTL:     envDuration("IDEMPOTENCY_TTL", 24*time.Hour),
			IdempotencyLockTTL: envDuration("IDEMPOTENCY_LOCK_TTL", 30*time.Second),
		},

		Kafka: Kafka{
			GroupID:        env("KAFKA_GROUP_ID", "checkout-service"),
			Brokers:        strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
			ReconcileTopic: env("KAFKA_RECONCILE_TOPIC", "checkout-reconcile"),
			OutcomeTopic:   env("KAFKA_OUTCOME_TOPIC", "checkout-outcomes"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Checkout: Checkout{
			CompensationTimeout: envDuration("CHECKOUT_COMPENSATION_TIMEOUT", 5*time.Second),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Database.Driver == "postgres" {
		return validate.Struct(c.Postgres)
	}
	return nil
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
