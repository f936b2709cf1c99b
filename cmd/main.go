package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/checkout-service/docs"
	"github.com/SergeyBogomolovv/checkout-service/internal/app"
	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/events"
	"github.com/SergeyBogomolovv/checkout-service/internal/handler"
	"github.com/SergeyBogomolovv/checkout-service/internal/idempotency"
	"github.com/SergeyBogomolovv/checkout-service/internal/migrations"
	"github.com/SergeyBogomolovv/checkout-service/internal/postgres"
	"github.com/SergeyBogomolovv/checkout-service/internal/repo"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	"github.com/SergeyBogomolovv/checkout-service/internal/sqlite"
	"github.com/SergeyBogomolovv/checkout-service/pkg/cache"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// @title           Checkout Service API
// @version         1.0
// @description     Документация HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, txOpts, err := openStore(ctx, conf)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("store connected", slog.String("driver", conf.Database.Driver))

	if conf.Database.Migrate {
		panicIfErr("failed to migrate db", migrations.Apply(ctx, db))
		logger.Info("schema applied", slog.Int("version", migrations.SchemaVersion))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	defer rdb.Close()

	publisher := events.NewPublisher(
		events.NewWriter(conf.Kafka.Brokers, conf.Kafka.OutcomeTopic, conf.Kafka.BatchTimeout),
		events.NewWriter(conf.Kafka.Brokers, conf.Kafka.ReconcileTopic, conf.Kafka.BatchTimeout),
	)
	defer publisher.Close()

	storeRepo := repo.New(db)
	txManager := trm.NewManager(db, txOpts)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	idemStore := idempotency.NewRedisStore(rdb, conf.Redis.IdempotencyTTL, conf.Redis.IdempotencyLockTTL)

	checkoutService := service.NewCheckoutService(
		logger, txManager, storeRepo, storeRepo, idemStore, publisher, publisher,
		conf.Checkout.CompensationTimeout,
	)
	orderService := service.NewOrderService(logger, storeRepo, orderCache)
	customerService := service.NewCustomerService(logger, txManager, storeRepo)
	reconcileService := service.NewReconcileService(logger, storeRepo, storeRepo, service.DefaultReconcileRetry)

	httpHandler := handler.NewHTTPHandler(logger, checkoutService, orderService, customerService)
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, reconcileService)

	handler.RegisterMetrics()
	service.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache)
	app.SetHealthCheck("db", db.PingContext)
	app.SetHealthCheck("redis", func(ctx context.Context) error { return rdb.Ping(ctx).Err() })

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

// openStore picks the relational store. Postgres checkouts read the cart in a
// repeatable-read snapshot; sqlite transactions are serializable already.
func openStore(ctx context.Context, conf config.Config) (*sqlx.DB, *sql.TxOptions, error) {
	if conf.Database.Driver == sqlite.DriverName {
		db, err := sqlite.New(conf.Database.SQLitePath)
		return db, nil, err
	}

	db, err := postgres.New(ctx, conf.Postgres)
	return db, &sql.TxOptions{Isolation: sql.LevelRepeatableRead}, err
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
