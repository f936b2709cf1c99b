package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/middleware"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
	healthCheckTimeout      = 2 * time.Second
)

type HealthCheck func(ctx context.Context) error

type application struct {
	logger *slog.Logger

	router  chi.Router
	httpSrv *http.Server

	consumers []Consumer
	starters  []Starter
	checks    map[string]HealthCheck

	group  *errgroup.Group
	cancel context.CancelFunc
}

func New(logger *slog.Logger, cfg config.Config) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(chimw.Recoverer)
	router.Use(middleware.Metrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.CustomerIDHeader, "Idempotency-Key"},
	}))
	router.Use(middleware.Identity)

	a := &application{
		logger: logger,
		router: router,
		httpSrv: &http.Server{
			Handler:           router,
			Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
			ReadHeaderTimeout: 5 * time.Second,
		},
		checks: make(map[string]HealthCheck),
	}

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/health", a.health)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return a
}

type HttpHandler interface {
	Init(r chi.Router)
}

func (a *application) SetHTTPHandlers(handlers ...HttpHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

// Consumer blocks in Consume until ctx is done or Close is called.
type Consumer interface {
	Consume(ctx context.Context) error
	Close() error
}

func (a *application) SetConsumers(consumers ...Consumer) {
	a.consumers = consumers
}

// Starter is a background job that lives as long as the application.
type Starter interface {
	Start(ctx context.Context) error
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = starters
}

func (a *application) SetHealthCheck(name string, check HealthCheck) {
	a.checks[name] = check
}

// Start binds the listener synchronously so a bad address fails fast, then
// serves HTTP and runs consumers and starters in the background.
func (a *application) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.httpSrv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.httpSrv.Addr, err)
	}

	ctx, a.cancel = context.WithCancel(ctx)
	a.group, ctx = errgroup.WithContext(ctx)

	for _, s := range a.starters {
		a.group.Go(func() error {
			if err := s.Start(ctx); err != nil {
				a.logger.Error("background job stopped", slog.Any("error", err))
			}
			return nil
		})
	}

	for _, c := range a.consumers {
		a.group.Go(func() error {
			if err := c.Consume(ctx); err != nil {
				a.logger.Error("consumer stopped", slog.Any("error", err))
			}
			return nil
		})
	}

	a.group.Go(func() error {
		a.logger.Info("starting http server", slog.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	a.logger.Info("application started")
	return nil
}

func (a *application) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}

	if a.cancel != nil {
		a.cancel()
	}
	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close consumer: %w", err))
		}
	}
	if a.group != nil {
		if err := a.group.Wait(); err != nil {
			errs = append(errs, err)
		}
	}

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}

// HealthResponse состояние зависимостей сервиса
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// health проверяет доступность зависимостей.
// @Summary      Проверка состояния
// @Tags         system
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Failure      503  {object}  HealthResponse
// @Router       /health [get]
func (a *application) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	res := HealthResponse{Status: "ok", Checks: make(map[string]string, len(a.checks))}
	code := http.StatusOK
	for name, check := range a.checks {
		if err := check(ctx); err != nil {
			a.logger.Warn("health check failed", slog.String("check", name), slog.Any("error", err))
			res.Checks[name] = "unavailable"
			res.Status = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		res.Checks[name] = "ok"
	}

	utils.WriteJSON(w, res, code)
}
