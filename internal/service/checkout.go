package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/pricing"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"
	"github.com/go-playground/validator/v10"
)

type IdempotencyStore interface {
	// Acquire claims key for a new attempt. A non-empty orderID means a
	// previous attempt already committed; acquired=false with no orderID means
	// one is still running.
	Acquire(ctx context.Context, customerID, key string) (orderID string, acquired bool, err error)
	Complete(ctx context.Context, customerID, key, orderID string) error
	Release(ctx context.Context, customerID, key string) error
}

type OutcomePublisher interface {
	PublishOutcome(ctx context.Context, outcome entities.CheckoutOutcome) error
}

type TaskQueue interface {
	Enqueue(ctx context.Context, task entities.ReconcileTask) error
}

type checkoutService struct {
	logger     *slog.Logger
	validate   *validator.Validate
	orders     OrderRepo
	idem       IdempotencyStore
	publisher  OutcomePublisher
	reconciler *cartReconciler
	writer     *orderWriter
	timeout    time.Duration
}

// NewCheckoutService wires the commit saga. timeout bounds the work that must
// finish after the caller is gone: compensation, cart clearing, key settlement
// and outcome publishing.
func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	carts CartRepo,
	idem IdempotencyStore,
	publisher OutcomePublisher,
	tasks TaskQueue,
	timeout time.Duration,
) *checkoutService {
	logger = logger.With(slog.String("service", "checkout"))
	return &checkoutService{
		logger:     logger,
		validate:   validator.New(),
		orders:     orders,
		idem:       idem,
		publisher:  publisher,
		reconciler: &cartReconciler{txManager: txManager, repo: carts},
		writer: &orderWriter{
			logger:      logger,
			repo:        orders,
			compensator: &compensator{logger: logger, repo: orders, tasks: tasks, timeout: timeout},
			clearer:     &cartClearer{repo: carts},
			tasks:       tasks,
			timeout:     timeout,
		},
		timeout: timeout,
	}
}

// Checkout turns the customer's cart into a committed order. Submissions that
// reuse an idempotency key return the order of the first successful attempt.
func (s *checkoutService) Checkout(ctx context.Context, customerID string, in entities.CheckoutInput) (res entities.CheckoutResult, err error) {
	start := time.Now()
	defer func() { s.observe(ctx, customerID, in, res, err, time.Since(start)) }()

	if customerID == "" {
		return res, entities.ErrNotAuthenticated
	}
	if err := s.validate.Struct(in); err != nil {
		return res, fmt.Errorf("%w: %w", entities.ErrInvalidCheckout, err)
	}

	orderID, acquired, err := s.idem.Acquire(ctx, customerID, in.IdempotencyKey)
	switch {
	case err != nil:
		// The unique (customer_id, idempotency_key) constraint still catches duplicates.
		s.logger.Warn("idempotency store unavailable", slog.Any("error", err))
	case orderID != "":
		return s.replay(ctx, customerID, in.IdempotencyKey)
	case !acquired:
		return res, entities.ErrCheckoutInProgress
	}

	res, err = s.commit(ctx, customerID, in)
	s.settleKey(ctx, customerID, in.IdempotencyKey, res, err)
	return res, err
}

func (s *checkoutService) commit(ctx context.Context, customerID string, in entities.CheckoutInput) (entities.CheckoutResult, error) {
	candidates, err := s.reconciler.Reconcile(ctx, customerID)
	if err != nil {
		return entities.CheckoutResult{}, err
	}

	total := pricing.Total(candidates)
	if in.ExpectedTotal != nil && *in.ExpectedTotal != total {
		return entities.CheckoutResult{}, fmt.Errorf("%w: expected %d, computed %d", entities.ErrTotalMismatch, *in.ExpectedTotal, total)
	}

	wr, err := s.writer.Write(ctx, customerID, in, candidates)
	if errors.Is(err, entities.ErrDuplicateCheckout) {
		return s.replay(ctx, customerID, in.IdempotencyKey)
	}
	if err != nil {
		return entities.CheckoutResult{}, err
	}

	return entities.CheckoutResult{Order: wr.Order, CartClearPending: wr.CartClearPending}, nil
}

func (s *checkoutService) replay(ctx context.Context, customerID, key string) (entities.CheckoutResult, error) {
	order, err := s.orders.GetOrderByIdempotencyKey(ctx, customerID, key)
	if err != nil {
		return entities.CheckoutResult{}, fmt.Errorf("%w: failed to load previous attempt: %w", entities.ErrCheckoutFailed, err)
	}
	// The first attempt has written its header but not its items yet.
	if len(order.Items) == 0 {
		return entities.CheckoutResult{}, entities.ErrCheckoutInProgress
	}
	return entities.CheckoutResult{Order: order, Replayed: true}, nil
}

// settleKey records the committed order for the key, or frees the key so the
// client can retry after a failure.
func (s *checkoutService) settleKey(ctx context.Context, customerID, key string, res entities.CheckoutResult, err error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	if err == nil {
		if err := s.idem.Complete(ctx, customerID, key, res.Order.ID); err != nil {
			s.logger.Warn("failed to complete idempotency key", slog.String("order_id", res.Order.ID), slog.Any("error", err))
		}
		return
	}
	if err := s.idem.Release(ctx, customerID, key); err != nil {
		s.logger.Warn("failed to release idempotency key", slog.Any("error", err))
	}
}

func (s *checkoutService) observe(
	ctx context.Context,
	customerID string,
	in entities.CheckoutInput,
	res entities.CheckoutResult,
	err error,
	elapsed time.Duration,
) {
	kind := entities.OutcomeFromError(err)
	if err == nil && res.Replayed {
		kind = entities.OutcomeReplayed
	}

	checkoutOutcomes.WithLabelValues(string(kind)).Inc()
	checkoutDuration.Observe(elapsed.Seconds())

	outcome := entities.CheckoutOutcome{
		Kind:             kind,
		CustomerID:       customerID,
		OrderID:          res.Order.ID,
		Total:            res.Order.Total,
		IdempotencyKey:   in.IdempotencyKey,
		CartClearPending: res.CartClearPending,
		OccurredAt:       time.Now().UTC(),
	}

	attrs := []any{
		slog.String("outcome", string(kind)),
		slog.String("customer_id", customerID),
		slog.Duration("elapsed", elapsed),
	}
	switch kind {
	case entities.OutcomeCommitted, entities.OutcomeReplayed:
		s.logger.Info("checkout finished", append(attrs, slog.String("order_id", res.Order.ID))...)
	case entities.OutcomeCheckoutFailed, entities.OutcomeOrderWriteFailed, entities.OutcomeOrphanOrderDetected:
		outcome.Error = err.Error()
		s.logger.Error("checkout failed", append(attrs, slog.Any("error", err))...)
	default:
		outcome.Error = err.Error()
		s.logger.Info("checkout rejected", append(attrs, slog.Any("error", err))...)
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()
	if err := s.publisher.PublishOutcome(ctx, outcome); err != nil {
		s.logger.Warn("failed to publish checkout outcome", slog.String("outcome", string(kind)), slog.Any("error", err))
	}
}
