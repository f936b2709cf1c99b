package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
)

var DefaultReconcileRetry = utils.RetryConfig{
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	MaxAttempts:  5,
	Multiplier:   2,
}

type reconcileService struct {
	logger  *slog.Logger
	orders  OrderRepo
	clearer *cartClearer
	retry   utils.RetryConfig
}

func NewReconcileService(logger *slog.Logger, orders OrderRepo, carts CartRepo, retry utils.RetryConfig) *reconcileService {
	return &reconcileService{
		logger:  logger.With(slog.String("service", "reconcile")),
		orders:  orders,
		clearer: &cartClearer{repo: carts},
		retry:   retry,
	}
}

// HandleTask applies one repair task. Both task kinds are safe to repeat.
func (s *reconcileService) HandleTask(ctx context.Context, task entities.ReconcileTask) error {
	fn := func() error {
		switch task.Kind {
		case entities.ReconcileClearCart:
			return s.clearer.Clear(ctx, task.CustomerID, task.CartItemIDs)
		case entities.ReconcileDeleteOrphanOrder:
			return s.deleteOrphan(ctx, task.OrderID)
		default:
			return fmt.Errorf("%w: unknown kind %q", entities.ErrInvalidReconcileTask, task.Kind)
		}
	}

	if err := utils.Retry(ctx, s.retry, fn, entities.ErrInvalidReconcileTask); err != nil {
		return fmt.Errorf("failed to reconcile %s for order %s: %w", task.Kind, task.OrderID, err)
	}

	s.logger.Info("reconcile task done", slog.String("kind", string(task.Kind)), slog.String("order_id", task.OrderID))
	return nil
}

func (s *reconcileService) deleteOrphan(ctx context.Context, orderID string) error {
	deleted, err := s.orders.DeleteOrderIfEmpty(ctx, orderID)
	if err != nil {
		return err
	}
	if !deleted {
		s.logger.Info("orphan already gone or has items", slog.String("order_id", orderID))
	}
	return nil
}
