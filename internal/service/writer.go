package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/pricing"
	"github.com/google/uuid"
)

type CommitState int

const (
	StateIdle CommitState = iota
	StateOrderPersisted
	StateItemsPersisted
	StateCommitted
	StateFailed
)

func (s CommitState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateOrderPersisted:
		return "order_persisted"
	case StateItemsPersisted:
		return "items_persisted"
	case StateCommitted:
		return "committed"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type WriteResult struct {
	Order            entities.Order
	State            CommitState
	CartClearPending bool
}

// enqueueTask hands a reconcile task to the queue and only logs on failure:
// the caller has already decided the checkout outcome.
func enqueueTask(ctx context.Context, logger *slog.Logger, tasks TaskQueue, task entities.ReconcileTask) {
	task.ID = uuid.NewString()
	task.CreatedAt = time.Now().UTC()

	if err := tasks.Enqueue(ctx, task); err != nil {
		reconcileTasks.WithLabelValues(string(task.Kind), "failed").Inc()
		logger.Error("failed to enqueue reconcile task",
			slog.String("kind", string(task.Kind)),
			slog.String("order_id", task.OrderID),
			slog.Any("error", err),
		)
		return
	}
	reconcileTasks.WithLabelValues(string(task.Kind), "enqueued").Inc()
}

// compensator undoes an order header whose items could not be written.
type compensator struct {
	logger  *slog.Logger
	repo    OrderRepo
	tasks   TaskQueue
	timeout time.Duration
}

// Compensate deletes the order on a context that survives request
// cancellation. A failed delete leaves an orphan that is queued for repair.
func (c *compensator) Compensate(ctx context.Context, order entities.Order) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	err := c.repo.DeleteOrder(ctx, order.ID)
	if err == nil {
		c.logger.Warn("order compensated", slog.String("order_id", order.ID))
		return nil
	}

	orphanOrders.Inc()
	c.logger.Error("failed to compensate order, orphan left behind",
		slog.String("order_id", order.ID),
		slog.String("customer_id", order.CustomerID),
		slog.Any("error", err),
	)
	enqueueTask(ctx, c.logger, c.tasks, entities.ReconcileTask{
		Kind:       entities.ReconcileDeleteOrphanOrder,
		CustomerID: order.CustomerID,
		OrderID:    order.ID,
	})

	return errors.Join(entities.ErrCompensationFailed, entities.ErrOrphanOrderDetected, err)
}

// orderWriter drives one commit through Idle, OrderPersisted, ItemsPersisted
// and Committed, compensating when it fails halfway.
type orderWriter struct {
	logger      *slog.Logger
	repo        OrderRepo
	compensator *compensator
	clearer     *cartClearer
	tasks       TaskQueue
	timeout     time.Duration
}

func (w *orderWriter) Write(
	ctx context.Context,
	customerID string,
	in entities.CheckoutInput,
	candidates []entities.CommitCandidate,
) (WriteResult, error) {
	order := newOrder(customerID, in, candidates)
	res := WriteResult{Order: order, State: StateIdle}

	if len(order.Items) == 0 {
		res.State = StateFailed
		return res, entities.ErrEmptyCart
	}

	header := order
	header.Items = nil
	if err := w.repo.CreateOrder(ctx, header); err != nil {
		res.State = StateFailed
		return res, fmt.Errorf("%w: %w", entities.ErrOrderWriteFailed, err)
	}
	res.State = StateOrderPersisted
	w.transition(order.ID, res.State)

	if err := w.repo.SaveItems(ctx, order.ID, order.Items); err != nil {
		res.State = StateFailed
		w.transition(order.ID, res.State)

		err = fmt.Errorf("%w: %w: %w", entities.ErrCheckoutFailed, entities.ErrItemWriteFailed, err)
		if cerr := w.compensator.Compensate(ctx, order); cerr != nil {
			err = errors.Join(err, cerr)
		}
		return res, err
	}
	res.State = StateItemsPersisted
	w.transition(order.ID, res.State)

	res.CartClearPending = !w.clearCart(ctx, order, candidates)
	res.State = StateCommitted
	w.transition(order.ID, res.State)

	return res, nil
}

// clearCart removes exactly the committed cart items. The order stays
// committed when this fails; the clear is queued for the reconcile worker.
func (w *orderWriter) clearCart(ctx context.Context, order entities.Order, candidates []entities.CommitCandidate) bool {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.timeout)
	defer cancel()

	itemIDs := make([]string, 0, len(candidates))
	for _, c := range candidates {
		itemIDs = append(itemIDs, c.CartItemID)
	}

	err := w.clearer.Clear(ctx, order.CustomerID, itemIDs)
	if err == nil {
		return true
	}

	cartClearFailures.Inc()
	w.logger.Error("order committed but cart was not cleared",
		slog.String("order_id", order.ID),
		slog.String("customer_id", order.CustomerID),
		slog.Any("error", err),
	)
	enqueueTask(ctx, w.logger, w.tasks, entities.ReconcileTask{
		Kind:        entities.ReconcileClearCart,
		CustomerID:  order.CustomerID,
		OrderID:     order.ID,
		CartItemIDs: itemIDs,
	})
	return false
}

func (w *orderWriter) transition(orderID string, state CommitState) {
	w.logger.Debug("commit state changed", slog.String("order_id", orderID), slog.String("state", state.String()))
}

// newOrder builds the order from server-side prices only.
func newOrder(customerID string, in entities.CheckoutInput, candidates []entities.CommitCandidate) entities.Order {
	orderID := uuid.NewString()

	items := make([]entities.OrderItem, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, entities.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   orderID,
			ProductID: c.ProductID,
			Quantity:  c.Quantity,
			UnitPrice: c.UnitPrice,
		})
	}

	return entities.Order{
		ID:             orderID,
		CustomerID:     customerID,
		Total:          pricing.Total(candidates),
		Status:         entities.OrderStatusPending,
		Shipping:       in.Shipping,
		PaymentMethod:  in.PaymentMethod,
		IdempotencyKey: in.IdempotencyKey,
		CreatedAt:      time.Now().UTC(),
		Items:          items,
	}
}
