package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, order entities.Order) error
	SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error
	DeleteOrder(ctx context.Context, orderID string) error
	DeleteOrderIfEmpty(ctx context.Context, orderID string) (bool, error)

	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderByIdempotencyKey(ctx context.Context, customerID, key string) (entities.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID string) ([]entities.Order, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

var readRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

type orderService struct {
	logger *slog.Logger
	repo   OrderRepo
	cache  Cache
}

func NewOrderService(logger *slog.Logger, repo OrderRepo, cache Cache) *orderService {
	return &orderService{
		logger: logger.With(slog.String("service", "order")),
		repo:   repo,
		cache:  cache,
	}
}

// GetOrderByID returns a committed order owned by customerID. Orders of other
// customers and orders without items are reported as not found.
func (s *orderService) GetOrderByID(ctx context.Context, customerID, orderID string) (entities.Order, error) {
	if customerID == "" {
		return entities.Order{}, entities.ErrNotAuthenticated
	}

	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.CustomerID != customerID {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) getOrder(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(ctx, readRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	// Headers without items are either mid-commit or orphaned; never cache them.
	if len(order.Items) == 0 {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", orderID), slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(orderID, data)
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, customerID string) ([]entities.Order, error) {
	if customerID == "" {
		return nil, entities.ErrNotAuthenticated
	}

	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.repo.ListOrdersByCustomer(ctx, customerID)
		return err
	}
	if err := utils.Retry(ctx, readRetry, fn); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
