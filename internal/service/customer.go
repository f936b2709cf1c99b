package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/ledger"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"
	"golang.org/x/sync/singleflight"
)

type LedgerRepo interface {
	ListCustomerIDs(ctx context.Context) ([]string, error)
	// An empty customerID returns the ledger of every customer.
	LedgerOrders(ctx context.Context, customerID string) ([]entities.Order, error)
}

// Bounds a ledger read shared by several callers, since no single caller's
// context owns it.
const ledgerReadTimeout = 30 * time.Second

type customerService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      LedgerRepo
	group     singleflight.Group
}

func NewCustomerService(logger *slog.Logger, txManager trm.Manager, repo LedgerRepo) *customerService {
	return &customerService{
		logger:    logger.With(slog.String("service", "customer")),
		txManager: txManager,
		repo:      repo,
	}
}

// Stats aggregates the committed ledger of every known customer, sorted by id.
func (s *customerService) Stats(ctx context.Context) ([]entities.CustomerAggregate, error) {
	v, shared, err := s.do(ctx, "all", func(ctx context.Context) (any, error) {
		var (
			ids    []string
			orders []entities.Order
		)
		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			if ids, err = s.repo.ListCustomerIDs(ctx); err != nil {
				return err
			}
			orders, err = s.repo.LedgerOrders(ctx, "")
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("failed to read ledger: %w", err)
		}
		return ledger.Aggregate(ids, orders), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("customer stats computed", slog.Bool("shared", shared))
	return v.([]entities.CustomerAggregate), nil
}

func (s *customerService) StatsFor(ctx context.Context, customerID string) (entities.CustomerAggregate, error) {
	if customerID == "" {
		return entities.CustomerAggregate{}, entities.ErrNotAuthenticated
	}

	v, _, err := s.do(ctx, "customer:"+customerID, func(ctx context.Context) (any, error) {
		orders, err := s.repo.LedgerOrders(ctx, customerID)
		if err != nil {
			return nil, fmt.Errorf("failed to read ledger: %w", err)
		}
		return ledger.For(customerID, orders), nil
	})
	if err != nil {
		return entities.CustomerAggregate{}, err
	}
	return v.(entities.CustomerAggregate), nil
}

// do collapses concurrent reads under key. The read runs detached from any
// one caller; each caller still stops waiting when its own ctx is done.
func (s *customerService) do(ctx context.Context, key string, fn func(ctx context.Context) (any, error)) (any, bool, error) {
	ch := s.group.DoChan(key, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ledgerReadTimeout)
		defer cancel()
		return fn(ctx)
	})

	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case res := <-ch:
		return res.Val, res.Shared, res.Err
	}
}
