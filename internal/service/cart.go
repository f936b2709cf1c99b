package service

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/pricing"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"
)

type CartRepo interface {
	GetCartItems(ctx context.Context, customerID string) ([]entities.CartItem, error)
	// An empty itemIDs clears the whole cart.
	DeleteCartItems(ctx context.Context, customerID string, itemIDs []string) error
}

// cartReconciler turns the live cart into priced commit candidates.
type cartReconciler struct {
	txManager trm.Manager
	repo      CartRepo
}

func (r *cartReconciler) Reconcile(ctx context.Context, customerID string) ([]entities.CommitCandidate, error) {
	if customerID == "" {
		return nil, entities.ErrNotAuthenticated
	}

	var items []entities.CartItem
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		items, err = r.repo.GetCartItems(ctx, customerID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	if len(items) == 0 {
		return nil, entities.ErrEmptyCart
	}
	return pricing.Candidates(items)
}

type cartClearer struct {
	repo CartRepo
}

func (c *cartClearer) Clear(ctx context.Context, customerID string, itemIDs []string) error {
	if err := c.repo.DeleteCartItems(ctx, customerID, itemIDs); err != nil {
		return fmt.Errorf("%w: %w", entities.ErrCartClearFailed, err)
	}
	return nil
}
