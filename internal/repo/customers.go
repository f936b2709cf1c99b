package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *sqlRepo) ListCustomerIDs(ctx context.Context) ([]string, error) {
	query, args := r.qb.Select("id").
		From("profiles").
		OrderBy("id").
		MustSql()

	var ids []string
	if err := r.selectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select profiles: %w", err)
	}
	return ids, nil
}

// LedgerOrders returns committed orders (those with items), optionally for a
// single customer when customerID is not empty.
func (r *sqlRepo) LedgerOrders(ctx context.Context, customerID string) ([]entities.Order, error) {
	q := r.qb.Select("id", "customer_id", "total", "created_at").
		From("orders").
		Where(hasItems)
	if customerID != "" {
		q = q.Where(sq.Eq{"customer_id": customerID})
	}

	query, args := q.MustSql()

	var rows []LedgerRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select ledger: %w", err)
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, LedgerRowToEntity(row))
	}
	return orders, nil
}
