package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *sqlRepo) GetCartItems(ctx context.Context, customerID string) ([]entities.CartItem, error) {
	query, args := r.qb.Select(
		"ci.id AS id", "ci.cart_id AS cart_id", "ci.quantity AS quantity", "ci.created_at AS created_at",
		"p.id AS product_id", "p.name AS product_name",
		"p.price AS product_price", "p.discount AS product_discount",
	).
		From("cart_items ci").
		Join("carts c ON c.id = ci.cart_id").
		Join("products p ON p.id = ci.product_id").
		Where(sq.Eq{"c.customer_id": customerID}).
		OrderBy("ci.created_at", "ci.id").
		MustSql()

	var rows []CartItem
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart items: %w", err)
	}

	items := make([]entities.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, CartItemToEntity(row))
	}
	return items, nil
}

// DeleteCartItems removes the given items from the customer's cart, or the
// whole cart content when itemIDs is empty. Missing rows are not an error.
func (r *sqlRepo) DeleteCartItems(ctx context.Context, customerID string, itemIDs []string) error {
	q := r.qb.Delete("cart_items").
		Where(sq.Expr("cart_id IN (SELECT id FROM carts WHERE customer_id = ?)", customerID))
	if len(itemIDs) > 0 {
		q = q.Where(sq.Eq{"id": itemIDs})
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete cart items: %w", err)
	}
	return nil
}
