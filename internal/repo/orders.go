package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

const hasItems = "EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = orders.id)"

func (r *sqlRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	shipping, err := json.Marshal(o.Shipping)
	if err != nil {
		return fmt.Errorf("failed to encode shipping address: %w", err)
	}

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.CustomerID, o.Total, string(o.Status), string(shipping),
			nullString(o.PaymentMethod), o.IdempotencyKey, o.CreatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: key %s", entities.ErrDuplicateCheckout, o.IdempotencyKey)
		}
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

// SaveItems writes all items in one statement, so either every row lands or none.
func (r *sqlRepo) SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(itemColumns...)
	for _, it := range items {
		q = q.Values(it.ID, orderID, it.ProductID, it.Quantity, it.UnitPrice)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

// DeleteOrder removes the order header; its items go with it via ON DELETE CASCADE.
func (r *sqlRepo) DeleteOrder(ctx context.Context, orderID string) error {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

// DeleteOrderIfEmpty deletes the order only while it still has no items.
func (r *sqlRepo) DeleteOrderIfEmpty(ctx context.Context, orderID string) (bool, error) {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"id": orderID}).
		Where("NOT " + hasItems).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete orphan order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

func (r *sqlRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"id": orderID})
}

func (r *sqlRepo) GetOrderByIdempotencyKey(ctx context.Context, customerID, key string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"customer_id": customerID, "idempotency_key": key})
}

func (r *sqlRepo) getOrder(ctx context.Context, where sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": order.ID}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get items: %w", err)
	}

	return OrderToEntity(order, items)
}

// ListOrdersByCustomer returns the customer's committed orders, newest first.
func (r *sqlRepo) ListOrdersByCustomer(ctx context.Context, customerID string) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"customer_id": customerID}).
		Where(hasItems).
		OrderBy("created_at DESC", "id").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	itemsMap := make(map[string][]OrderItem, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		o, err := OrderToEntity(order, itemsMap[order.ID])
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}

	return result, nil
}
