package repo

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID              string         `db:"id"`
	CustomerID      string         `db:"customer_id"`
	Total           int64          `db:"total"`
	Status          string         `db:"status"`
	ShippingAddress string         `db:"shipping_address"`
	PaymentMethod   sql.NullString `db:"payment_method"`
	IdempotencyKey  string         `db:"idempotency_key"`
	CreatedAt       time.Time      `db:"created_at"`
}

type OrderItem struct {
	ID        string `db:"id"`
	OrderID   string `db:"order_id"`
	ProductID string `db:"product_id"`
	Quantity  int    `db:"quantity"`
	UnitPrice int64  `db:"unit_price"`
}

type CartItem struct {
	ID              string          `db:"id"`
	CartID          string          `db:"cart_id"`
	Quantity        int             `db:"quantity"`
	CreatedAt       time.Time       `db:"created_at"`
	ProductID       string          `db:"product_id"`
	ProductName     string          `db:"product_name"`
	ProductPrice    int64           `db:"product_price"`
	ProductDiscount decimal.Decimal `db:"product_discount"`
}

// LedgerRow is the slice of an order the customer aggregation needs.
type LedgerRow struct {
	ID         string    `db:"id"`
	CustomerID string    `db:"customer_id"`
	Total      int64     `db:"total"`
	CreatedAt  time.Time `db:"created_at"`
}

var orderColumns = []string{
	"id", "customer_id", "total", "status", "shipping_address",
	"payment_method", "idempotency_key", "created_at",
}

var itemColumns = []string{"id", "order_id", "product_id", "quantity", "unit_price"}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:        i.ID,
		OrderID:   i.OrderID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
	}
}

func OrderToEntity(o Order, items []OrderItem) (entities.Order, error) {
	var shipping entities.ShippingAddress
	if err := json.Unmarshal([]byte(o.ShippingAddress), &shipping); err != nil {
		return entities.Order{}, fmt.Errorf("failed to decode shipping address of order %s: %w", o.ID, err)
	}

	order := entities.Order{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		Total:          o.Total,
		Status:         entities.OrderStatus(o.Status),
		Shipping:       shipping,
		PaymentMethod:  nullStringToString(o.PaymentMethod),
		IdempotencyKey: o.IdempotencyKey,
		CreatedAt:      o.CreatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order, nil
}

func CartItemToEntity(c CartItem) entities.CartItem {
	return entities.CartItem{
		ID:        c.ID,
		CartID:    c.CartID,
		Quantity:  c.Quantity,
		CreatedAt: c.CreatedAt,
		Product: entities.Product{
			ID:       c.ProductID,
			Name:     c.ProductName,
			Price:    c.ProductPrice,
			Discount: c.ProductDiscount,
		},
	}
}

func LedgerRowToEntity(l LedgerRow) entities.Order {
	return entities.Order{
		ID:         l.ID,
		CustomerID: l.CustomerID,
		Total:      l.Total,
		CreatedAt:  l.CreatedAt,
	}
}
