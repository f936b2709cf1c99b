package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID    string
	Name  string
	Price int64
	// Percentage in [0, 100].
	Discount decimal.Decimal
}

// CartItem is a line of the customer's cart joined with the live product row.
type CartItem struct {
	ID        string
	CartID    string
	Product   Product
	Quantity  int
	CreatedAt time.Time
}

// CommitCandidate is a cart line priced and ready to become an OrderItem.
type CommitCandidate struct {
	CartItemID string
	ProductID  string
	Quantity   int
	UnitPrice  int64
}

func (c CommitCandidate) Subtotal() int64 {
	return int64(c.Quantity) * c.UnitPrice
}
