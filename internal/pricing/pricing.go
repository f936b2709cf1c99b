// Package pricing computes the prices captured on an order at commit time.
package pricing

import (
	"fmt"
	"math"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/shopspring/decimal"
)

// MaxQuantity caps a single cart line.
const MaxQuantity = 10_000

var hundred = decimal.NewFromInt(100)

// EffectivePrice applies a percentage discount to a base price given in minor
// currency units and rounds the result half away from zero.
func EffectivePrice(base int64, discount decimal.Decimal) (int64, error) {
	if base < 0 {
		return 0, fmt.Errorf("%w: got %d", entities.ErrInvalidPrice, base)
	}
	if discount.IsNegative() || discount.GreaterThan(hundred) {
		return 0, fmt.Errorf("%w: got %s", entities.ErrInvalidDiscount, discount)
	}
	if discount.IsZero() {
		return base, nil
	}

	factor := hundred.Sub(discount).Div(hundred)
	return decimal.NewFromInt(base).Mul(factor).Round(0).IntPart(), nil
}

// Candidates prices every cart line with the product's live price and discount.
// The resulting order total is guaranteed to fit in an int64.
func Candidates(items []entities.CartItem) ([]entities.CommitCandidate, error) {
	out := make([]entities.CommitCandidate, 0, len(items))
	var total int64
	for _, it := range items {
		if it.Quantity <= 0 || it.Quantity > MaxQuantity {
			return nil, fmt.Errorf("%w: quantity %d for product %s", entities.ErrInvalidCart, it.Quantity, it.Product.ID)
		}
		price, err := EffectivePrice(it.Product.Price, it.Product.Discount)
		if err != nil {
			return nil, fmt.Errorf("%w: product %s: %w", entities.ErrInvalidCart, it.Product.ID, err)
		}
		if price > (math.MaxInt64-total)/int64(it.Quantity) {
			return nil, fmt.Errorf("%w: order total overflows at product %s", entities.ErrInvalidCart, it.Product.ID)
		}
		total += price * int64(it.Quantity)
		out = append(out, entities.CommitCandidate{
			CartItemID: it.ID,
			ProductID:  it.Product.ID,
			Quantity:   it.Quantity,
			UnitPrice:  price,
		})
	}
	return out, nil
}

// Total is the sum of quantity * unit price over all candidates.
func Total(candidates []entities.CommitCandidate) int64 {
	var total int64
	for _, c := range candidates {
		total += c.Subtotal()
	}
	return total
}
