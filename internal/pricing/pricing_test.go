package pricing_test

import (
	"math"
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectivePrice(t *testing.T) {
	testCases := []struct {
		name     string
		base     int64
		discount string
		want     int64
		wantErr  error
	}{
		{name: "ten percent", base: 1000, discount: "10", want: 900},
		{name: "no discount", base: 500, discount: "0", want: 500},
		{name: "full discount", base: 500, discount: "100", want: 0},
		{name: "rounds half up", base: 999, discount: "50", want: 500},
		{name: "rounds fraction up", base: 1001, discount: "33.3", want: 668},
		{name: "rounds fraction down", base: 1999, discount: "12.5", want: 1749},
		{name: "zero base", base: 0, discount: "25", want: 0},
		{name: "negative base", base: -1, discount: "0", wantErr: entities.ErrInvalidPrice},
		{name: "negative discount", base: 100, discount: "-5", wantErr: entities.ErrInvalidDiscount},
		{name: "discount above hundred", base: 100, discount: "100.01", wantErr: entities.ErrInvalidDiscount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pricing.EffectivePrice(tc.base, decimal.RequireFromString(tc.discount))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCandidates(t *testing.T) {
	items := []entities.CartItem{
		{ID: "ci-1", Quantity: 2, Product: entities.Product{ID: "p-1", Price: 1000, Discount: decimal.NewFromInt(10)}},
		{ID: "ci-2", Quantity: 1, Product: entities.Product{ID: "p-2", Price: 500, Discount: decimal.Zero}},
	}

	got, err := pricing.Candidates(items)
	require.NoError(t, err)

	want := []entities.CommitCandidate{
		{CartItemID: "ci-1", ProductID: "p-1", Quantity: 2, UnitPrice: 900},
		{CartItemID: "ci-2", ProductID: "p-2", Quantity: 1, UnitPrice: 500},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, int64(2300), pricing.Total(got))
}

func TestCandidates_Invalid(t *testing.T) {
	t.Run("non-positive quantity", func(t *testing.T) {
		_, err := pricing.Candidates([]entities.CartItem{{ID: "ci-1", Quantity: 0, Product: entities.Product{ID: "p-1", Price: 10}}})
		assert.ErrorIs(t, err, entities.ErrInvalidCart)
	})

	t.Run("quantity above limit", func(t *testing.T) {
		_, err := pricing.Candidates([]entities.CartItem{{ID: "ci-1", Quantity: pricing.MaxQuantity + 1, Product: entities.Product{ID: "p-1", Price: 10}}})
		assert.ErrorIs(t, err, entities.ErrInvalidCart)
	})

	t.Run("total overflows", func(t *testing.T) {
		_, err := pricing.Candidates([]entities.CartItem{
			{ID: "ci-1", Quantity: 1, Product: entities.Product{ID: "p-1", Price: math.MaxInt64 - 5}},
			{ID: "ci-2", Quantity: 2, Product: entities.Product{ID: "p-2", Price: 3}},
		})
		assert.ErrorIs(t, err, entities.ErrInvalidCart)

		_, err = pricing.Candidates([]entities.CartItem{{ID: "ci-1", Quantity: 3, Product: entities.Product{ID: "p-1", Price: math.MaxInt64 / 2}}})
		assert.ErrorIs(t, err, entities.ErrInvalidCart)
	})

	t.Run("largest total accepted", func(t *testing.T) {
		got, err := pricing.Candidates([]entities.CartItem{
			{ID: "ci-1", Quantity: 1, Product: entities.Product{ID: "p-1", Price: math.MaxInt64 - 6}},
			{ID: "ci-2", Quantity: 2, Product: entities.Product{ID: "p-2", Price: 3}},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), pricing.Total(got))
	})

	t.Run("broken discount", func(t *testing.T) {
		_, err := pricing.Candidates([]entities.CartItem{{ID: "ci-1", Quantity: 1, Product: entities.Product{ID: "p-1", Price: 10, Discount: decimal.NewFromInt(120)}}})
		assert.ErrorIs(t, err, entities.ErrInvalidCart)
		assert.ErrorIs(t, err, entities.ErrInvalidDiscount)
	})
}
