package entities

import (
	"errors"
	"time"
)

type CheckoutInput struct {
	IdempotencyKey string          `validate:"required,max=128"`
	Shipping       ShippingAddress
	PaymentMethod  string          `validate:"omitempty,max=64"`
	// Client-side total, untrusted. Compared against the recomputed one when set.
	ExpectedTotal *int64 `validate:"omitempty,gte=0"`
}

type CheckoutResult struct {
	Order    Order
	Replayed bool
	// Set when the order committed but the cart could not be cleared inline.
	CartClearPending bool
}

type OutcomeKind string

const (
	OutcomeCommitted           OutcomeKind = "committed"
	OutcomeReplayed            OutcomeKind = "replayed"
	OutcomeNotAuthenticated    OutcomeKind = "not_authenticated"
	OutcomeInvalidInput        OutcomeKind = "invalid_input"
	OutcomeEmptyCart           OutcomeKind = "empty_cart"
	OutcomeTotalMismatch       OutcomeKind = "total_mismatch"
	OutcomeInProgress          OutcomeKind = "in_progress"
	OutcomeOrderWriteFailed    OutcomeKind = "order_write_failed"
	OutcomeCheckoutFailed      OutcomeKind = "checkout_failed"
	OutcomeOrphanOrderDetected OutcomeKind = "orphan_order_detected"
)

// CheckoutOutcome is the structured result handed to the notification sink.
type CheckoutOutcome struct {
	Kind             OutcomeKind `json:"kind"`
	CustomerID       string      `json:"customer_id,omitempty"`
	OrderID          string      `json:"order_id,omitempty"`
	Total            int64       `json:"total,omitempty"`
	IdempotencyKey   string      `json:"idempotency_key,omitempty"`
	CartClearPending bool        `json:"cart_clear_pending,omitempty"`
	Error            string      `json:"error,omitempty"`
	OccurredAt       time.Time   `json:"occurred_at"`
}

func OutcomeFromError(err error) OutcomeKind {
	switch {
	case err == nil:
		return OutcomeCommitted
	case errors.Is(err, ErrNotAuthenticated):
		return OutcomeNotAuthenticated
	case errors.Is(err, ErrInvalidCheckout), errors.Is(err, ErrInvalidCart):
		return OutcomeInvalidInput
	case errors.Is(err, ErrEmptyCart):
		return OutcomeEmptyCart
	case errors.Is(err, ErrTotalMismatch):
		return OutcomeTotalMismatch
	case errors.Is(err, ErrCheckoutInProgress):
		return OutcomeInProgress
	case errors.Is(err, ErrOrphanOrderDetected):
		return OutcomeOrphanOrderDetected
	case errors.Is(err, ErrOrderWriteFailed):
		return OutcomeOrderWriteFailed
	default:
		return OutcomeCheckoutFailed
	}
}

type ReconcileKind string

const (
	ReconcileClearCart         ReconcileKind = "clear_cart"
	ReconcileDeleteOrphanOrder ReconcileKind = "delete_orphan_order"
)

// ReconcileTask is a unit of out-of-band repair work left behind by a checkout.
type ReconcileTask struct {
	ID          string        `json:"id" validate:"required"`
	Kind        ReconcileKind `json:"kind" validate:"required,oneof=clear_cart delete_orphan_order"`
	CustomerID  string        `json:"customer_id" validate:"required_if=Kind clear_cart"`
	OrderID     string        `json:"order_id" validate:"required"`
	CartItemIDs []string      `json:"cart_item_ids,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}
