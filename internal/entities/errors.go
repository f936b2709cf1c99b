package entities

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidOrder  = errors.New("invalid order")

	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCheckout    = errors.New("invalid checkout input")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidCart        = errors.New("invalid cart item")
	ErrTotalMismatch      = errors.New("order total does not match line items")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
	ErrDuplicateCheckout  = errors.New("duplicate checkout attempt")

	ErrOrderWriteFailed    = errors.New("order write failed")
	ErrItemWriteFailed     = errors.New("order items write failed")
	ErrCheckoutFailed      = errors.New("checkout failed")
	ErrCompensationFailed  = errors.New("compensation failed")
	ErrOrphanOrderDetected = errors.New("orphan order detected")
	ErrCartClearFailed     = errors.New("cart clear failed")

	ErrInvalidReconcileTask = errors.New("invalid reconcile task")

	ErrInvalidPrice    = errors.New("price must be non-negative")
	ErrInvalidDiscount = errors.New("discount must be within [0, 100]")
)
