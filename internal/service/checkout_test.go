package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	mocks "github.com/SergeyBogomolovv/checkout-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/checkout-service/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutMocks struct {
	orders    *mocks.MockOrderRepo
	carts     *mocks.MockCartRepo
	idem      *mocks.MockIdempotencyStore
	publisher *mocks.MockOutcomePublisher
	tasks     *mocks.MockTaskQueue
}

type checkouter interface {
	Checkout(ctx context.Context, customerID string, in entities.CheckoutInput) (entities.CheckoutResult, error)
}

func newCheckoutService(t *testing.T) (checkouter, checkoutMocks) {
	t.Helper()

	m := checkoutMocks{
		orders:    mocks.NewMockOrderRepo(t),
		carts:     mocks.NewMockCartRepo(t),
		idem:      mocks.NewMockIdempotencyStore(t),
		publisher: mocks.NewMockOutcomePublisher(t),
		tasks:     mocks.NewMockTaskQueue(t),
	}

	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewCheckoutService(logger, tx, m.orders, m.carts, m.idem, m.publisher, m.tasks, time.Second)
	return svc, m
}

func validInput() entities.CheckoutInput {
	return entities.CheckoutInput{
		IdempotencyKey: "k1",
		PaymentMethod:  "card",
		Shipping: entities.ShippingAddress{
			FullName:   "Ann Lee",
			Phone:      "+14155550100",
			Line1:      "1 Main St",
			City:       "Springfield",
			PostalCode: "12345",
			Country:    "US",
		},
	}
}

// Two lines: 2 x 1000 at 10% off and 1 x 500, 2300 in total.
func cartItems() []entities.CartItem {
	return []entities.CartItem{
		{ID: "ci1", CartID: "cart1", Quantity: 2, Product: entities.Product{ID: "p1", Price: 1000, Discount: decimal.NewFromInt(10)}},
		{ID: "ci2", CartID: "cart1", Quantity: 1, Product: entities.Product{ID: "p2", Price: 500, Discount: decimal.Zero}},
	}
}

func committedOrder(id string) entities.Order {
	return entities.Order{
		ID:             id,
		CustomerID:     "c1",
		Total:          2300,
		Status:         entities.OrderStatusPending,
		IdempotencyKey: "k1",
		Items: []entities.OrderItem{
			{ID: "i1", OrderID: id, ProductID: "p1", Quantity: 2, UnitPrice: 900},
			{ID: "i2", OrderID: id, ProductID: "p2", Quantity: 1, UnitPrice: 500},
		},
	}
}

func outcomeKind(kind entities.OutcomeKind) any {
	return mock.MatchedBy(func(o entities.CheckoutOutcome) bool { return o.Kind == kind })
}

func headerWithTotal(total int64) any {
	return mock.MatchedBy(func(o entities.Order) bool {
		return o.Total == total && o.Status == entities.OrderStatusPending && len(o.Items) == 0 && o.CustomerID == "c1"
	})
}

func itemsSumming(total int64) any {
	return mock.MatchedBy(func(items []entities.OrderItem) bool {
		var sum int64
		for _, it := range items {
			sum += it.Subtotal()
		}
		return len(items) == 2 && sum == total
	})
}

func TestCheckoutService_Checkout(t *testing.T) {
	dbErr := errors.New("db error")

	testCases := []struct {
		name         string
		customerID   string
		input        func() entities.CheckoutInput
		mockBehavior func(m checkoutMocks)
		wantErr      []error
		notErr       []error
		check        func(t *testing.T, res entities.CheckoutResult)
	}{
		{
			name:       "committed",
			customerID: "c1",
			input:      validInput,
			mockBehavior: func(m checkoutMocks) {
				m.idem.EXPECT().Acquire(mock.Anything, "c1", "k1").Return("", true, nil)
				m.carts.EXPECT().GetCartItems(mock.Anything, "c1").Return(cartItems(), nil)
				m.orders.EXPECT().CreateOrder(mock.Anything, headerWithTotal(2300)).Return(nil)
				m.orders.EXPECT().SaveItems(mock.Anything, mock.Anything, itemsSumming(2300)).Return(nil)
				m.carts.EXPECT().DeleteCartItems(mock.Anything, "c1", []string{"ci1", "ci2"}).Return(nil)
				m.idem.EXPECT().Complete(mock.Anything, "c1", "k1", mock.Anything).Return(nil)
				m.publisher.EXPECT().PublishOutcome(mock.Anything, outcomeKind(entities.OutcomeCommitted)).Return(nil)
			},
			check: func(t *testing.T, res entities.CheckoutResult) {
				assert.False(t, res.Replayed)
				assert.False(t, res.CartClearPending)
				assert.Equal(t, int64(2300), res.Order.Total)
				assert.Equal(t, "card", res.Order.PaymentMethod)
				require.Len(t, res.Order.Items, 2)
				assert.Equal(t, int64(900), res.Order.Items[0].UnitPrice)
				assert.Equal(t, res.Order.ID, res.Order.Items[0].OrderID)
			},
		},
		{
			name:       "expected total matches",
			customerID: "c1",
			input: func() entities.CheckoutInput {
				in := validInput()
				total := int64(2300)
				in.ExpectedTotal = &total
				return in
			},
			mockBehavior: func(m checkoutMocks) {
				m.idem.EXPECT().Acquire(mock.Anything, "c1", "k1").Return("", true, nil)
				m.carts.EXPECT().GetCartItems(mock.Anything, "c1").Return(cartItems(), nil)
				m.orders.EXPECT().CreateOrder(mock.Anything, headerWithTotal(2300)).Return(nil)
				m.orders.EXPECT().SaveItems(mock.Anything, mock.Anything, itemsSumming(2300)).Return(nil)
				m.carts.EXPECT().DeleteCartItems(mock.Anything, "c1", []string{"ci1", "ci2"}).Return(nil)
				m.idem.EXPECT().Complete(mock.Anything, "c1", "k1", mock.Anything).Return(nil)
				m.publisher.EXPECT().PublishOutcome(mock.Anything, outcomeKind(entities.OutcomeCommitted)).Return(nil)
			},
		},
		{
			name:       "not authenticated writes nothing",
			customerID: "",
			input:      validInput,
			mockBehavior: func(m checkoutMocks) {
				m.publisher.EXPECT().PublishOutcome(mock.Anything, outcomeKind(entities.OutcomeNotAuthenticated)).Return(nil)
			},
			wantErr: []error{entities.ErrNotAuthenticated},
		},
		{
			name:       "missing idempotency key",
			customerID: "c1",
			input: func() entities.CheckoutInput {
				in := validInput()
				in.IdempotencyKey = ""
				return in
			},
			mockBehavior: func(m checkoutMocks) {
				m.publisher.EXPECT().PublishOutcome(mock.Anything, outcomeKind(entities.OutcomeInvalidInput)).Return(nil)
			},
			wantErr: []error{entities.ErrInvalidCheckout},
		},
		{
			name:       "invalid shipping address",
			customerID: "c1",
			input: func() entities.CheckoutInput {
				in := validInput()
				in.Shipping.Country = "Neverland"
				return in
			},
			mockBehavior: func(m checkoutMocks) {
				m.publisher.EXPECT().PublishOutcome(mock.Anything, outcomeKind(entities.OutcomeInvalidInput)).Return(nil)
			},
			wantErr: []error{entities.ErrInvalidCheckout},
		},
		{
			name:       "attempt already in flight",
			customerID: "c1",
			input:      validInput,
			mockBehavior: func(m checkoutMocks) {
				m.idem.EXPECT().Acquire(mock.Anything, "c1", "k1").Return("", false, nil)
				m.publisher.EXPECT().PublishOutcome(mock.Anything, outcomeKind(entities.OutcomeInProgress)).Return(nil)
			},
			wantErr: []error{entities.ErrCheckoutInProgress},
		},
		{
			name:       "replayed from idempotency store",
			customerID: "c1",
			input:      validInput,
			mockBehavior: func(m checkoutMocks) {
				m.idem.EXPECT().Acquire(mock.Anything, "c1", "k1").Return("o1", false, nil)
				m.orders.EXPECT().GetOrderByIdempotencyKey(mock.Anything, "c1", "k1").Return(committedOrder("o1"), nil)
				m.publisher.EXPECT().PublishOutcome(mock.Anything, outcomeKind(entities.OutcomeReplayed)).Return(nil)
			},
			check: func(t *testing.T, res entities.CheckoutResult) {
				assert.True(t, res.Replayed)
				assert.Equal(t, "o1", res.Order.ID)
			},
		},
		{
			name:       "empty cart",
			customerID: "c1",
			input:      validInput,
			mockBehavior: func(m checkoutMocks) {
				m.idem.EXPECT().Acquire(mock.Anything, "c1", "k1").Return("", true, nil)
				m.carts.EXPECT().GetCartItems(mock.Anything, "c1").Return([]entities.CartItem{}, nil)
				m.idem.EXPECT().Release(mock.Anything, "c1", "k1").Return(nil)
				m.publisher.EXPECT().PublishOutcome(mock.Anything, outcomeKind(entities.OutcomeEmptyCart)).Return(nil)
			},
			wantErr: []error{entities.ErrEmptyCart},
		},
		{
			name:       "non-positive quantity",
			customerID: "c1",
			input:      validInput,
			mockBehavior: func(m checkoutMocks) {
				items := cartItems()
				items[1].Quantity = 0
				m.idem.EXPECT().Acquire(mock.Anything, "c1", "k1").Return("", true, nil)
				m.carts.EXPECT().GetCartItems(mock.Anything, "c1").Return(items, nil)
				m.idem.EXPECT().Release(mock.Anything, "c1", "k1").Return(nil)
				m.publisher.EXPECT().PublishOutcome(mock.Anything, outcomeKind(entities.OutcomeInvalidInput)).Return(nil)
			},
			wantErr: []error{entities.ErrInvalidCart},
		},
		{
			name:       "client total mismatch",
			customerID: "c1",
			input: func() entities.CheckoutInput {
				in := validInput()
				total := int64(100)
				in.ExpectedTotal = &total
				return in
			},
			mockBehavior: func(m checkoutMocks) {
				m.idem.EXPECT().Acquire(mock.Anything, "c1", "k1").Return("", true, nil)
				m.carts.EXPECT().GetCartItems(mock.Anything, "c1").Return(cartItems(), nil)
				m.idem.EXPECT().Release(mock.Anything, "c1", "k1").Return(nil)
				m.publisher.EXPECT().PublishOutcome(mock.Anything, outcomeKind(entities.OutcomeTotalMismatch)).Return(nil)
			},
			wantErr: []error{entities.ErrTotalMismatch},
		},
		{
			name:       "order write fails",
			customerID: "c1",
			input:      validInput,
			mockBehavior: func(m checkoutMocks) {
				m.idem.EXPECT().Acquire(mock.Anything, "c1", "k1").Return("", true, nil)
				m.carts.EXPECT().GetCartItems(mock.Anything, "c1").Return(cartItems(), nil)
				m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(dbErr)
				m.idem.EXPECT().Release(mock.Anything, "c1", "k1").Return(nil)
				m.publisher.EXPECT().PublishOutcome(mock.Anything, outcomeKind(entities.OutcomeOrderWriteFailed)).Return(nil)
			},
			wantErr: []error{entities.ErrOrderWriteFailed, dbErr},
		},
		{
			name:       "item write fails and order is compensated",
			customerID: "c1",
			input:      validInput,
			mockBehavior: func(m checkoutMocks) {
				var orderID string
				m.idem.EXPECT().Acquire(mock.Anything, "c1", "k1").Return("", true, nil)
				m.carts.EXPECT().GetCartItems(mock.Anything, "c1").Return(cartItems(), nil)
				m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Run(func(_ context.Context, o entities.Order) { orderID = o.ID }).
					Return(nil)
				m.orders.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(dbErr)
				m.orders.EXPECT().DeleteOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, id string) error {
						if id != orderID {
							return fmt.Errorf("unexpected order %s", id)
						}
						return nil
					})
				m.idem.EXPECT().Release(mock.Anything, "c1", "k1").Return(nil)
				m.publisher.EXPECT().PublishOutcome(mock.Anything, outcomeKind(entities.OutcomeCheckoutFailed)).Return(nil)
			},
			wantErr: []error{entities.ErrCheckoutFailed, entities.ErrItemWriteFailed, dbErr},
			notErr:  []error{entities.ErrOrphanOrderDetected},
		},
		{
			name:       "compensation fails and orphan is reported",
			customerID: "c1",
			input:      validInput,
			mockBehavior: func(m checkoutMocks) {
				m.idem.EXPECT().Acquire(mock.Anything, "c1", "k1").Return("", true, nil)
				m.carts.EXPECT().GetCartItems(mock.Anything, "c1").Return(cartItems(), nil)
				m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
				m.orders.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(dbErr)
				m.orders.EXPECT().DeleteOrder(mock.Anything, mock.Anything).Return(errors.New("connection lost"))
				m.tasks.EXPECT().Enqueue(mock.Anything, mock.MatchedBy(func(task entities.ReconcileTask) bool {
					return task.Kind == entities.ReconcileDeleteOrphanOrder && task.OrderID != "" && task.ID != ""
				})).Return(nil)
				m.idem.EXPECT().Release(mock.Anything, "c1", "k1").Return(nil)
				m.publisher.EXPECT().PublishOutcome(mock.Anything, outcomeKind(entities.OutcomeOrphanOrderDetected)).Return(nil)
			},
			wantErr: []error{entities.ErrCheckoutFailed, entities.ErrOrphanOrderDetected, entities.ErrCompensationFailed},
		},
		{
			name:       "cart clear failure keeps the order committed",
			customerID: "c1",
			input:      validInput,
			mockBehavior: func(m checkoutMocks) {
				m.idem.EXPECT().Acquire(mock.Anything, "c1", "k1").Return("", true, nil)
				m.carts.EXPECT().GetCartItems(mock.Anything, "c1").Return(cartItems(), nil)
				m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
				m.orders.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				m.carts.EXPECT().DeleteCartItems(mock.Anything, "c1", []string{"ci1", "ci2"}).Return(dbErr)
				m.tasks.EXPECT().Enqueue(mock.Anything, mock.MatchedBy(func(task entities.ReconcileTask) bool {
					return task.Kind == entities.ReconcileClearCart &&
						task.CustomerID == "c1" &&
						assert.ObjectsAreEqual([]string{"ci1", "ci2"}, task.CartItemIDs)
				})).Return(nil)
				m.idem.EXPECT().Complete(mock.Anything, "c1", "k1", mock.Anything).Return(nil)
				m.publisher.EXPECT().PublishOutcome(mock.Anything, mock.MatchedBy(func(o entities.CheckoutOutcome) bool {
					return o.Kind == entities.OutcomeCommitted && o.CartClearPending
				})).Return(nil)
			},
			check: func(t *testing.T, res entities.CheckoutResult) {
				assert.True(t, res.CartClearPending)
				assert.Equal(t, int64(2300), res.Order.Total)
			},
		},
		{
			name:       "duplicate detected by the store replays the first order",
			customerID: "c1",
			input:      validInput,
			mockBehavior: func(m checkoutMocks) {
				m.idem.EXPECT().Acquire(mock.Anything, "c1", "k1").Return("", true, nil)
				m.carts.EXPECT().GetCartItems(mock.Anything, "c1").Return(cartItems(), nil)
				m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(fmt.Errorf("%w: key k1", entities.ErrDuplicateCheckout))
				m.orders.EXPECT().GetOrderByIdempotencyKey(mock.Anything, "c1", "k1").Return(committedOrder("o1"), nil)
				m.idem.EXPECT().Complete(mock.Anything, "c1", "k1", "o1").Return(nil)
				m.publisher.EXPECT().PublishOutcome(mock.Anything, outcomeKind(entities.OutcomeReplayed)).Return(nil)
			},
			check: func(t *testing.T, res entities.CheckoutResult) {
				assert.True(t, res.Replayed)
				assert.Equal(t, "o1", res.Order.ID)
			},
		},
		{
			name:       "duplicate of an attempt still writing items",
			customerID: "c1",
			input:      validInput,
			mockBehavior: func(m checkoutMocks) {
				m.idem.EXPECT().Acquire(mock.Anything, "c1", "k1").Return("", true, nil)
				m.carts.EXPECT().GetCartItems(mock.Anything, "c1").Return(cartItems(), nil)
				m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(fmt.Errorf("%w: key k1", entities.ErrDuplicateCheckout))
				m.orders.EXPECT().GetOrderByIdempotencyKey(mock.Anything, "c1", "k1").
					Return(entities.Order{ID: "o1", CustomerID: "c1"}, nil)
				m.idem.EXPECT().Release(mock.Anything, "c1", "k1").Return(nil)
				m.publisher.EXPECT().PublishOutcome(mock.Anything, outcomeKind(entities.OutcomeInProgress)).Return(nil)
			},
			wantErr: []error{entities.ErrCheckoutInProgress},
		},
		{
			name:       "idempotency store down fails open",
			customerID: "c1",
			input:      validInput,
			mockBehavior: func(m checkoutMocks) {
				redisErr := errors.New("redis down")
				m.idem.EXPECT().Acquire(mock.Anything, "c1", "k1").Return("", false, redisErr)
				m.carts.EXPECT().GetCartItems(mock.Anything, "c1").Return(cartItems(), nil)
				m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
				m.orders.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				m.carts.EXPECT().DeleteCartItems(mock.Anything, "c1", mock.Anything).Return(nil)
				m.idem.EXPECT().Complete(mock.Anything, "c1", "k1", mock.Anything).Return(redisErr)
				m.publisher.EXPECT().PublishOutcome(mock.Anything, outcomeKind(entities.OutcomeCommitted)).Return(nil)
			},
		},
		{
			name:       "publish failure does not fail the checkout",
			customerID: "c1",
			input:      validInput,
			mockBehavior: func(m checkoutMocks) {
				m.idem.EXPECT().Acquire(mock.Anything, "c1", "k1").Return("", true, nil)
				m.carts.EXPECT().GetCartItems(mock.Anything, "c1").Return(cartItems(), nil)
				m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
				m.orders.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				m.carts.EXPECT().DeleteCartItems(mock.Anything, "c1", mock.Anything).Return(nil)
				m.idem.EXPECT().Complete(mock.Anything, "c1", "k1", mock.Anything).Return(nil)
				m.publisher.EXPECT().PublishOutcome(mock.Anything, mock.Anything).Return(errors.New("broker down"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newCheckoutService(t)
			tc.mockBehavior(m)

			res, err := svc.Checkout(context.Background(), tc.customerID, tc.input())

			if len(tc.wantErr) > 0 {
				require.Error(t, err)
				for _, want := range tc.wantErr {
					assert.ErrorIs(t, err, want)
				}
				for _, notWant := range tc.notErr {
					assert.NotErrorIs(t, err, notWant)
				}
				return
			}

			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, res)
			}
		})
	}
}

func TestCheckoutService_CompensatesAfterCancellation(t *testing.T) {
	svc, m := newCheckoutService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.idem.EXPECT().Acquire(mock.Anything, "c1", "k1").Return("", true, nil)
	m.carts.EXPECT().GetCartItems(mock.Anything, "c1").Return(cartItems(), nil)
	m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
	m.orders.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, _ []entities.OrderItem) error {
			cancel()
			return ctx.Err()
		})
	m.orders.EXPECT().DeleteOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string) error {
			return ctx.Err()
		})
	m.idem.EXPECT().Release(mock.Anything, "c1", "k1").Return(nil)
	m.publisher.EXPECT().PublishOutcome(mock.Anything, outcomeKind(entities.OutcomeCheckoutFailed)).Return(nil)

	_, err := svc.Checkout(ctx, "c1", validInput())

	assert.ErrorIs(t, err, entities.ErrItemWriteFailed)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, entities.ErrOrphanOrderDetected)
}

func TestCommitState_String(t *testing.T) {
	assert.Equal(t, "idle", service.StateIdle.String())
	assert.Equal(t, "order_persisted", service.StateOrderPersisted.String())
	assert.Equal(t, "items_persisted", service.StateItemsPersisted.String())
	assert.Equal(t, "committed", service.StateCommitted.String())
	assert.Equal(t, "failed", service.StateFailed.String())
	assert.Equal(t, "state(42)", service.CommitState(42).String())
}
