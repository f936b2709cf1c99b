package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/checkout-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/checkout-service/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const orderID = "6f1c2a8e-3b9d-4c47-9a51-2f0e8d7b6c11"

type handlerMocks struct {
	checkout *mocks.MockCheckouter
	orders   *mocks.MockOrderGetter
	stats    *mocks.MockStatsGetter
}

func newRouter(t *testing.T) (http.Handler, handlerMocks) {
	t.Helper()
	m := handlerMocks{
		checkout: mocks.NewMockCheckouter(t),
		orders:   mocks.NewMockOrderGetter(t),
		stats:    mocks.NewMockStatsGetter(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, m.checkout, m.orders, m.stats)

	r := chi.NewRouter()
	r.Use(middleware.Identity)
	h.Init(r)
	return r, m
}

func do(t *testing.T, r http.Handler, req *http.Request) (int, string) {
	t.Helper()
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(body)
}

func testOrder() entities.Order {
	return entities.Order{
		ID:         orderID,
		CustomerID: "c1",
		Total:      2300,
		Status:     entities.OrderStatusPending,
		CreatedAt:  time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
		Items: []entities.OrderItem{
			{ID: "i1", OrderID: orderID, ProductID: "p1", Quantity: 2, UnitPrice: 900},
			{ID: "i2", OrderID: orderID, ProductID: "p2", Quantity: 1, UnitPrice: 500},
		},
	}
}

const checkoutBody = `{
	"shipping": {
		"full_name": "Ann Lee",
		"phone": "+14155550100",
		"line1": "1 Main St",
		"city": "Springfield",
		"postal_code": "12345",
		"country": "US"
	},
	"payment_method": "card",
	"expected_total": 2300
}`

func TestHTTPHandler_Checkout(t *testing.T) {
	testCases := []struct {
		name         string
		customerID   string
		body         string
		mockBehavior func(svc *mocks.MockCheckouter)
		wantStatus   int
		wantBody     string
	}{
		{
			name:       "created",
			customerID: "c1",
			body:       checkoutBody,
			mockBehavior: func(svc *mocks.MockCheckouter) {
				svc.EXPECT().
					Checkout(mock.Anything, "c1", mock.MatchedBy(func(in entities.CheckoutInput) bool {
						return in.IdempotencyKey == "k1" &&
							in.PaymentMethod == "card" &&
							in.Shipping.Country == "US" &&
							in.ExpectedTotal != nil && *in.ExpectedTotal == 2300
					})).
					Return(entities.CheckoutResult{Order: testOrder()}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"total":2300`,
		},
		{
			name:       "replayed",
			customerID: "c1",
			body:       checkoutBody,
			mockBehavior: func(svc *mocks.MockCheckouter) {
				svc.EXPECT().Checkout(mock.Anything, "c1", mock.Anything).
					Return(entities.CheckoutResult{Order: testOrder(), Replayed: true}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"replayed":true`,
		},
		{
			name:         "broken body",
			customerID:   "c1",
			body:         `{"shipping":`,
			mockBehavior: func(_ *mocks.MockCheckouter) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name:         "invalid shipping",
			customerID:   "c1",
			body:         strings.Replace(checkoutBody, `"US"`, `"Neverland"`, 1),
			mockBehavior: func(_ *mocks.MockCheckouter) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"CheckoutRequest.Shipping.Country":"iso3166_1_alpha2"`,
		},
		{
			name:       "anonymous",
			customerID: "",
			body:       checkoutBody,
			mockBehavior: func(svc *mocks.MockCheckouter) {
				svc.EXPECT().Checkout(mock.Anything, "", mock.Anything).
					Return(entities.CheckoutResult{}, entities.ErrNotAuthenticated).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"code":"not_authenticated"`,
		},
		{
			name:       "missing idempotency key",
			customerID: "c1",
			body:       checkoutBody,
			mockBehavior: func(svc *mocks.MockCheckouter) {
				verr := validator.New().Struct(entities.CheckoutInput{})
				svc.EXPECT().Checkout(mock.Anything, "c1", mock.Anything).
					Return(entities.CheckoutResult{}, fmt.Errorf("%w: %w", entities.ErrInvalidCheckout, verr)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"CheckoutInput.IdempotencyKey":"required"`,
		},
		{
			name:       "empty cart",
			customerID: "c1",
			body:       checkoutBody,
			mockBehavior: func(svc *mocks.MockCheckouter) {
				svc.EXPECT().Checkout(mock.Anything, "c1", mock.Anything).
					Return(entities.CheckoutResult{}, entities.ErrEmptyCart).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"code":"empty_cart"`,
		},
		{
			name:       "total mismatch",
			customerID: "c1",
			body:       checkoutBody,
			mockBehavior: func(svc *mocks.MockCheckouter) {
				svc.EXPECT().Checkout(mock.Anything, "c1", mock.Anything).
					Return(entities.CheckoutResult{}, fmt.Errorf("%w: expected 2300, computed 2100", entities.ErrTotalMismatch)).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"total_mismatch"`,
		},
		{
			name:       "in progress",
			customerID: "c1",
			body:       checkoutBody,
			mockBehavior: func(svc *mocks.MockCheckouter) {
				svc.EXPECT().Checkout(mock.Anything, "c1", mock.Anything).
					Return(entities.CheckoutResult{}, entities.ErrCheckoutInProgress).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"in_progress"`,
		},
		{
			name:       "orphan order",
			customerID: "c1",
			body:       checkoutBody,
			mockBehavior: func(svc *mocks.MockCheckouter) {
				err := errors.Join(entities.ErrCheckoutFailed, entities.ErrOrphanOrderDetected)
				svc.EXPECT().Checkout(mock.Anything, "c1", mock.Anything).
					Return(entities.CheckoutResult{}, err).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"orphan_order_detected"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newRouter(t)
			tc.mockBehavior(m.checkout)

			req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(tc.body))
			req.Header.Set(handler.IdempotencyKeyHeader, "k1")
			if tc.customerID != "" {
				req.Header.Set(middleware.CustomerIDHeader, tc.customerID)
			}

			status, body := do(t, r, req)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderGetter)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: orderID,
			mockBehavior: func(svc *mocks.MockOrderGetter) {
				svc.EXPECT().GetOrderByID(mock.Anything, "c1", orderID).Return(testOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"subtotal":1800`,
		},
		{
			name:         "invalid id",
			orderID:      "not-a-uuid",
			mockBehavior: func(_ *mocks.MockOrderGetter) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:    "not found",
			orderID: orderID,
			mockBehavior: func(svc *mocks.MockOrderGetter) {
				svc.EXPECT().GetOrderByID(mock.Anything, "c1", orderID).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "internal error",
			orderID: orderID,
			mockBehavior: func(svc *mocks.MockOrderGetter) {
				svc.EXPECT().GetOrderByID(mock.Anything, "c1", orderID).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newRouter(t)
			tc.mockBehavior(m.orders)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+tc.orderID, nil)
			req.Header.Set(middleware.CustomerIDHeader, "c1")

			status, body := do(t, r, req)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, orderID, resp["id"])
			}
		})
	}
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, m := newRouter(t)
		m.orders.EXPECT().ListOrders(mock.Anything, "c1").Return([]entities.Order{testOrder()}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set(middleware.CustomerIDHeader, "c1")

		status, body := do(t, r, req)
		assert.Equal(t, http.StatusOK, status)

		var resp []handler.Order
		require.NoError(t, json.Unmarshal([]byte(body), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, orderID, resp[0].ID)
	})

	t.Run("anonymous", func(t *testing.T) {
		r, m := newRouter(t)
		m.orders.EXPECT().ListOrders(mock.Anything, "").Return(nil, entities.ErrNotAuthenticated).Once()

		status, _ := do(t, r, httptest.NewRequest(http.MethodGet, "/orders", nil))
		assert.Equal(t, http.StatusUnauthorized, status)
	})
}

func TestHTTPHandler_Stats(t *testing.T) {
	last := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

	t.Run("all customers", func(t *testing.T) {
		r, m := newRouter(t)
		m.stats.EXPECT().Stats(mock.Anything).Return([]entities.CustomerAggregate{
			{CustomerID: "c1", OrdersCount: 2, TotalSpent: 1700, LastOrderDate: &last},
			{CustomerID: "c2"},
		}, nil).Once()

		status, body := do(t, r, httptest.NewRequest(http.MethodGet, "/customers/stats", nil))
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `[
			{"customer_id":"c1","orders_count":2,"total_spent":1700,"last_order_date":"2026-01-20T00:00:00Z"},
			{"customer_id":"c2","orders_count":0,"total_spent":0,"last_order_date":null}
		]`, body)
	})

	t.Run("me", func(t *testing.T) {
		r, m := newRouter(t)
		m.stats.EXPECT().StatsFor(mock.Anything, "c1").
			Return(entities.CustomerAggregate{CustomerID: "c1", OrdersCount: 2, TotalSpent: 1700, LastOrderDate: &last}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/customers/me/stats", nil)
		req.Header.Set(middleware.CustomerIDHeader, "c1")

		status, body := do(t, r, req)
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"total_spent":1700`)
	})

	t.Run("me anonymous", func(t *testing.T) {
		r, m := newRouter(t)
		m.stats.EXPECT().StatsFor(mock.Anything, "").
			Return(entities.CustomerAggregate{}, entities.ErrNotAuthenticated).Once()

		status, _ := do(t, r, httptest.NewRequest(http.MethodGet, "/customers/me/stats", nil))
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("by id", func(t *testing.T) {
		r, m := newRouter(t)
		m.stats.EXPECT().StatsFor(mock.Anything, "c2").
			Return(entities.CustomerAggregate{CustomerID: "c2"}, nil).Once()

		status, body := do(t, r, httptest.NewRequest(http.MethodGet, "/customers/c2/stats", nil))
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"customer_id":"c2"`)
	})

	t.Run("store error", func(t *testing.T) {
		r, m := newRouter(t)
		m.stats.EXPECT().Stats(mock.Anything).Return(nil, errors.New("db error")).Once()

		status, _ := do(t, r, httptest.NewRequest(http.MethodGet, "/customers/stats", nil))
		assert.Equal(t, http.StatusInternalServerError, status)
	})
}
