package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/middleware"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type Checkouter interface {
	Checkout(ctx context.Context, customerID string, in entities.CheckoutInput) (entities.CheckoutResult, error)
}

type OrderGetter interface {
	GetOrderByID(ctx context.Context, customerID, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, customerID string) ([]entities.Order, error)
}

type StatsGetter interface {
	Stats(ctx context.Context) ([]entities.CustomerAggregate, error)
	StatsFor(ctx context.Context, customerID string) (entities.CustomerAggregate, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	checkout Checkouter
	orders   OrderGetter
	stats    StatsGetter
}

func NewHTTPHandler(logger *slog.Logger, checkout Checkouter, orders OrderGetter, stats StatsGetter) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		checkout: checkout,
		orders:   orders,
		stats:    stats,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/checkout", h.Checkout)

	r.Get("/orders", h.ListOrders)
	r.Get("/orders/{order_id}", h.GetOrderByID)

	r.Get("/customers/stats", h.ListStats)
	r.Get("/customers/me/stats", h.MyStats)
	r.Get("/customers/{customer_id}/stats", h.CustomerStats)
}

// Checkout оформляет заказ из корзины покупателя.
// @Summary      Оформить заказ
// @Description  Создает заказ из текущей корзины. Повтор запроса с тем же Idempotency-Key возвращает уже созданный заказ
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        X-Customer-ID    header  string           true  "Идентификатор покупателя"
// @Param        Idempotency-Key  header  string           true  "Ключ идемпотентности"
// @Param        request          body    CheckoutRequest  true  "Данные заказа"
// @Success      201  {object}  CheckoutResponse "Заказ создан"
// @Success      200  {object}  CheckoutResponse "Повтор ранее созданного заказа"
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Покупатель не определен"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже оформляется или итог изменился"
// @Failure      422  {object}  utils.ErrorResponse "Корзина пуста или некорректна"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /checkout [post]
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteErrorCode(w, "invalid request body", string(entities.OutcomeInvalidInput), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	in := CheckoutJSONToEntity(r.Header.Get(IdempotencyKeyHeader), req)
	res, err := h.checkout.Checkout(ctx, middleware.CustomerID(ctx), in)
	if err != nil {
		h.writeCheckoutError(w, r, err)
		return
	}

	status := http.StatusCreated
	if res.Replayed {
		status = http.StatusOK
	}
	utils.WriteJSON(w, CheckoutEntityToJSON(res), status)
}

func (h *HTTPHandler) writeCheckoutError(w http.ResponseWriter, r *http.Request, err error) {
	kind := string(entities.OutcomeFromError(err))

	var ve validator.ValidationErrors
	switch {
	case errors.Is(err, entities.ErrNotAuthenticated):
		utils.WriteErrorCode(w, "not authenticated", kind, http.StatusUnauthorized)
	case errors.As(err, &ve):
		utils.WriteValidationError(w, ve)
	case errors.Is(err, entities.ErrInvalidCheckout):
		utils.WriteErrorCode(w, "invalid checkout request", kind, http.StatusBadRequest)
	case errors.Is(err, entities.ErrEmptyCart):
		utils.WriteErrorCode(w, "cart is empty", kind, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrInvalidCart):
		utils.WriteErrorCode(w, "cart contains invalid items", kind, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrTotalMismatch):
		utils.WriteErrorCode(w, "cart total has changed", kind, http.StatusConflict)
	case errors.Is(err, entities.ErrCheckoutInProgress):
		utils.WriteErrorCode(w, "checkout already in progress", kind, http.StatusConflict)
	default:
		h.logger.ErrorContext(r.Context(), "checkout failed", slog.Any("error", err))
		utils.WriteErrorCode(w, "internal server error", kind, http.StatusInternalServerError)
	}
}

// ListOrders возвращает заказы текущего покупателя.
// @Summary      Мои заказы
// @Description  Возвращает оформленные заказы покупателя, новые первыми
// @Tags         orders
// @Produce      json
// @Param        X-Customer-ID  header  string  true  "Идентификатор покупателя"
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse "Покупатель не определен"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.orders.ListOrders(ctx, middleware.CustomerID(ctx))
	if errors.Is(err, entities.ErrNotAuthenticated) {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetOrderByID возвращает заказ по ID.
// @Summary      Получить заказ по ID
// @Description  Возвращает заказ текущего покупателя по его идентификатору
// @Tags         orders
// @Produce      json
// @Param        X-Customer-ID  header  string  true  "Идентификатор покупателя"
// @Param        order_id       path    string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Покупатель не определен"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.GetOrderByID(ctx, middleware.CustomerID(ctx), orderID)
	switch {
	case errors.Is(err, entities.ErrNotAuthenticated):
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListStats возвращает статистику всех покупателей.
// @Summary      Статистика покупателей
// @Description  Количество оформленных заказов, сумма покупок и дата последнего заказа для каждого покупателя
// @Tags         customers
// @Produce      json
// @Success      200  {array}   CustomerStats
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /customers/stats [get]
func (h *HTTPHandler) ListStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.stats.Stats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compute customer stats", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := make([]CustomerStats, 0, len(stats))
	for _, s := range stats {
		res = append(res, StatsEntityToJSON(s))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// MyStats возвращает статистику текущего покупателя.
// @Summary      Моя статистика
// @Tags         customers
// @Produce      json
// @Param        X-Customer-ID  header  string  true  "Идентификатор покупателя"
// @Success      200  {object}  CustomerStats
// @Failure      401  {object}  utils.ErrorResponse "Покупатель не определен"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /customers/me/stats [get]
func (h *HTTPHandler) MyStats(w http.ResponseWriter, r *http.Request) {
	h.writeStatsFor(w, r, middleware.CustomerID(r.Context()))
}

// CustomerStats возвращает статистику покупателя по ID.
// @Summary      Статистика покупателя
// @Tags         customers
// @Produce      json
// @Param        customer_id  path  string  true  "Идентификатор покупателя"
// @Success      200  {object}  CustomerStats
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /customers/{customer_id}/stats [get]
func (h *HTTPHandler) CustomerStats(w http.ResponseWriter, r *http.Request) {
	h.writeStatsFor(w, r, chi.URLParam(r, "customer_id"))
}

func (h *HTTPHandler) writeStatsFor(w http.ResponseWriter, r *http.Request, customerID string) {
	ctx := r.Context()

	stats, err := h.stats.StatsFor(ctx, customerID)
	if errors.Is(err, entities.ErrNotAuthenticated) {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compute customer stats", slog.Any("error", err), slog.String("customer_id", customerID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, StatsEntityToJSON(stats), http.StatusOK)
}
