package handler

import (
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
)

// ShippingAddress адрес доставки
type ShippingAddress struct {
	FullName   string `json:"full_name" validate:"required,max=200"`
	Phone      string `json:"phone" validate:"required,e164"`
	Line1      string `json:"line1" validate:"required,max=200"`
	Line2      string `json:"line2,omitempty" validate:"max=200"`
	City       string `json:"city" validate:"required,max=100"`
	Region     string `json:"region,omitempty" validate:"max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=20"`
	Country    string `json:"country" validate:"required,iso3166_1_alpha2"`
}

// CheckoutRequest тело запроса на оформление заказа
type CheckoutRequest struct {
	Shipping      ShippingAddress `json:"shipping"`
	PaymentMethod string          `json:"payment_method,omitempty" validate:"omitempty,max=64"`
	// Итог, который видел клиент, в минимальных единицах валюты
	ExpectedTotal *int64 `json:"expected_total,omitempty" validate:"omitempty,gte=0"`
}

// OrderItem позиция заказа
type OrderItem struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Subtotal  int64  `json:"subtotal"`
}

// Order заказ
type Order struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	Total         int64           `json:"total"`
	Status        string          `json:"status"`
	Shipping      ShippingAddress `json:"shipping"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	Items         []OrderItem     `json:"items"`
}

// CheckoutResponse результат оформления заказа
type CheckoutResponse struct {
	Order            Order `json:"order"`
	Replayed         bool  `json:"replayed"`
	CartClearPending bool  `json:"cart_clear_pending"`
}

// CustomerStats статистика покупателя
type CustomerStats struct {
	CustomerID    string     `json:"customer_id"`
	OrdersCount   int        `json:"orders_count"`
	TotalSpent    int64      `json:"total_spent"`
	LastOrderDate *time.Time `json:"last_order_date"`
}

func ShippingJSONToEntity(s ShippingAddress) entities.ShippingAddress {
	return entities.ShippingAddress{
		FullName:   s.FullName,
		Phone:      s.Phone,
		Line1:      s.Line1,
		Line2:      s.Line2,
		City:       s.City,
		Region:     s.Region,
		PostalCode: s.PostalCode,
		Country:    s.Country,
	}
}

func ShippingEntityToJSON(s entities.ShippingAddress) ShippingAddress {
	return ShippingAddress{
		FullName:   s.FullName,
		Phone:      s.Phone,
		Line1:      s.Line1,
		Line2:      s.Line2,
		City:       s.City,
		Region:     s.Region,
		PostalCode: s.PostalCode,
		Country:    s.Country,
	}
}

func CheckoutJSONToEntity(idempotencyKey string, req CheckoutRequest) entities.CheckoutInput {
	return entities.CheckoutInput{
		IdempotencyKey: idempotencyKey,
		Shipping:       ShippingJSONToEntity(req.Shipping),
		PaymentMethod:  req.PaymentMethod,
		ExpectedTotal:  req.ExpectedTotal,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal(),
		})
	}

	return Order{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		Total:         o.Total,
		Status:        string(o.Status),
		Shipping:      ShippingEntityToJSON(o.Shipping),
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt,
		Items:         items,
	}
}

func CheckoutEntityToJSON(res entities.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		Order:            OrderEntityToJSON(res.Order),
		Replayed:         res.Replayed,
		CartClearPending: res.CartClearPending,
	}
}

func StatsEntityToJSON(a entities.CustomerAggregate) CustomerStats {
	return CustomerStats{
		CustomerID:    a.CustomerID,
		OrdersCount:   a.OrdersCount,
		TotalSpent:    a.TotalSpent,
		LastOrderDate: a.LastOrderDate,
	}
}
