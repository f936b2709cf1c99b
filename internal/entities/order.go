package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
)

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

type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	// Copied from the catalog at commit time, never re-read.
	UnitPrice int64
}

func (i OrderItem) Subtotal() int64 {
	return int64(i.Quantity) * i.UnitPrice
}

type Order struct {
	ID             string
	CustomerID     string
	Total          int64
	Status         OrderStatus
	Shipping       ShippingAddress
	PaymentMethod  string
	IdempotencyKey string
	CreatedAt      time.Time

	Items []OrderItem
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(ShippingAddress{})
}
