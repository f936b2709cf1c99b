package entities

import "time"

type Profile struct {
	ID       string
	FullName string
	Email    string
}

// CustomerAggregate is derived from the order ledger and never persisted.
type CustomerAggregate struct {
	CustomerID    string
	OrdersCount   int
	TotalSpent    int64
	LastOrderDate *time.Time
}
