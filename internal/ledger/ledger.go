// Package ledger derives per-customer statistics from committed orders.
package ledger

import (
	"slices"
	"strings"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
)

// Aggregate folds orders into one aggregate per customer in a single pass.
// Every id in customerIDs is reported even without orders; customers that only
// appear in orders are reported too. The result is sorted by customer id.
func Aggregate(customerIDs []string, orders []entities.Order) []entities.CustomerAggregate {
	byCustomer := make(map[string]*entities.CustomerAggregate, len(customerIDs))
	for _, id := range customerIDs {
		if _, ok := byCustomer[id]; !ok {
			byCustomer[id] = &entities.CustomerAggregate{CustomerID: id}
		}
	}

	for _, o := range orders {
		agg, ok := byCustomer[o.CustomerID]
		if !ok {
			agg = &entities.CustomerAggregate{CustomerID: o.CustomerID}
			byCustomer[o.CustomerID] = agg
		}

		agg.OrdersCount++
		agg.TotalSpent += o.Total
		if agg.LastOrderDate == nil || o.CreatedAt.After(*agg.LastOrderDate) {
			created := o.CreatedAt
			agg.LastOrderDate = &created
		}
	}

	out := make([]entities.CustomerAggregate, 0, len(byCustomer))
	for _, agg := range byCustomer {
		out = append(out, *agg)
	}
	slices.SortFunc(out, func(a, b entities.CustomerAggregate) int {
		return strings.Compare(a.CustomerID, b.CustomerID)
	})
	return out
}

// For returns the aggregate of a single customer.
func For(customerID string, orders []entities.Order) entities.CustomerAggregate {
	own := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if o.CustomerID == customerID {
			own = append(own, o)
		}
	}
	return Aggregate([]string{customerID}, own)[0]
}
