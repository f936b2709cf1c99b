package middleware

import (
	"context"
	"net/http"
	"strings"
)

// CustomerIDHeader is set by the gateway after it authenticates the caller.
const CustomerIDHeader = "X-Customer-ID"

type customerKey struct{}

func WithCustomerID(ctx context.Context, customerID string) context.Context {
	return context.WithValue(ctx, customerKey{}, customerID)
}

// CustomerID returns the authenticated customer, or "" for anonymous requests.
func CustomerID(ctx context.Context) string {
	id, _ := ctx.Value(customerKey{}).(string)
	return id
}

func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := strings.TrimSpace(r.Header.Get(CustomerIDHeader)); id != "" {
			r = r.WithContext(WithCustomerID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
