package middleware

import (
	"context"
	"net/http"
	"strings"
)

// RenterHeader carries the renter identity resolved by the auth proxy in
// front of this service. The service trusts it as-is.
const RenterHeader = "X-Booked-By"

type renterKey struct{}

func RenterIdentity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			renter := strings.TrimSpace(r.Header.Get(RenterHeader))
			if renter != "" {
				ctx := context.WithValue(r.Context(), renterKey{}, renter)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RenterFrom returns the renter identity attached to the request, or ""
// when the request arrived without one.
func RenterFrom(r *http.Request) string {
	if renter, ok := r.Context().Value(renterKey{}).(string); ok {
		return renter
	}
	return strings.TrimSpace(r.Header.Get(RenterHeader))
}
