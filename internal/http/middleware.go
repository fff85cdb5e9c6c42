package http

import (
	"net"
	"net/http"
	"strings"

	"github.com/konnichiwabon/inventory/internal/auth"
	"github.com/konnichiwabon/inventory/internal/http/handlers"
	"github.com/konnichiwabon/inventory/internal/http/ratelimit"
)

// AuthMiddleware rejects requests without a valid bearer token and
// stores the token's user id on the request context.
func AuthMiddleware(issuer *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorization := r.Header.Get("Authorization")
			if !strings.HasPrefix(authorization, "Bearer ") {
				http.Error(w, "missing or invalid token", http.StatusUnauthorized)
				return
			}

			claims, err := issuer.Parse(strings.TrimPrefix(authorization, "Bearer "))
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			userID, err := auth.UserID(claims)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := handlers.WithOwnerID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RateLimitMiddleware throttles per client IP and records rejected
// requests in the strike log.
func RateLimitMiddleware(limiters *ratelimit.Registry, strikes *ratelimit.StrikeLog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !limiters.Visitor(ip).Allow() {
				strikes.Record(r.Context(), ip, r.URL.Path)
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
