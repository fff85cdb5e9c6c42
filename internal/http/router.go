package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/konnichiwabon/inventory/internal/auth"
	"github.com/konnichiwabon/inventory/internal/http/handlers"
	"github.com/konnichiwabon/inventory/internal/http/ratelimit"
)

// NewRouter wires all routes. Everything under the auth group requires
// a bearer token; the owner id from the token scopes every query.
func NewRouter(s *handlers.Server, issuer *auth.TokenIssuer, limiters *ratelimit.Registry, strikes *ratelimit.StrikeLog) http.Handler {
	r := chi.NewRouter()
	r.Use(RateLimitMiddleware(limiters, strikes))

	r.Post("/register", s.RegisterHandler)
	r.Post("/login", s.LoginHandler)
	r.Get("/swagger/*", httpSwagger.Handler())

	r.Group(func(pr chi.Router) {
		pr.Use(AuthMiddleware(issuer))

		pr.Get("/dashboard/metrics", s.DashboardMetricsHandler)
		pr.Get("/dashboard/recent", s.RecentProductsHandler)

		pr.Post("/products", s.CreateProductHandler)
		pr.Get("/products", s.GetProductsHandler)
		pr.Get("/products/search", s.FilterProductsHandler)
		pr.Get("/products/{id}", s.GetProductByIDHandler)
		pr.Put("/products/{id}", s.UpdateProductHandler)
		pr.Delete("/products/{id}", s.DeleteProductHandler)
	})

	return r
}
