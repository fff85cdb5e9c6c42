package handlers

import (
	"net/http"
	"time"

	"github.com/konnichiwabon/inventory/internal/metrics"
)

// recentProductsLimit is the number of rows in the stock-levels widget.
const recentProductsLimit = 5

// DashboardMetricsHandler godoc
// @Summary Aggregate inventory metrics for the caller's dashboard
// @Description Total products, total inventory value, stock-level buckets and percentages, and the 12-week creation series.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} metrics.Snapshot
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/metrics [get]
func (s *Server) DashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.ListByOwner(r.Context(), OwnerID(r))
	if err != nil {
		s.log.Errorf("failed to fetch product snapshot: %v", err)
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}

	snapshot := metrics.Compute(products, time.Now())
	s.writeJSON(w, http.StatusOK, snapshot)
}

// RecentProductsHandler godoc
// @Summary Newest products with their stock level
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} RecentProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/recent [get]
func (s *Server) RecentProductsHandler(w http.ResponseWriter, r *http.Request) {
	recent, err := s.products.RecentByOwner(r.Context(), OwnerID(r), recentProductsLimit)
	if err != nil {
		s.log.Errorf("failed to fetch recent products: %v", err)
		http.Error(w, "failed to fetch recent products", http.StatusInternalServerError)
		return
	}

	resp := make([]RecentProductResponse, len(recent))
	for i, p := range recent {
		resp[i] = RecentProductResponse{
			Id:         p.ID,
			Name:       p.Name,
			Sku:        p.Sku,
			Quantity:   p.Quantity,
			StockLevel: metrics.ClassifyProduct(p).String(),
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}
