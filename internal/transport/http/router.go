package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vladislavdragonenkov/shop/internal/metrics"
)

// NewRouter собирает HTTP API сервиса поверх chi.
func NewRouter(products *ProductHandler, orders *OrderHandler, httpMetrics *metrics.HTTPMetrics) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	if httpMetrics != nil {
		r.Use(metricsMiddleware(httpMetrics))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	products.Register(r)
	orders.Register(r)
	return r
}
