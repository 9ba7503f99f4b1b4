package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/pressdetective/pkg/metrics"
)

// HealthHandler serves process metrics as the liveness endpoint.
type HealthHandler struct {
	metrics http.Handler
}

// NewHealthHandler exposes reg, or the global metrics registry when reg is nil.
func NewHealthHandler(reg *prometheus.Registry) *HealthHandler {
	if reg == nil {
		reg = metrics.GetRegistry()
	}
	return &HealthHandler{metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})}
}

// HandleHealth handles GET /healthz requests.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.metrics.ServeHTTP(w, r)
}
