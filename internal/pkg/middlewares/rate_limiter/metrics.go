package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RequestsRateLimitedTotal считает отказы 429; route - шаблон mux, а не сырой путь.
var RequestsRateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_rate_limited_total",
		Help: "Requests rejected with 429 by method and route template",
	},
	[]string{"method", "route"},
)
