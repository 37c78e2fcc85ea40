package rate_limiter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"launchpizza/internal/generated/dto"
	"launchpizza/pkg/logger"
)

// Middleware отклоняет запрос с 429, если в limiter нет токена.
// qps попадает только в заголовок X-RateLimit-Limit.
func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	limitHeader := strconv.Itoa(qps)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}

			RequestsRateLimitedTotal.WithLabelValues(r.Method, route).Inc()
			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", limitHeader)
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			err := json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "rate limit exceeded"})
			if err != nil {
				log.With(
					logger.NewField("error", err),
				).Error("failed to write rate limit response")
			}
		})
	}
}
