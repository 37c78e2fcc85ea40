package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware ограничивает контекст запроса; запросы в базу отменяются вместе с ним.
// timeout <= 0 отключает ограничение.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() наследуется от ongoingCtx из BaseContext
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
