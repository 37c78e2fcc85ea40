package request_id

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const HeaderName = "X-Request-ID"

// длиннее значения из заголовка не принимаем, чтобы не раздувать логи
const maxIncomingLength = 128

type ctxKey struct{}

// Middleware берет X-Request-ID клиента или генерирует UUID и возвращает его в ответе.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(HeaderName)
			if requestID == "" || len(requestID) > maxIncomingLength {
				requestID = uuid.NewString()
			}

			w.Header().Set(HeaderName, requestID)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), requestID)))
		})
	}
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

func FromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(ctxKey{}).(string)
	return requestID
}
