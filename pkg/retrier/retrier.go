package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc вызывается после каждой неудачной попытки перед паузой.
type NotifyFunc func(err error, next time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64

	// Multiplier <= 1 означает постоянную паузу InitialInterval между попытками
	Multiplier float64

	// 0 - без ограничения по количеству попыток
	MaxAttempts uint64

	// Если nil - ретраятся все ошибки, если не nil - только те где функция вернула true
	ShouldRetry ShouldRetryFunc

	Notify NotifyFunc
}

// Constant - пауза фиксированной длины, число попыток ограничено только maxAttempts.
func Constant(interval time.Duration, maxAttempts uint64) Config {
	return Config{
		InitialInterval: interval,
		MaxAttempts:     maxAttempts,
	}
}
