package backoff_adapter

import (
	"context"

	"launchpizza/pkg/retrier"

	"github.com/cenkalti/backoff/v4"
)

type Retrier struct {
	config retrier.Config
}

func New(config retrier.Config) *Retrier {
	return &Retrier{config: config}
}

func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	operation := func() error {
		err := fn(ctx)
		if err != nil && r.config.ShouldRetry != nil && !r.config.ShouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	var notify backoff.Notify
	if r.config.Notify != nil {
		notify = backoff.Notify(r.config.Notify)
	}

	return backoff.RetryNotify(operation, backoff.WithContext(r.newBackOff(), ctx), notify)
}

func (r *Retrier) newBackOff() backoff.BackOff {
	var b backoff.BackOff
	if r.config.Multiplier <= 1 {
		b = backoff.NewConstantBackOff(r.config.InitialInterval)
	} else {
		b = backoff.NewExponentialBackOff(
			backoff.WithInitialInterval(r.config.InitialInterval),
			backoff.WithMaxInterval(r.config.MaxInterval),
			backoff.WithMaxElapsedTime(r.config.MaxElapsedTime),
			backoff.WithRandomizationFactor(r.config.Randomization),
			backoff.WithMultiplier(r.config.Multiplier),
		)
	}

	// MaxAttempts считает первую попытку, WithMaxRetries - только повторы
	if r.config.MaxAttempts > 0 {
		b = backoff.WithMaxRetries(b, r.config.MaxAttempts-1)
	}
	return b
}
