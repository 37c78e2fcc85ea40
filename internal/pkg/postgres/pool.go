package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"launchpizza/internal/pkg/config"
	"launchpizza/pkg/logger"
	retrierconfig "launchpizza/pkg/retrier"
	"launchpizza/pkg/retrier/backoff_adapter"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxConnLifetime = time.Hour
	pingTimeout     = 5 * time.Second
)

// NewConnPool создает пул и блокируется, пока база не ответит на ping.
// Между попытками фиксированная пауза cfg.ConnectRetryInterval; cfg.ConnectMaxAttempts == 0
// означает бесконечные попытки, прервать их может только отмена ctx.
func NewConnPool(ctx context.Context, log logger.Logger, cfg *config.Database) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(NewDsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = maxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}

	dbLog := log.With(
		logger.NewField("host", cfg.Host),
		logger.NewField("port", cfg.Port),
		logger.NewField("db", cfg.DBName),
	)

	err = pingDatabase(ctx, dbLog, pool, cfg)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("database connection: %w", err)
	}

	return pool, nil
}

// NewDsn собирает postgres URL; пароль экранируется, поэтому спецсимволы в нем допустимы.
func NewDsn(cfg *config.Database) string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     cfg.DBName,
		RawQuery: url.Values{"sslmode": []string{cfg.SSLMode}}.Encode(),
	}
	return dsn.String()
}

type pinger interface {
	Ping(ctx context.Context) error
}

func pingDatabase(ctx context.Context, log logger.Logger, db pinger, cfg *config.Database) error {
	retryConfig := retrierconfig.Constant(cfg.ConnectRetryInterval, cfg.ConnectMaxAttempts)
	retryConfig.Notify = func(err error, next time.Duration) {
		log.With(
			logger.NewField("error", err),
			logger.NewField("retry_in", next.String()),
		).Warn("connecting to database failed")
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting database connection")

		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return db.Ping(pingCtx)
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("database connection failed after retries")
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("database connection established")
	return nil
}
