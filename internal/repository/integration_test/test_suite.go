package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"launchpizza/internal/pkg/config"
	"launchpizza/internal/pkg/postgres"
	"launchpizza/pkg/logger/zap_adapter"
	"launchpizza/pkg/querier"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
)

var (
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		// переменные окружения подгружает Makefile из .env.test
		cfg := &config.Database{
			Host:                 os.Getenv("POSTGRES_HOST"),
			Port:                 os.Getenv("POSTGRES_PORT"),
			User:                 os.Getenv("POSTGRES_USER"),
			Password:             os.Getenv("POSTGRES_PASSWORD"),
			DBName:               os.Getenv("POSTGRES_DB"),
			SSLMode:              os.Getenv("POSTGRES_SSLMODE"),
			MaxConns:             4,
			MinConns:             1,
			ConnectRetryInterval: time.Second,
			ConnectMaxAttempts:   5,
		}

		zapLogger, err := zap_adapter.NewZapAdapter("warn")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			_ = zapLogger.Sync()
		}()

		connPool, err := postgres.NewConnPool(context.Background(), zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `TRUNCATE TABLE orders RESTART IDENTITY;`)
	require.NoError(t, err)
}
