package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"launchpizza/internal/pkg/config"
	"launchpizza/internal/pkg/dotenv"
	"launchpizza/internal/pkg/postgres"
	"launchpizza/migrations"
	"launchpizza/pkg/logger"
	"launchpizza/pkg/logger/zap_adapter"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Схема накатывается отдельной командой, сам сервис миграции не запускает.
func main() {
	command := flag.String("command", "up", "goose command: up, down, status, redo, version")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			stdlog.Fatalf("failed to load .env file: %v", err)
		}
	}
	if !flag.Parsed() {
		flag.Parse()
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Log.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	var log logger.Logger = zapLogger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	err = migrate(ctx, log, &cfg.Database, *command, flag.Args()...)
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("command", *command),
		).Error("migration failed")
		stop()
		_ = zapLogger.Sync()
		os.Exit(1) //nolint:gocritic // stop и Sync вызваны вручную
	}
}

func migrate(ctx context.Context, log logger.Logger, cfg *config.Database, command string, args ...string) error {
	// тот же ping с повтором, что и у сервиса: база в docker-compose поднимается дольше
	pool, err := postgres.NewConnPool(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	pool.Close()

	db, err := sql.Open("pgx", postgres.NewDsn(cfg))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	err = goose.SetDialect("postgres")
	if err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	log.With(logger.NewField("command", command)).Info("running migrations")

	err = goose.RunContext(ctx, command, db, ".", args...)
	if err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	log.With(logger.NewField("command", command)).Info("migrations finished")
	return nil
}
