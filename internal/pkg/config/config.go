package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"launchpizza/internal/entities"

	"github.com/spf13/viper"
)

type (
	Tasks struct {
		OrderStatsInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter refill, токенов в секунду
		RateLimiterBurst int           // middleware rate limiter capacity
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
		MaxConns int32
		MinConns int32

		ConnectRetryInterval time.Duration
		// 0 - ретраим бесконечно, пока база не поднимется или не придет сигнал
		ConnectMaxAttempts uint64
	}

	Orders struct {
		ListStatus entities.OrderStatusType
	}

	Log struct {
		Level string
	}

	Kafka struct {
		Enabled         bool
		PortHealthcheck string
		Brokers         []string
		EventsTopic     string
		StatusTopic     string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Orders   Orders
		Log      Log
		Kafka    Kafka
	}
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8000")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "")
	v.SetDefault("POSTGRES_DB", "launchpizza")
	v.SetDefault("POSTGRES_SSLMODE", "disable")
	v.SetDefault("POSTGRES_MAX_CONNS", 10)
	v.SetDefault("POSTGRES_MIN_CONNS", 2)
	v.SetDefault("DB_CONNECT_RETRY_INTERVAL", "2s")
	v.SetDefault("DB_CONNECT_MAX_ATTEMPTS", 0)

	v.SetDefault("ORDERS_LIST_STATUS", entities.DefaultListStatus.String())

	v.SetDefault("MIDDLEWARE_REQUEST_TIMEOUT", "10s")
	v.SetDefault("MIDDLEWARE_RATE_LIMIT_QPS", 100)
	v.SetDefault("MIDDLEWARE_RATE_LIMIT_BURST", 200)
	v.SetDefault("PPROF_ENABLED", false)
	v.SetDefault("PPROF_PORT", "6060")

	v.SetDefault("BACKGROUND_ORDER_STATS_INTERVAL", "30s")

	v.SetDefault("KAFKA_ENABLED", false)
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_EVENTS_TOPIC", "pizza.order.events")
	v.SetDefault("KAFKA_STATUS_TOPIC", "pizza.order.status")
	v.SetDefault("KAFKA_CONSUMER_GROUP", "launchpizza-status-worker")
	v.SetDefault("KAFKA_HTTP_HEALTHCHECK_PORT", "8081")
	v.SetDefault("KAFKA_SARAMA_VERSION", "3.6.0")
	v.SetDefault("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT", true)
	v.SetDefault("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT", "5s")
}

// Load читает конфиг из переменных окружения поверх значений по умолчанию.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg, err := loadFromViper(v)
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromViper(v *viper.Viper) (*Config, error) {
	durations := map[string]time.Duration{}
	for _, key := range []string{
		"DB_CONNECT_RETRY_INTERVAL",
		"MIDDLEWARE_REQUEST_TIMEOUT",
		"BACKGROUND_ORDER_STATS_INTERVAL",
		"KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT",
	} {
		d, err := getDuration(v, key)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		durations[key] = d
	}

	maxAttempts := v.GetInt64("DB_CONNECT_MAX_ATTEMPTS")
	if maxAttempts < 0 {
		return nil, fmt.Errorf("loading config: DB_CONNECT_MAX_ATTEMPTS must not be negative, got %d", maxAttempts)
	}

	return &Config{
		Tasks: Tasks{
			OrderStatsInterval: durations["BACKGROUND_ORDER_STATS_INTERVAL"],
		},
		Server: HTTPServer{
			Port:             v.GetString("PORT"),
			RequestTimeout:   durations["MIDDLEWARE_REQUEST_TIMEOUT"],
			RateLimiterQPS:   v.GetInt("MIDDLEWARE_RATE_LIMIT_QPS"),
			RateLimiterBurst: v.GetInt("MIDDLEWARE_RATE_LIMIT_BURST"),
			PprofEnabled:     v.GetBool("PPROF_ENABLED"),
			PprofPort:        v.GetString("PPROF_PORT"),
		},
		Database: Database{
			Host:                 v.GetString("POSTGRES_HOST"),
			Port:                 v.GetString("POSTGRES_PORT"),
			User:                 v.GetString("POSTGRES_USER"),
			Password:             v.GetString("POSTGRES_PASSWORD"),
			DBName:               v.GetString("POSTGRES_DB"),
			SSLMode:              v.GetString("POSTGRES_SSLMODE"),
			MaxConns:             v.GetInt32("POSTGRES_MAX_CONNS"),
			MinConns:             v.GetInt32("POSTGRES_MIN_CONNS"),
			ConnectRetryInterval: durations["DB_CONNECT_RETRY_INTERVAL"],
			ConnectMaxAttempts:   uint64(maxAttempts),
		},
		Orders: Orders{
			ListStatus: entities.OrderStatusType(v.GetString("ORDERS_LIST_STATUS")),
		},
		Log: Log{
			Level: v.GetString("LOG_LEVEL"),
		},
		Kafka: Kafka{
			Enabled:         v.GetBool("KAFKA_ENABLED"),
			Brokers:         splitBrokers(v.GetString("KAFKA_BROKERS")),
			EventsTopic:     v.GetString("KAFKA_EVENTS_TOPIC"),
			StatusTopic:     v.GetString("KAFKA_STATUS_TOPIC"),
			ConsumerGroup:   v.GetString("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: v.GetString("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   v.GetString("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: v.GetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT"),
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: durations["KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT"],
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout <= 0 {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT must be positive")
	}
	if cfg.Server.RateLimiterQPS <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS must be positive")
	}
	if cfg.Server.RateLimiterBurst <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST must be positive")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	if cfg.Database.MaxConns <= 0 {
		return errors.New("POSTGRES_MAX_CONNS must be positive")
	}
	if cfg.Database.MinConns < 0 || cfg.Database.MinConns > cfg.Database.MaxConns {
		return errors.New("POSTGRES_MIN_CONNS must be between 0 and POSTGRES_MAX_CONNS")
	}
	if cfg.Database.ConnectRetryInterval <= 0 {
		return errors.New("DB_CONNECT_RETRY_INTERVAL must be positive")
	}

	if strings.TrimSpace(cfg.Orders.ListStatus.String()) == "" {
		return errors.New("ORDERS_LIST_STATUS must not be empty")
	}

	if cfg.Tasks.OrderStatsInterval <= 0 {
		return errors.New("BACKGROUND_ORDER_STATS_INTERVAL must be positive")
	}

	if !cfg.Kafka.Enabled {
		return nil
	}

	if len(cfg.Kafka.Brokers) == 0 {
		return errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED")
	}
	if cfg.Kafka.EventsTopic == "" {
		return errors.New("KAFKA_EVENTS_TOPIC is required when KAFKA_ENABLED")
	}
	if cfg.Kafka.StatusTopic == "" {
		return errors.New("KAFKA_STATUS_TOPIC is required when KAFKA_ENABLED")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required when KAFKA_ENABLED")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required when KAFKA_ENABLED")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required when KAFKA_ENABLED")
	}
	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout <= 0 {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT must be positive")
	}

	return nil
}

// viper.GetDuration молча возвращает 0 на мусоре, поэтому парсим сами
func getDuration(v *viper.Viper, key string) (time.Duration, error) {
	val := strings.TrimSpace(v.GetString(key))
	if val == "" {
		return 0, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format for %s=%q: %w", key, val, err)
	}
	return res, nil
}

func splitBrokers(raw string) []string {
	brokers := make([]string, 0, 1)
	for _, broker := range strings.Split(raw, ",") {
		broker = strings.TrimSpace(broker)
		if broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}
