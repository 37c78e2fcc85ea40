package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"launchpizza/internal/pkg/config"
	"launchpizza/pkg/logger"
)

// NewSyncProducer подключается к брокерам с тем же ожиданием, что и consumer.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.SyncProducer, error) {
	saramaConfig, err := NewSaramaConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build sarama config: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", cfg.Brokers),
		logger.NewField("topic", cfg.EventsTopic),
	)

	err = pingKafka(ctx, kafkaLog, cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	kafkaLog.Info("Kafka producer ready")
	return producer, nil
}
