package order_events

import "github.com/IBM/sarama"

// Producer - подмножество sarama.SyncProducer, которое нужно публикатору.
type Producer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
	Close() error
}
