package godispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/ggarcia209/go-ses-webhooks/gohook"
	"github.com/ggarcia209/go-ses-webhooks/goses"
)

// KafkaWriterAPI defines the kafka-go writer methods used by this package.
//
//go:generate mockgen -destination=./kafka_writer_api_test.go -package=godispatch . KafkaWriterAPI
type KafkaWriterAPI interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink publishes each tracking event as one JSON message keyed
// by recipient, so per-recipient ordering survives partitioning.
type KafkaSink struct {
	writer KafkaWriterAPI
}

func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	return &KafkaSink{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

func (s *KafkaSink) Dispatch(ctx context.Context, evs []goses.TrackingEvent) error {
	if len(evs) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(evs))
	for _, ev := range evs {
		value, err := json.Marshal(ev)
		if err != nil {
			return gohook.NewInternalError(fmt.Errorf("json.Marshal: %w", err))
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(ev.Recipient),
			Value: value,
		})
	}

	if err := s.writer.WriteMessages(ctx, msgs...); err != nil {
		return gohook.NewInternalError(fmt.Errorf("s.writer.WriteMessages: %w", err))
	}
	return nil
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}
