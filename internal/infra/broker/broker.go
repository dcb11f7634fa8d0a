package broker

import (
	"context"
	"fmt"
	"time"

	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/pkg/env"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Brokers []string
	Topic   string
}

func NewConfig() Config {
	return Config{
		Brokers: env.GetList("KAFKA_BROKERS"),
		Topic:   env.GetEnv("OUTBOX_TOPIC", "undangan.events"),
	}
}

// KafkaPublisher writes every relayed event to one topic, keyed by the
// entity the event is about so that per entity order is kept.
type KafkaPublisher struct {
	writer *kafka.Writer
}

var _ interfaces.Publisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(cfg Config) *KafkaPublisher {
	return &KafkaPublisher{
		&kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			WriteTimeout:           5 * time.Second,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event string, key string, payload []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(key),
		Value:   payload,
		Headers: []kafka.Header{{Key: "event", Value: []byte(event)}},
	})
	if err != nil {
		return fmt.Errorf("err writing %s to kafka, %v", event, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher stands in for a broker in development.
type LogPublisher struct {
	log *logrus.Entry
}

var _ interfaces.Publisher = (*LogPublisher)(nil)

func NewLogPublisher(logger *logrus.Logger) *LogPublisher {
	return &LogPublisher{log: logger.WithField("component", "outbox")}
}

func (p *LogPublisher) Publish(_ context.Context, event string, key string, payload []byte) error {
	p.log.WithFields(logrus.Fields{
		"event":   event,
		"key":     key,
		"payload": string(payload),
	}).Info("event relayed")
	return nil
}

func (p *LogPublisher) Close() error { return nil }

func NewPublisher(cfg Config, logger *logrus.Logger) interfaces.Publisher {
	if len(cfg.Brokers) == 0 {
		logger.Info("no kafka brokers configured, relaying events to the log")
		return NewLogPublisher(logger)
	}
	return NewKafkaPublisher(cfg)
}
