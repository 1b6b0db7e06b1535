package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// KafkaSink produces events to a Kafka topic keyed by member id.
type KafkaSink struct {
	producer sarama.SyncProducer
	topic    string
	source   string
	logger   *zap.Logger
}

// NewKafkaSyncProducer dials brokers with an idempotent, all-acks producer.
func NewKafkaSyncProducer(brokers []string, clientID string, maxRetries int) (sarama.SyncProducer, error) {
	return sarama.NewSyncProducer(brokers, newProducerConfig(clientID, maxRetries))
}

// newProducerConfig builds the producer settings. Idempotent producers need at least one retry.
func newProducerConfig(clientID string, maxRetries int) *sarama.Config {
	if maxRetries < 1 {
		maxRetries = 1
	}

	cfg := sarama.NewConfig()
	cfg.ClientID = clientID
	cfg.Version = sarama.V3_3_2_0
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1
	cfg.Producer.Retry.Max = maxRetries
	cfg.Producer.Retry.Backoff = 200 * time.Millisecond
	return cfg
}

// NewKafkaSink wraps a sync producer.
func NewKafkaSink(producer sarama.SyncProducer, topic, source string, logger *zap.Logger) *KafkaSink {
	return &KafkaSink{
		producer: producer,
		topic:    topic,
		source:   source,
		logger:   logger.With(zap.String("component", "kafka_sink")),
	}
}

// Name identifies the sink in logs.
func (s *KafkaSink) Name() string { return "kafka" }

// Send produces the event and waits for the broker acknowledgement.
func (s *KafkaSink) Send(_ context.Context, event Event) error {
	if s == nil || s.producer == nil {
		return errors.New("sync producer is not initialized")
	}

	body, err := encodeEvent(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(event.MemberID),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(event.Type)},
			{Key: []byte("event-id"), Value: []byte(event.ID)},
			{Key: []byte("source"), Value: []byte(s.source)},
			{Key: []byte("content-type"), Value: []byte("application/json")},
		},
	}

	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send kafka message: %w", err)
	}

	s.logger.Debug("kafka message sent",
		zap.String("topic", s.topic),
		zap.String("member_id", event.MemberID),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset))
	return nil
}

// Close releases the producer.
func (s *KafkaSink) Close() error {
	if s == nil || s.producer == nil {
		return nil
	}
	return s.producer.Close()
}
