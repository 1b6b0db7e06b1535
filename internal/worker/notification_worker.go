package worker

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/developer-service/internal/config"
	"github.com/spec-kit/developer-service/internal/events"
	"github.com/spec-kit/developer-service/internal/service"
)

// NotificationWorker owns the sinks lifecycle events are forwarded to.
type NotificationWorker struct {
	Service *service.NotificationService
	kafka   *events.KafkaSink
}

// StartNotificationWorker builds the configured sinks and subscribes the notification
// handlers on dispatcher. redisClient may be nil when Redis is not configured.
func StartNotificationWorker(cfg config.EventsConfig, dispatcher events.Dispatcher, redisClient *redis.Client, counter service.EventCounter, logger *zap.Logger) (*NotificationWorker, error) {
	var (
		sinks []events.Sink
		w     = &NotificationWorker{}
	)

	if cfg.RedisStream != "" {
		if redisClient == nil {
			logger.Warn("EVENTS_REDIS_STREAM set without REDIS_ADDR; redis sink disabled")
		} else {
			sinks = append(sinks, events.NewRedisStreamSink(redisClient, cfg.RedisStream, cfg.RedisStreamMax))
		}
	}

	if cfg.KafkaEnabled() {
		producer, err := events.NewKafkaSyncProducer(cfg.KafkaBrokers, cfg.KafkaClientID, cfg.KafkaMaxRetries)
		if err != nil {
			return nil, fmt.Errorf("kafka producer: %w", err)
		}
		w.kafka = events.NewKafkaSink(producer, cfg.KafkaTopic, cfg.Source, logger)
		sinks = append(sinks, w.kafka)
	}

	w.Service = service.NewNotificationService(dispatcher, logger, sinks...)
	if counter != nil {
		w.Service.WithEventCounter(counter)
	}
	w.Service.RegisterHandlers()

	names := make([]string, 0, len(sinks))
	for _, s := range sinks {
		names = append(names, s.Name())
	}
	logger.Info("notification worker started", zap.Strings("sinks", names))
	return w, nil
}

// Close releases sink resources.
func (w *NotificationWorker) Close() error {
	if w == nil {
		return nil
	}
	return w.kafka.Close()
}
