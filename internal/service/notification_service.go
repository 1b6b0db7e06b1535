package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/developer-service/internal/events"
)

// EventCounter counts handled lifecycle events by type.
type EventCounter interface {
	RecordEvent(eventType string)
}

// NotificationService logs developer lifecycle events and forwards them to sinks.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	sinks      []events.Sink
	counter    EventCounter
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, sinks ...events.Sink) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger.With(zap.String("component", "notifications")),
		sinks:      sinks,
	}
}

// WithEventCounter attaches a counter that sees every handled event.
func (n *NotificationService) WithEventCounter(counter EventCounter) *NotificationService {
	n.counter = counter
	return n
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventDeveloperCreated, n.handleDeveloperCreated)
	n.dispatcher.Subscribe(events.EventDeveloperUpdated, n.handleDeveloperUpdated)
	n.dispatcher.Subscribe(events.EventDeveloperRetired, n.handleDeveloperRetired)
}

func (n *NotificationService) handleDeveloperCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("DeveloperCreated", zap.String("member_id", event.MemberID), zap.Any("payload", event.Payload))
	n.forward(ctx, event)
	return nil
}

func (n *NotificationService) handleDeveloperUpdated(ctx context.Context, event events.Event) error {
	n.logger.Info("DeveloperUpdated", zap.String("member_id", event.MemberID), zap.Any("payload", event.Payload))
	n.forward(ctx, event)
	return nil
}

func (n *NotificationService) handleDeveloperRetired(ctx context.Context, event events.Event) error {
	n.logger.Info("DeveloperRetired", zap.String("member_id", event.MemberID), zap.Any("payload", event.Payload))
	n.forward(ctx, event)
	return nil
}

func (n *NotificationService) forward(ctx context.Context, event events.Event) {
	if n.counter != nil {
		n.counter.RecordEvent(string(event.Type))
	}
	for _, sink := range n.sinks {
		if err := sink.Send(ctx, event); err != nil {
			n.logger.Warn("event sink failed",
				zap.String("sink", sink.Name()),
				zap.String("event_id", event.ID),
				zap.String("event_type", string(event.Type)),
				zap.Error(err))
		}
	}
}
