package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/spec-kit/developer-service/internal/domain"
	"github.com/spec-kit/developer-service/internal/events"
)

type captureSink struct {
	name string
	err  error
	got  []events.Event
}

func (s *captureSink) Name() string { return s.name }

func (s *captureSink) Send(_ context.Context, event events.Event) error {
	s.got = append(s.got, event)
	return s.err
}

type countingCounter map[string]int

func (c countingCounter) RecordEvent(eventType string) { c[eventType]++ }

func TestNotificationServiceForwardsToEverySink(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	failing := &captureSink{name: "failing", err: errors.New("broker down")}
	healthy := &captureSink{name: "healthy"}
	counter := countingCounter{}

	NewNotificationService(dispatcher, zaptest.NewLogger(t), failing, healthy).
		WithEventCounter(counter).
		RegisterHandlers()

	event := events.NewEvent(events.EventDeveloperRetired, "member-1", events.DeveloperRetiredPayload{Name: "name"})
	require.NoError(t, dispatcher.Publish(context.Background(), event))

	require.Len(t, failing.got, 1)
	require.Len(t, healthy.got, 1)
	assert.Equal(t, event.ID, healthy.got[0].ID)
	assert.Equal(t, 1, counter[string(events.EventDeveloperRetired)])
}

func TestDeveloperServicePublishesThroughNotifications(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	sink := &captureSink{name: "capture"}
	NewNotificationService(dispatcher, zaptest.NewLogger(t), sink).RegisterHandlers()

	store := newSeededStore()
	svc := NewDeveloperService(DeveloperDependencies{Store: store, Dispatcher: dispatcher, Logger: zaptest.NewLogger(t)})

	_, err := svc.EditDeveloper(context.Background(), "memberId", domain.DeveloperProfile{
		DeveloperLevel:     domain.DeveloperLevelJunior,
		DeveloperSkillType: domain.DeveloperSkillTypeFullStack,
		ExperienceYears:    2,
	})
	require.NoError(t, err)
	_, err = svc.RetireDeveloper(context.Background(), "memberId")
	require.NoError(t, err)

	require.Len(t, sink.got, 2)
	assert.Equal(t, events.EventDeveloperUpdated, sink.got[0].Type)
	assert.Equal(t, events.EventDeveloperRetired, sink.got[1].Type)
}
