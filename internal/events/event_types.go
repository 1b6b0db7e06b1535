package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/developer-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventDeveloperCreated EventType = "developer_created"
	EventDeveloperUpdated EventType = "developer_updated"
	EventDeveloperRetired EventType = "developer_retired"
)

// Event represents a developer lifecycle event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	MemberID  string      `json:"member_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType EventType, memberID string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		MemberID:  memberID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// DeveloperCreatedPayload payload.
type DeveloperCreatedPayload struct {
	Name               string                    `json:"name"`
	DeveloperLevel     domain.DeveloperLevel     `json:"developer_level"`
	DeveloperSkillType domain.DeveloperSkillType `json:"developer_skill_type"`
	ExperienceYears    int                       `json:"experience_years"`
}

// ProfileSnapshot is the editable part of a developer at one point in time.
type ProfileSnapshot struct {
	DeveloperLevel     domain.DeveloperLevel     `json:"developer_level"`
	DeveloperSkillType domain.DeveloperSkillType `json:"developer_skill_type"`
	ExperienceYears    int                       `json:"experience_years"`
}

// SnapshotOf captures the editable fields of dev.
func SnapshotOf(dev domain.Developer) ProfileSnapshot {
	return ProfileSnapshot{
		DeveloperLevel:     dev.DeveloperLevel,
		DeveloperSkillType: dev.DeveloperSkillType,
		ExperienceYears:    dev.ExperienceYears,
	}
}

// DeveloperUpdatedPayload payload.
type DeveloperUpdatedPayload struct {
	Old ProfileSnapshot `json:"old"`
	New ProfileSnapshot `json:"new"`
}

// DeveloperRetiredPayload payload.
type DeveloperRetiredPayload struct {
	Name      string    `json:"name"`
	RetiredAt time.Time `json:"retired_at"`
}
