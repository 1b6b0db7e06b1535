package events

import (
	"context"
	"encoding/json"
	"fmt"
)

// Sink forwards lifecycle events outside the process.
type Sink interface {
	Name() string
	Send(ctx context.Context, event Event) error
}

func encodeEvent(event Event) ([]byte, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal %s event: %w", event.Type, err)
	}
	return body, nil
}
