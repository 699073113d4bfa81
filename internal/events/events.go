// Package events publishes record change notifications for downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Actions carried by a Change.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Change describes a successful write. Record is nil for deletes.
type Change struct {
	Entity  string
	Action  string
	ID      int64
	OwnerID int64
	Record  any
}

// Publisher delivers changes.
type Publisher interface {
	Publish(ctx context.Context, change Change) error
}

// NoopPublisher drops every change.
type NoopPublisher struct{}

// Publish performs no action.
func (NoopPublisher) Publish(context.Context, Change) error { return nil }

// Envelope is the wire form of a change.
type Envelope struct {
	EventID    string          `json:"eventId"`
	EventType  string          `json:"eventType"`
	Entity     string          `json:"entity"`
	Action     string          `json:"action"`
	ID         int64           `json:"id"`
	OwnerID    int64           `json:"ownerId,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// NewEnvelope stamps change with a fresh event id and the given time.
func NewEnvelope(change Change, now time.Time) (Envelope, error) {
	env := Envelope{
		EventID:    uuid.NewString(),
		EventType:  EventType(change),
		Entity:     change.Entity,
		Action:     change.Action,
		ID:         change.ID,
		OwnerID:    change.OwnerID,
		OccurredAt: now.UTC(),
	}
	if change.Record != nil {
		payload, err := json.Marshal(change.Record)
		if err != nil {
			return Envelope{}, err
		}
		env.Payload = payload
	}
	return env, nil
}

// EventType is "<entity>.<action>", e.g. "workout.created".
func EventType(change Change) string {
	return change.Entity + "." + change.Action
}
