package events

import (
	"time"

	"github.com/spec-kit/office-admin-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEntityCreated EventType = "entity_created"
	EventEntityUpdated EventType = "entity_updated"
	EventEntityDeleted EventType = "entity_deleted"
)

// Event represents a reconciliation outcome emitted by the directory
// services after an upstream call succeeded.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Kind      domain.Kind `json:"kind"`
	EntityID  domain.ID   `json:"entity_id"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EntitySavedPayload describes a create or update.
type EntitySavedPayload struct {
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
	Index  int    `json:"index"`
}

// EntityDeletedPayload describes a removal from the base collection.
type EntityDeletedPayload struct {
	Name string `json:"name,omitempty"`
}
