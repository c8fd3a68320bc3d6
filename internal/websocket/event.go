package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents the type of event (created, updated, deleted)
type EventType string

const (
	EventTypeCreated    EventType = "created"
	EventTypeUpdated    EventType = "updated"
	EventTypeDeleted    EventType = "deleted"
	EventTypeReassigned EventType = "reassigned"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeActivity   EntityType = "activity"
	EntityTypeCustomer   EntityType = "customer"
	EntityTypeProjection EntityType = "projection"
)

// Event represents a WebSocket event message sent to clients. Dashboards use
// these as the signal to drop cached metrics and recompute.
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "activity.created"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "activity"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// ActivityCreated creates an activity.created event
func ActivityCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeActivity, payload)
}

// ActivityUpdated creates an activity.updated event
func ActivityUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeActivity, payload)
}

// ActivityDeleted creates an activity.deleted event
func ActivityDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeActivity, payload)
}

// CustomerReassigned creates a customer.reassigned event
func CustomerReassigned(payload interface{}) Event {
	return NewEvent(EventTypeReassigned, EntityTypeCustomer, payload)
}

// ProjectionUpdated creates a projection.updated event
func ProjectionUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeProjection, payload)
}
