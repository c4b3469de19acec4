package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a rendered push message ready to be delivered to a
// single device token.
type Notification struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}

// NotificationEvent is the envelope published to Kafka for every match
// event the detector emits, before per-device fan-out.
type NotificationEvent struct {
	EventID   uuid.UUID         `json:"event_id"`
	MatchID   string            `json:"match_id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data"`
	EmittedAt time.Time         `json:"emitted_at"`
}
