package messaging

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skanadev/match-notifier-service/internal/models"
)

// TestNewKafkaPublisher tests publisher creation
func TestNewKafkaPublisher(t *testing.T) {
	publisher := NewKafkaPublisher(KafkaPublisherConfig{
		Brokers: []string{"localhost:9092"},
		Topic:   "match_notifications",
	}, zerolog.Nop())

	require.NotNil(t, publisher)
	assert.NotNil(t, publisher.writer)
	assert.Equal(t, "match_notifications", publisher.writer.Topic)

	publisher.Close()
}

// TestNotificationEvent_Envelope tests that the published envelope round-trips
func TestNotificationEvent_Envelope(t *testing.T) {
	event := models.NotificationEvent{
		EventID: uuid.New(),
		MatchID: "419432",
		Type:    "won",
		Title:   "You won! Alpha FC vs Beta United",
		Body:    "Final score: 2 - 1",
		Data: map[string]string{
			"matchId": "419432",
			"type":    "won",
		},
		EmittedAt: time.Now().UTC(),
	}

	raw, err := json.Marshal(&event)
	require.NoError(t, err)

	var parsed models.NotificationEvent
	require.NoError(t, json.Unmarshal(raw, &parsed))

	assert.Equal(t, event.EventID, parsed.EventID)
	assert.Equal(t, event.MatchID, parsed.MatchID)
	assert.Equal(t, event.Type, parsed.Type)
	assert.Equal(t, event.Data, parsed.Data)
}
