package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skanadev/match-notifier-service/internal/models"
)

func newTestSender(endpoint string) *FCMSender {
	return NewFCMSender(FCMSenderConfig{
		Endpoint:  endpoint,
		ServerKey: "test-key",
		Timeout:   2 * time.Second,
	}, zerolog.Nop())
}

func testNotification() models.Notification {
	return models.Notification{
		Title: "Goal by Alpha FC!",
		Body:  "Score: 1 - 0",
		Data:  map[string]string{"matchId": "419432", "type": "goal", "scorer": "home"},
	}
}

// TestSend_Success tests a successful push delivery
func TestSend_Success(t *testing.T) {
	var received fcmMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "key=test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := newTestSender(server.URL)
	ok := sender.Send(context.Background(), "device-token", testNotification())

	assert.True(t, ok)
	assert.Equal(t, "device-token", received.To)
	assert.Equal(t, "Goal by Alpha FC!", received.Notification.Title)
	assert.Equal(t, "Score: 1 - 0", received.Notification.Body)
	assert.Equal(t, "goal", received.Data["type"])
	assert.Equal(t, "419432", received.Data["matchId"])
}

// TestSend_EmptyToken tests that an empty token is skipped
func TestSend_EmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for empty token")
	}))
	defer server.Close()

	sender := newTestSender(server.URL)
	ok := sender.Send(context.Background(), "", testNotification())

	assert.False(t, ok)
}

// TestSend_Rejected tests that a non-200 response reports failure without panicking
func TestSend_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	sender := newTestSender(server.URL)
	ok := sender.Send(context.Background(), "device-token", testNotification())

	assert.False(t, ok)
}

// TestSend_TransportFailure tests that an unreachable endpoint reports failure
func TestSend_TransportFailure(t *testing.T) {
	sender := newTestSender("http://127.0.0.1:1")
	ok := sender.Send(context.Background(), "device-token", testNotification())

	assert.False(t, ok)
}

// TestSend_ContextCanceled tests that a canceled context reports failure
func TestSend_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sender := newTestSender(server.URL)
	ok := sender.Send(ctx, "device-token", testNotification())

	assert.False(t, ok)
}
