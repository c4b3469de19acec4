package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/skanadev/match-notifier-service/internal/models"
)

// FCMSender delivers push notifications through the FCM HTTP API.
// Delivery is fire-and-forget: failures are logged and reported as a
// boolean, never propagated into the polling cycle.
type FCMSender struct {
	endpoint   string
	serverKey  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// FCMSenderConfig holds FCM sender configuration
type FCMSenderConfig struct {
	Endpoint  string        // e.g., "https://fcm.googleapis.com/fcm/send"
	ServerKey string        // server API key
	Timeout   time.Duration // per-request timeout
}

// fcmMessage is the FCM HTTP wire format for a single-token send
type fcmMessage struct {
	To           string            `json:"to"`
	Notification fcmNotification   `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NewFCMSender creates a new FCM push sender
func NewFCMSender(config FCMSenderConfig, logger zerolog.Logger) *FCMSender {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &FCMSender{
		endpoint:   config.Endpoint,
		serverKey:  config.ServerKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With().Str("component", "fcm_sender").Logger(),
	}
}

// Send delivers one notification to one device token. Returns true on
// success; on any failure it logs and returns false so the caller can
// continue fanning out to the remaining devices.
func (s *FCMSender) Send(ctx context.Context, token string, notification models.Notification) bool {
	if token == "" {
		s.logger.Warn().Msg("skipping send to empty token")
		return false
	}

	payload := fcmMessage{
		To: token,
		Notification: fcmNotification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Data: notification.Data,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to marshal FCM message")
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to build FCM request")
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("key=%s", s.serverKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn().Err(err).Str("title", notification.Title).Msg("FCM request failed")
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn().
			Int("status", resp.StatusCode).
			Str("title", notification.Title).
			Msg("FCM rejected notification")
		return false
	}

	s.logger.Debug().
		Str("title", notification.Title).
		Msg("notification sent")

	return true
}
