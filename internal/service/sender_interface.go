package service

import (
	"context"

	"github.com/skanadev/match-notifier-service/internal/models"
)

// Sender is an interface that abstracts the push delivery channel.
// Delivery is fire-and-forget: implementations report success as a bool
// and never surface transport errors into the polling cycle.
type Sender interface {
	Send(ctx context.Context, token string, notification models.Notification) bool
}
