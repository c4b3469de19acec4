package service

import (
	"context"

	"github.com/skanadev/match-notifier-service/internal/models"
)

// Publisher is an interface that abstracts the notification event stream
// This allows for easier testing and mocking
type Publisher interface {
	Publish(ctx context.Context, event *models.NotificationEvent) error
	Close() error
}
