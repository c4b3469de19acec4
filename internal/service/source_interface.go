package service

import (
	"context"

	"github.com/skanadev/match-notifier-service/internal/models"
)

// MatchSource is an interface that abstracts the sports-data provider
// This allows for easier testing and mocking
type MatchSource interface {
	FetchMatches(ctx context.Context) ([]models.Match, error)
}
