package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/skanadev/match-notifier-service/internal/models"
)

// Store is an interface that abstracts device and ticket persistence
// This allows for easier testing and mocking
type Store interface {
	RegisterDevice(ctx context.Context, device *models.Device) error
	ListDevices(ctx context.Context) ([]models.Device, error)
	SaveTicket(ctx context.Context, ticket *models.Ticket) error
	ListTickets(ctx context.Context) ([]models.Ticket, error)
	ListUserTickets(ctx context.Context, userID string) ([]models.Ticket, error)
	UpdateTicketStatus(ctx context.Context, userID string, ticketID uuid.UUID, status string) error
	Ping(ctx context.Context) error
	Close() error
}
