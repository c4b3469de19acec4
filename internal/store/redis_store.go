package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/skanadev/match-notifier-service/internal/models"
)

// RedisStore persists registered devices and user tickets in Redis
type RedisStore struct {
	client *redis.Client
	logger zerolog.Logger
}

// RedisStoreConfig holds Redis store configuration
type RedisStoreConfig struct {
	Addr     string // e.g., "localhost:6379"
	Password string
	DB       int
}

// NewRedisStore creates a new Redis-backed store
func NewRedisStore(config RedisStoreConfig, logger zerolog.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &RedisStore{
		client: client,
		logger: logger.With().Str("component", "redis_store").Logger(),
	}
}

// deviceKey builds the Redis key for a registered device
func deviceKey(id string) string {
	return fmt.Sprintf("device:%s", id)
}

// ticketKey builds the Redis key for one user ticket
func ticketKey(userID string, ticketID uuid.UUID) string {
	return fmt.Sprintf("ticket:%s:%s", userID, ticketID)
}

// RegisterDevice stores or replaces a device registration
func (s *RedisStore) RegisterDevice(ctx context.Context, device *models.Device) error {
	if device.ID == "" {
		return fmt.Errorf("device id is required")
	}

	data, err := json.Marshal(device)
	if err != nil {
		return fmt.Errorf("failed to marshal device: %w", err)
	}

	if err := s.client.Set(ctx, deviceKey(device.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	s.logger.Debug().
		Str("device_id", device.ID).
		Msg("registered device")

	return nil
}

// ListDevices returns every registered device with a non-empty token
func (s *RedisStore) ListDevices(ctx context.Context) ([]models.Device, error) {
	keys, err := s.scanKeys(ctx, "device:*")
	if err != nil {
		return nil, fmt.Errorf("failed to scan devices: %w", err)
	}

	devices := make([]models.Device, 0, len(keys))
	for _, key := range keys {
		data, err := s.client.Get(ctx, key).Bytes()
		if err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to get device")
			continue
		}

		var device models.Device
		if err := json.Unmarshal(data, &device); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to unmarshal device")
			continue
		}

		// Devices without a push token are unreachable; skip them.
		if device.Token == "" {
			continue
		}

		devices = append(devices, device)
	}

	return devices, nil
}

// SaveTicket stores or replaces a ticket under its owning user
func (s *RedisStore) SaveTicket(ctx context.Context, ticket *models.Ticket) error {
	if ticket.UserID == "" {
		return fmt.Errorf("ticket user id is required")
	}
	if ticket.ID == uuid.Nil {
		return fmt.Errorf("ticket id is required")
	}

	data, err := json.Marshal(ticket)
	if err != nil {
		return fmt.Errorf("failed to marshal ticket: %w", err)
	}

	if err := s.client.Set(ctx, ticketKey(ticket.UserID, ticket.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	s.logger.Debug().
		Str("ticket_id", ticket.ID.String()).
		Str("user_id", ticket.UserID).
		Msg("saved ticket")

	return nil
}

// ListTickets returns every stored ticket across all users
func (s *RedisStore) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	keys, err := s.scanKeys(ctx, "ticket:*")
	if err != nil {
		return nil, fmt.Errorf("failed to scan tickets: %w", err)
	}

	tickets := make([]models.Ticket, 0, len(keys))
	for _, key := range keys {
		data, err := s.client.Get(ctx, key).Bytes()
		if err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to get ticket")
			continue
		}

		var ticket models.Ticket
		if err := json.Unmarshal(data, &ticket); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to unmarshal ticket")
			continue
		}

		tickets = append(tickets, ticket)
	}

	return tickets, nil
}

// ListUserTickets returns the tickets belonging to one user
func (s *RedisStore) ListUserTickets(ctx context.Context, userID string) ([]models.Ticket, error) {
	keys, err := s.scanKeys(ctx, fmt.Sprintf("ticket:%s:*", userID))
	if err != nil {
		return nil, fmt.Errorf("failed to scan user tickets: %w", err)
	}

	tickets := make([]models.Ticket, 0, len(keys))
	for _, key := range keys {
		data, err := s.client.Get(ctx, key).Bytes()
		if err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to get ticket")
			continue
		}

		var ticket models.Ticket
		if err := json.Unmarshal(data, &ticket); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to unmarshal ticket")
			continue
		}

		tickets = append(tickets, ticket)
	}

	return tickets, nil
}

// UpdateTicketStatus moves a ticket to a new status. The transition is a
// plain overwrite; callers enforce terminal-state rules.
func (s *RedisStore) UpdateTicketStatus(ctx context.Context, userID string, ticketID uuid.UUID, status string) error {
	key := ticketKey(userID, ticketID)

	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return fmt.Errorf("ticket not found")
	} else if err != nil {
		return fmt.Errorf("failed to get from Redis: %w", err)
	}

	var ticket models.Ticket
	if err := json.Unmarshal(data, &ticket); err != nil {
		return fmt.Errorf("failed to unmarshal ticket: %w", err)
	}

	ticket.Status = status

	updated, err := json.Marshal(&ticket)
	if err != nil {
		return fmt.Errorf("failed to marshal ticket: %w", err)
	}

	if err := s.client.Set(ctx, key, updated, 0).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	s.logger.Info().
		Str("ticket_id", ticketID.String()).
		Str("user_id", userID).
		Str("status", status).
		Msg("updated ticket status")

	return nil
}

// scanKeys collects all keys matching a pattern
func (s *RedisStore) scanKeys(ctx context.Context, pattern string) ([]string, error) {
	var cursor uint64
	var keys []string

	for {
		var scanKeys []string
		var err error
		scanKeys, cursor, err = s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, err
		}

		keys = append(keys, scanKeys...)

		if cursor == 0 {
			break
		}
	}

	return keys, nil
}

// Ping checks the Redis connection
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
