package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skanadev/match-notifier-service/internal/models"
	"github.com/skanadev/match-notifier-service/pkg/detector"
)

// NotifierService orchestrates one polling cycle: fetch the live match
// snapshot, devices and open tickets, run event detection, then fan each
// detected event out to every registered device.
type NotifierService struct {
	source    MatchSource
	store     Store
	sender    Sender
	publisher Publisher
	detector  *detector.Detector
	logger    zerolog.Logger
}

// CycleStats summarizes one completed polling cycle
type CycleStats struct {
	Matches  int
	Devices  int
	Tickets  int
	Events   int
	Sent     int
	Failed   int
	Duration time.Duration
}

// NewNotifierService creates a new notifier service
func NewNotifierService(
	source MatchSource,
	store Store,
	sender Sender,
	publisher Publisher,
	det *detector.Detector,
	logger zerolog.Logger,
) *NotifierService {
	return &NotifierService{
		source:    source,
		store:     store,
		sender:    sender,
		publisher: publisher,
		detector:  det,
		logger:    logger.With().Str("component", "notifier_service").Logger(),
	}
}

// RunCycle executes one full fetch/detect/notify pass. Collaborator
// failures degrade to empty inputs for this cycle; nothing here is fatal,
// the next cycle simply retries.
func (s *NotifierService) RunCycle(ctx context.Context) CycleStats {
	start := time.Now()

	matches, err := s.source.FetchMatches(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to fetch matches, treating cycle as empty")
		matches = nil
	}

	devices, err := s.store.ListDevices(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to list devices, treating cycle as empty")
		devices = nil
	}

	tickets, err := s.store.ListTickets(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to list tickets, treating cycle as empty")
		tickets = nil
	}

	events := s.detector.Detect(matches, tickets)

	stats := CycleStats{
		Matches: len(matches),
		Devices: len(devices),
		Tickets: len(tickets),
		Events:  len(events),
	}

	for _, event := range events {
		notification := detector.Format(event)
		eventsDetected.WithLabelValues(event.PayloadType()).Inc()

		s.publish(ctx, event, notification)

		// Fan out in input device order. A failed send never stops the
		// remaining devices from being notified.
		for _, device := range devices {
			if s.sender.Send(ctx, device.Token, notification) {
				stats.Sent++
				notificationsSent.Inc()
			} else {
				stats.Failed++
				notificationFailures.Inc()
			}
		}
	}

	stats.Duration = time.Since(start)

	cyclesTotal.Inc()
	cycleDuration.Observe(stats.Duration.Seconds())
	snapshotSize.WithLabelValues("matches").Set(float64(stats.Matches))
	snapshotSize.WithLabelValues("devices").Set(float64(stats.Devices))
	snapshotSize.WithLabelValues("tickets").Set(float64(stats.Tickets))

	s.logger.Info().
		Int("matches", stats.Matches).
		Int("devices", stats.Devices).
		Int("tickets", stats.Tickets).
		Int("events", stats.Events).
		Int("sent", stats.Sent).
		Int("failed", stats.Failed).
		Dur("duration", stats.Duration).
		Msg("polling cycle complete")

	return stats
}

// publish mirrors the event onto the Kafka stream; failures are logged
// and do not block the push fan-out
func (s *NotifierService) publish(ctx context.Context, event detector.Event, notification models.Notification) {
	envelope := &models.NotificationEvent{
		EventID:   uuid.New(),
		MatchID:   event.MatchID,
		Type:      event.PayloadType(),
		Title:     notification.Title,
		Body:      notification.Body,
		Data:      notification.Data,
		EmittedAt: time.Now().UTC(),
	}

	if err := s.publisher.Publish(ctx, envelope); err != nil {
		publishFailures.Inc()
		s.logger.Warn().
			Err(err).
			Str("match_id", event.MatchID).
			Str("type", envelope.Type).
			Msg("failed to publish notification event")
	}
}
