package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Poller drives the notifier service at a fixed interval. The interval is
// measured from the end of one cycle to the start of the next, so a slow
// cycle delays the following one instead of overlapping it; detector state
// is only ever touched by this single loop.
type Poller struct {
	service  *NotifierService
	interval time.Duration
	logger   zerolog.Logger
}

// NewPoller creates a poller around the notifier service
func NewPoller(service *NotifierService, interval time.Duration, logger zerolog.Logger) *Poller {
	if interval <= 0 {
		interval = 60 * time.Second
	}

	return &Poller{
		service:  service,
		interval: interval,
		logger:   logger.With().Str("component", "poller").Logger(),
	}
}

// Run blocks until ctx is cancelled, executing one cycle immediately and
// then one per interval.
func (p *Poller) Run(ctx context.Context) {
	p.logger.Info().Dur("interval", p.interval).Msg("poller started")

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("poller stopped")
			return

		case <-timer.C:
			p.service.RunCycle(ctx)
			timer.Reset(p.interval)
		}
	}
}
