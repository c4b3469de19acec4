package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "match_notifier_cycles_total",
		Help: "Number of completed polling cycles",
	})

	cycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "match_notifier_cycle_duration_seconds",
		Help:    "Duration of one polling cycle",
		Buckets: prometheus.DefBuckets,
	})

	snapshotSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "match_notifier_snapshot_size",
		Help: "Record counts seen in the last polling cycle",
	}, []string{"kind"})

	eventsDetected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "match_notifier_events_detected_total",
		Help: "Match events detected, by payload type",
	}, []string{"type"})

	notificationsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "match_notifier_notifications_sent_total",
		Help: "Push notifications successfully handed to the transport",
	})

	notificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "match_notifier_notification_failures_total",
		Help: "Push notifications the transport rejected or dropped",
	})

	publishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "match_notifier_publish_failures_total",
		Help: "Notification events that could not be published to Kafka",
	})
)
