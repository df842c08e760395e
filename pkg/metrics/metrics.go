// Package metrics exposes prometheus counters for the polling and
// notification pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PollsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "timetable_bot_polls_total",
			Help: "Total number of upstream poll requests",
		},
		[]string{"status"},
	)

	SnapshotFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "timetable_bot_snapshot_fetches_total",
			Help: "Total number of snapshot fetches triggered by detected changes",
		},
		[]string{"status"},
	)

	NotificationsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "timetable_bot_notifications_sent_total",
			Help: "Total number of notification messages sent to recipients",
		},
		[]string{"status"},
	)

	NotifyCyclesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "timetable_bot_notify_cycles_total",
			Help: "Total number of completed notification fanout cycles",
		},
	)
)

// RecordPoll records the outcome of one upstream poll request.
func RecordPoll(status string) {
	PollsTotal.WithLabelValues(status).Inc()
}

// RecordSnapshotFetch records the outcome of one snapshot fetch.
func RecordSnapshotFetch(status string) {
	SnapshotFetchesTotal.WithLabelValues(status).Inc()
}

// RecordNotification records the outcome of one recipient send.
func RecordNotification(status string) {
	NotificationsSentTotal.WithLabelValues(status).Inc()
}

// RecordNotifyCycle records one completed fanout cycle.
func RecordNotifyCycle() {
	NotifyCyclesTotal.Inc()
}
