// Package metrics defines the Prometheus metrics of the bot.
// All metrics are registered with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "medina"

// QuestionsTotal counts question attempts.
// Label result: "accepted", "blocked" or "limited".
var QuestionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "questions_total",
		Help:      "Total number of question attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// CompletionErrorsTotal counts failed completion calls
var CompletionErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "completion_errors_total",
		Help:      "Total number of completion requests that failed or timed out.",
	},
)

// CompletionDuration measures completion round trips.
// Label status: "ok" or "error".
var CompletionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "completion_duration_seconds",
		Help:      "Duration of completion service requests.",
		Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 20, 40, 60},
	},
	[]string{"status"},
)

// AdminActionsTotal counts executed admin operations by action name
var AdminActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_actions_total",
		Help:      "Total number of admin workflow operations, labelled by action.",
	},
	[]string{"action"},
)

// IgnoredMessagesTotal counts inbound events that produced no reply.
// Label reason: "unregistered", "unauthorized", "no_match".
var IgnoredMessagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ignored_messages_total",
		Help:      "Total number of inbound events ignored without a reply.",
	},
	[]string{"reason"},
)

// ActivityDroppedTotal counts activity entries not mirrored to the sink
// because its queue was full
var ActivityDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_dropped_total",
		Help:      "Total number of activity entries dropped before reaching the external sink.",
	},
)
