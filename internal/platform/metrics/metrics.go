package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	backendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kizuna_backend_request_duration_seconds",
			Help:    "Duración de las llamadas al backend de la clínica",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "outcome"},
	)

	remindersSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kizuna_reminders_sent_total",
			Help: "Recordatorios confirmados por el backend",
		},
	)

	reminderFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kizuna_reminder_failures_total",
			Help: "Envíos de recordatorio fallidos por etapa",
		},
		[]string{"stage", "kind"},
	)

	notificationsPushed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kizuna_notifications_pushed_total",
			Help: "Notificaciones encoladas para la UI",
		},
	)
)

// ObserveBackend registra la duración de una operación del gateway.
func ObserveBackend(operation string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	backendRequestDuration.WithLabelValues(operation, outcome).Observe(time.Since(start).Seconds())
}

func ReminderSent() { remindersSent.Inc() }

// ReminderFailed: stage = generate|send, kind = connectivity|rejected|empty.
func ReminderFailed(stage, kind string) {
	reminderFailures.WithLabelValues(stage, kind).Inc()
}

func NotificationPushed() { notificationsPushed.Inc() }

func Handler() http.Handler {
	return promhttp.Handler()
}
