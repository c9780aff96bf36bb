package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	appointmentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "autocare",
			Name:      "appointments_created_total",
			Help:      "Appointments accepted by the intake validator.",
		},
	)

	statusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "autocare",
			Name:      "appointment_status_transitions_total",
			Help:      "Admin-driven status transitions by target status.",
		},
		[]string{"status"},
	)

	notificationAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "autocare",
			Name:      "notification_attempts_total",
			Help:      "Notification deliveries by channel and outcome.",
		},
		[]string{"channel", "outcome"},
	)

	chatMessages = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "autocare",
			Name:      "chat_messages_total",
			Help:      "Chatbot messages answered.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(appointmentsCreated, statusTransitions, notificationAttempts, chatMessages)
	})
}

func IncAppointmentCreated() {
	appointmentsCreated.Inc()
}

func IncStatusTransition(status string) {
	statusTransitions.WithLabelValues(status).Inc()
}

// IncNotification records a delivery attempt. outcome is one of
// "sent", "failed", "skipped".
func IncNotification(channel, outcome string) {
	notificationAttempts.WithLabelValues(channel, outcome).Inc()
}

func IncChatMessage() {
	chatMessages.Inc()
}
