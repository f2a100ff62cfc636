package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess       = "success"
	OutcomeSessionFull   = "session_full"
	OutcomeAlreadyBooked = "already_booked"
	OutcomeNotFound      = "not_found"
	OutcomeRejected      = "rejected"
	OutcomeError         = "error"
)

var (
	bookingAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "academy",
		Subsystem: "bookings",
		Name:      "attempts_total",
		Help:      "Booking attempts grouped by outcome.",
	}, []string{"outcome"})

	loginAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "academy",
		Subsystem: "auth",
		Name:      "logins_total",
		Help:      "Identity provider logins grouped by outcome.",
	}, []string{"outcome"})

	sessionsSwept = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "academy",
		Subsystem: "auth",
		Name:      "expired_sessions_swept_total",
		Help:      "Expired auth sessions removed by the maintenance sweep.",
	})

	eventPublishFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "academy",
		Subsystem: "events",
		Name:      "publish_failures_total",
		Help:      "Booking events that could not be published.",
	})
)

func init() {
	prometheus.MustRegister(bookingAttempts, loginAttempts, sessionsSwept, eventPublishFailures)
}

func RecordBooking(outcome string) {
	bookingAttempts.WithLabelValues(outcome).Inc()
}

func RecordLogin(outcome string) {
	loginAttempts.WithLabelValues(outcome).Inc()
}

func RecordSessionsSwept(n int64) {
	if n <= 0 {
		return
	}
	sessionsSwept.Add(float64(n))
}

func RecordEventPublishFailure() {
	eventPublishFailures.Inc()
}
