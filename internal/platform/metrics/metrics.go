package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	AttendanceAttempts   *prometheus.CounterVec
	VerificationDuration *prometheus.HistogramVec
	UsersCreated         prometheus.Counter
	SignIns              *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics on reg. Passing a fresh
// registry keeps tests isolated from the process-wide default.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AttendanceAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "presence_attendance_attempts_total",
			Help: "Attendance attempts by direction, outcome, and failure code",
		}, []string{"direction", "outcome", "code"}),
		VerificationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "presence_verification_duration_seconds",
			Help:    "Time spent in biometric and location verification",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"step", "result"}),
		UsersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "presence_users_created_total",
			Help: "Total number of users created in the system",
		}),
		SignIns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "presence_sign_ins_total",
			Help: "Sign-in attempts by result",
		}, []string{"result"}),
	}
}

// ObserveAttempt counts a finished attendance attempt.
func (m *Metrics) ObserveAttempt(direction, outcome, code string) {
	m.AttendanceAttempts.WithLabelValues(direction, outcome, code).Inc()
}

// ObserveVerification records how long a verification step took.
func (m *Metrics) ObserveVerification(step string, ok bool, d time.Duration) {
	result := "ok"
	if !ok {
		result = "failed"
	}
	m.VerificationDuration.WithLabelValues(step, result).Observe(d.Seconds())
}

// IncrementUsersCreated increments the users created counter by 1
func (m *Metrics) IncrementUsersCreated() {
	m.UsersCreated.Inc()
}

func (m *Metrics) IncrementSignIns(result string) {
	m.SignIns.WithLabelValues(result).Inc()
}
