package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AuthMetrics tracks sign-in activity. All methods are nil-safe so code
// paths under test can run without a registry.
type AuthMetrics struct {
	LoginAttempts  *prometheus.CounterVec
	SessionsActive prometheus.Gauge
}

// NewAuthMetrics creates and registers the auth metrics. Call once per
// process.
func NewAuthMetrics(namespace string) *AuthMetrics {
	return &AuthMetrics{
		LoginAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Total number of login attempts",
		}, []string{"status"}),
		SessionsActive: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Current number of live sessions",
		}),
	}
}

func (m *AuthMetrics) ObserveLogin(success bool) {
	if m == nil {
		return
	}
	status := "failure"
	if success {
		status = "success"
	}
	m.LoginAttempts.WithLabelValues(status).Inc()
}

func (m *AuthMetrics) SessionOpened() {
	if m == nil {
		return
	}
	m.SessionsActive.Inc()
}

func (m *AuthMetrics) SessionClosed() {
	if m == nil {
		return
	}
	m.SessionsActive.Dec()
}
