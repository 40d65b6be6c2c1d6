package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// emailsSent counts dispatch attempts by outcome.
	// Labels:
	// - status: "success" or "failed"
	emailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mailsender",
			Subsystem: "email",
			Name:      "sent_total",
			Help:      "Total number of email send attempts by outcome",
		},
		[]string{"status"},
	)

	// selfChecks counts periodic self-check runs by outcome.
	// Labels:
	// - status: "success" or "failure"
	selfChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mailsender",
			Subsystem: "selfcheck",
			Name:      "runs_total",
			Help:      "Total number of self-check runs by outcome",
		},
		[]string{"status"},
	)

	// referralCache counts referral list cache lookups.
	// Labels:
	// - result: "hit" or "miss"
	referralCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mailsender",
			Subsystem: "cache",
			Name:      "referral_lookups_total",
			Help:      "Referral list cache lookups by result",
		},
		[]string{"result"},
	)
)

// IncEmailSent increments the email send counter for the given outcome.
func IncEmailSent(status string) {
	if status == "" {
		status = "unknown"
	}
	emailsSent.WithLabelValues(status).Inc()
}

// IncSelfCheck increments the self-check counter for the given outcome.
func IncSelfCheck(status string) {
	if status == "" {
		status = "unknown"
	}
	selfChecks.WithLabelValues(status).Inc()
}

// IncReferralCache increments the referral cache lookup counter.
func IncReferralCache(result string) {
	if result == "" {
		result = "unknown"
	}
	referralCache.WithLabelValues(result).Inc()
}
