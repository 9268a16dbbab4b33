package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the bridge.
type Metrics struct {
	ProposalsConsumed  prometheus.Counter
	ProposalsPublished prometheus.Counter
	DecodeFailures     prometheus.Counter
	ValidationFailures prometheus.Counter
	PublishFailures    prometheus.Counter
	AutoApproved       prometheus.Counter
	ProposalsRouted    *prometheus.CounterVec
	PriorityScore      prometheus.Histogram
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		ProposalsConsumed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "proposal_bridge_consumed_total",
			Help: "Total number of proposal events consumed from the inbound topic",
		}),
		ProposalsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "proposal_bridge_published_total",
			Help: "Total number of proposal events published to the outbound topic",
		}),
		DecodeFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "proposal_bridge_decode_failures_total",
			Help: "Total number of inbound events that could not be decoded",
		}),
		ValidationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "proposal_bridge_validation_failures_total",
			Help: "Total number of proposals rejected by domain validation",
		}),
		PublishFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "proposal_bridge_publish_failures_total",
			Help: "Total number of outbound publish attempts that failed",
		}),
		AutoApproved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "proposal_bridge_auto_approved_total",
			Help: "Total number of proposals routed past human review",
		}),
		ProposalsRouted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "proposal_bridge_routed_total",
			Help: "Total number of proposals routed, by review team",
		}, []string{"team"}),
		PriorityScore: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "proposal_bridge_priority_score",
			Help:    "Distribution of computed proposal priority scores",
			Buckets: prometheus.LinearBuckets(0, 15, 8),
		}),
	}
}
