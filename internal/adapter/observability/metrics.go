package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// AnalysesTotal counts completed single-CV analyses by outcome:
	// ok, fallback, invalid_input.
	AnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyses_total",
			Help: "Total number of CV analyses by outcome",
		},
		[]string{"outcome"},
	)
	AnalysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analysis_duration_seconds",
			Help:    "End-to-end duration of one CV analysis in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		},
	)

	ModelRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "model_requests_total",
			Help: "Total number of model chat requests by status",
		},
		[]string{"status"},
	)
	ModelRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "model_request_duration_seconds",
			Help:    "Model chat request duration in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60, 120},
		},
	)

	// ParseAttemptsTotal counts parse state-machine outcomes:
	// accepted, no_json_found, parse_failed, missing_fields.
	ParseAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parse_attempts_total",
			Help: "Total number of model-response parse attempts by outcome",
		},
		[]string{"outcome"},
	)

	MatchScoreHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analysis_match_score",
			Help:    "Distribution of merged match scores (normalized fraction [0,1])",
			Buckets: []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		},
	)

	BatchItemsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "batch_items_total",
			Help: "Total number of batch items by result (ok, degraded, invalid)",
		},
		[]string{"result"},
	)
)

// InitMetrics registers all collectors with the default registry.
func InitMetrics() {
	prometheus.MustRegister(AnalysesTotal)
	prometheus.MustRegister(AnalysisDuration)
	prometheus.MustRegister(ModelRequestsTotal)
	prometheus.MustRegister(ModelRequestDuration)
	prometheus.MustRegister(ParseAttemptsTotal)
	prometheus.MustRegister(MatchScoreHistogram)
	prometheus.MustRegister(BatchItemsTotal)
}
