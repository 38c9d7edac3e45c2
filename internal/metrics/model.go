package metrics

import "github.com/prometheus/client_golang/prometheus"

// Model and recommendation Prometheus metrics.
var (
	ModelOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jobmatch",
			Name:      "model_operations_total",
			Help:      "Total model fit/load/save operations",
		},
		[]string{"op", "status"}, // op: fit|load|save, status: ok|error
	)

	ModelFitDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "jobmatch",
			Name:      "model_fit_duration_seconds",
			Help:      "TF-IDF fit duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	ModelVocabularySize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "jobmatch",
			Name:      "model_vocabulary_size",
			Help:      "Number of terms in the current vocabulary",
		},
	)

	ModelDocuments = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "jobmatch",
			Name:      "model_documents",
			Help:      "Number of document vectors in the current model",
		},
	)

	ModelCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jobmatch",
			Name:      "model_cache_total",
			Help:      "In-memory model cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	CorpusLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jobmatch",
			Name:      "corpus_loads_total",
			Help:      "Corpus load attempts",
		},
		[]string{"status"}, // ok|empty|error|cached
	)

	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jobmatch",
			Name:      "recommendations_total",
			Help:      "Recommendation requests by outcome",
		},
		[]string{"outcome"},
	)
)

var modelMetricsRegistered bool

// RegisterModelMetrics registers model and recommendation metrics. Must be called once from main.
func RegisterModelMetrics() {
	if modelMetricsRegistered {
		return
	}
	prometheus.MustRegister(ModelOperationsTotal)
	prometheus.MustRegister(ModelFitDuration)
	prometheus.MustRegister(ModelVocabularySize)
	prometheus.MustRegister(ModelDocuments)
	prometheus.MustRegister(ModelCacheTotal)
	prometheus.MustRegister(CorpusLoadsTotal)
	prometheus.MustRegister(RecommendationsTotal)
	modelMetricsRegistered = true
}
