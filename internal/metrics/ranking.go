package metrics

import "github.com/prometheus/client_golang/prometheus"

// Ranking Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tracuu",
			Name:      "searches_total",
			Help:      "Total number of search queries",
		},
		[]string{"outcome"}, // "hit" / "empty" / "blank_query"
	)

	SearchCorpusSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tracuu",
			Name:      "search_corpus_size",
			Help:      "Number of candidate records scored per search",
			Buckets:   []float64{10, 50, 100, 250, 500, 1000, 2500, 5000},
		},
		[]string{"entity"}, // "topic" / "section" / "category"
	)

	RelatedComputationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tracuu",
			Name:      "related_computations_total",
			Help:      "Total number of related-topic rankings computed",
		},
		[]string{"outcome"}, // "hit" / "empty" / "not_found"
	)

	RelatedRankingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "tracuu",
			Name:      "related_ranking_duration_seconds",
			Help:      "Wall time spent building the vector space and ranking",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)
)

var rankingMetricsRegistered bool

// RegisterRankingMetrics registers ranking metrics. Must be called once from main.
func RegisterRankingMetrics() {
	if rankingMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchCorpusSize)
	prometheus.MustRegister(RelatedComputationsTotal)
	prometheus.MustRegister(RelatedRankingDuration)
	rankingMetricsRegistered = true
}
