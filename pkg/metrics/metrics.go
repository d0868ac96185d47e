package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code", "service"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "service"},
	)

	DraftsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "press_release_drafts_generated_total",
			Help: "Total number of press release drafts generated",
		},
		[]string{"pr_type"},
	)

	FactSheetAnalyses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fact_sheet_analyses_total",
			Help: "Total number of fact sheet analyses by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	LLMRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_requests_total",
			Help: "Total number of LLM requests by provider, model and status",
		},
		[]string{"provider", "model", "status"},
	)

	NewsItemsFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_items_fetched_total",
			Help: "Total number of news items fetched from the search provider",
		},
		[]string{"provider"},
	)

	ClippingRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clipping_runs_total",
			Help: "Total number of clipping subscription runs by type and status",
		},
		[]string{"type", "status"},
	)

	ApplicationInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "application_info",
			Help: "Application information",
		},
		[]string{"service", "version", "environment"},
	)
)

// Init sets the static application info gauge.
func Init(serviceName, version, environment string) {
	ApplicationInfo.WithLabelValues(serviceName, version, environment).Set(1)
}
