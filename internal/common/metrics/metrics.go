// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_analyses_total",
			Help: "Analyses produced, by feasibility rating",
		},
		[]string{"rating"},
	)

	FeasibilityScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "career_feasibility_score",
			Help:    "Distribution of feasibility scores",
			Buckets: []float64{15, 25, 40, 50, 60, 70, 80, 90, 95},
		},
	)

	EnrichmentFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_enrichment_failures_total",
			Help: "Enrichment provider calls that failed or timed out",
		},
		[]string{"provider"},
	)

	AnalysisCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_analysis_cache_total",
			Help: "Analysis cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)
)
