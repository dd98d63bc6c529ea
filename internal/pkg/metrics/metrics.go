package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, route, and status
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// Validations counts validation passes by outcome (valid, invalid)
	Validations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "optimization_validations_total", Help: "Optimization request validations by outcome."},
		[]string{"outcome"},
	)
	// ValidationIssues counts findings by severity and category
	ValidationIssues = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "optimization_validation_issues_total", Help: "Validation findings by severity and category."},
		[]string{"severity", "category"},
	)

	// Submissions counts optimizer submissions by status (accepted, rejected, failed)
	Submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "optimization_submissions_total", Help: "Optimization submissions by status."},
		[]string{"status"},
	)
	// OptimizerLatency tracks remote optimizer call latency in seconds
	OptimizerLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "optimizer_request_duration_seconds", Help: "Remote optimizer call duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"operation", "status"},
	)

	// RunsFinished counts runs the status worker saw reach a terminal status
	RunsFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "optimization_runs_finished_total", Help: "Optimization runs finished by final status."},
		[]string{"status"},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on Registry. Safe to call more than once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(Validations)
		Registry.MustRegister(ValidationIssues)
		Registry.MustRegister(Submissions)
		Registry.MustRegister(OptimizerLatency)
		Registry.MustRegister(RunsFinished)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
