// # internal/observability/metrics.go
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cyclescan_scan_seconds",
		Help:    "Time spent on one full tree scan.",
		Buckets: prometheus.DefBuckets,
	})

	GraphNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cyclescan_graph_nodes_total",
		Help: "Number of files in the reference graph of the last scan.",
	})

	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cyclescan_graph_edges_total",
		Help: "Number of edges in the reference graph of the last scan.",
	})

	CyclesFound = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cyclescan_cycles_found",
		Help: "Number of distinct cycles detected in the last scan.",
	})

	SkippedFilesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cyclescan_skipped_files_total",
		Help: "Total number of files skipped because they could not be read.",
	})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cyclescan_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})

	RescansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cyclescan_rescans_total",
		Help: "Total number of rescans triggered in watch mode.",
	})
)
