// Package metrics holds the Prometheus collectors for the import pipeline
// and the OMDB client. Collectors are registered on the default registry and
// exposed through GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FilesScanned counts files that passed the extension and hidden-name
	// filters and were scheduled for import.
	FilesScanned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "movievault_import_files_scanned_total",
		Help: "Library files scheduled for import.",
	})

	// MoviesImported counts rows actually written to the movies table.
	MoviesImported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "movievault_import_movies_imported_total",
		Help: "Movies inserted during import.",
	})

	// FilesSkipped counts files dropped before the write, by reason.
	FilesSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "movievault_import_files_skipped_total",
		Help: "Library files skipped during import.",
	}, []string{"reason"})

	// ImportFailures counts files whose import ended in an error.
	ImportFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "movievault_import_failures_total",
		Help: "Library files that failed to import.",
	})

	// OMDBLookups counts metadata lookups by outcome.
	OMDBLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "movievault_omdb_lookups_total",
		Help: "OMDB title lookups by outcome.",
	}, []string{"outcome"})

	// OMDBLookupDuration observes the wall time of OMDB lookups.
	OMDBLookupDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "movievault_omdb_lookup_duration_seconds",
		Help:    "Duration of OMDB title lookups.",
		Buckets: prometheus.DefBuckets,
	})

	// OMDBLookupsInFlight tracks concurrent OMDB lookups.
	OMDBLookupsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "movievault_omdb_lookups_in_flight",
		Help: "OMDB lookups currently in progress.",
	})
)

const (
	SkipReasonHidden    = "hidden"
	SkipReasonEmpty     = "empty_title"
	SkipReasonDuplicate = "duplicate"
	SkipReasonConflict  = "conflict"
)
