package reader

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

var (
	indexBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fastmarc_index_build_duration_seconds",
			Help:    "Time spent building the record boundary index",
			Buckets: prometheus.DefBuckets,
		},
	)

	indexBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fastmarc_index_builds_total",
			Help: "Total number of index construction passes",
		},
		[]string{"status"},
	)

	recordsIndexedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fastmarc_records_indexed_total",
			Help: "Total number of record descriptors produced by indexing",
		},
	)

	recordsDecodedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fastmarc_records_decoded_total",
			Help: "Total number of record decode attempts",
		},
		[]string{"status"},
	)
)
