package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lightage_renders_total",
			Help: "Total observation renders",
		},
		[]string{"surface"},
	)

	RenderLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lightage_render_latency_seconds",
			Help:    "Time to build and write one render in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"surface"},
	)

	DirectionExtractions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lightage_direction_extractions_total",
			Help: "Image direction extractions by outcome",
		},
		[]string{"status"},
	)

	UploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lightage_upload_bytes",
			Help:    "Size of uploaded images in bytes",
			Buckets: prometheus.ExponentialBuckets(16<<10, 4, 8),
		},
	)

	UploadsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lightage_uploads_rejected_total",
			Help: "Uploads that could not be used",
		},
		[]string{"reason"},
	)

	ChartCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lightage_chart_cache_lookups_total",
			Help: "Chart PNG cache lookups by result",
		},
		[]string{"result"},
	)
)
