package batch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	framesConverted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "framekit_frames_converted_total",
		Help: "Number of NV12 frames converted to RGB24.",
	})
	convertErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "framekit_convert_errors_total",
		Help: "Number of frames that failed to convert.",
	})
	convertDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "framekit_convert_duration_seconds",
		Help:    "Time spent converting a single frame.",
		Buckets: prometheus.DefBuckets,
	})
)
