// Package telemetry exposes Prometheus metrics for the catalog service.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// uploadsTotal counts workbook uploads by outcome.
	uploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_uploads_total",
		Help: "Total number of workbook uploads by outcome",
	}, []string{"outcome"}) // outcome: ok, decode_error, rejected

	// rowsNormalized counts offer records produced by the normalizer.
	rowsNormalized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_rows_normalized_total",
		Help: "Total number of offer rows normalized from uploads",
	})

	// uploadDuration tracks the decode-normalize-build time per upload.
	uploadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_upload_duration_seconds",
		Help:    "Time taken to decode, normalize and build a catalog",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
	})

	// catalogModels tracks the size of the current catalog.
	catalogModels = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_phone_models",
		Help: "Number of phone models in the current catalog",
	})

	// quotesTotal counts price quote computations by outcome.
	quotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_quotes_total",
		Help: "Total number of price quotes by outcome",
	}, []string{"outcome"}) // outcome: computed, suppressed
)

// ObserveUpload records a successful upload.
func ObserveUpload(rows, models int, elapsed time.Duration) {
	uploadsTotal.WithLabelValues("ok").Inc()
	rowsNormalized.Add(float64(rows))
	catalogModels.Set(float64(models))
	uploadDuration.Observe(elapsed.Seconds())
}

// ObserveUploadFailure records a failed or rejected upload.
func ObserveUploadFailure(outcome string) {
	uploadsTotal.WithLabelValues(outcome).Inc()
}

// ObserveQuote records a quote computation.
func ObserveQuote(computed bool) {
	if computed {
		quotesTotal.WithLabelValues("computed").Inc()
		return
	}
	quotesTotal.WithLabelValues("suppressed").Inc()
}
