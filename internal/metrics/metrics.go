package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds all Prometheus metrics.
type Registry struct {
	*prometheus.Registry

	symbolsScanned   *prometheus.CounterVec
	scanDuration     prometheus.Histogram
	symbolDuration   prometheus.Histogram
	signalsGenerated *prometheus.CounterVec
	fetchErrors      *prometheus.CounterVec
	watchlistSymbols prometheus.Gauge
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	// Register Go runtime metrics
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		Registry: reg,

		symbolsScanned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tascan_symbols_scanned_total",
				Help: "Total number of symbols scanned",
			},
			[]string{"status"},
		),
		scanDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tascan_scan_duration_seconds",
				Help:    "Full watchlist scan duration in seconds",
				Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
			},
		),
		symbolDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tascan_symbol_duration_seconds",
				Help:    "Per-symbol fetch and analysis duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		signalsGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tascan_signals_generated_total",
				Help: "Total number of indicator signals generated",
			},
			[]string{"class"},
		),
		fetchErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tascan_fetch_errors_total",
				Help: "Total number of data fetch failures",
			},
			[]string{"collector"},
		),
		watchlistSymbols: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "tascan_watchlist_symbols",
				Help: "Number of symbols in watchlist",
			},
		),
	}

	reg.MustRegister(r.symbolsScanned)
	reg.MustRegister(r.scanDuration)
	reg.MustRegister(r.symbolDuration)
	reg.MustRegister(r.signalsGenerated)
	reg.MustRegister(r.fetchErrors)
	reg.MustRegister(r.watchlistSymbols)

	return r
}

// RecordSymbol records one scanned symbol with its outcome.
func (r *Registry) RecordSymbol(status string, duration float64) {
	r.symbolsScanned.WithLabelValues(status).Inc()
	r.symbolDuration.Observe(duration)
}

// RecordScan records a full watchlist scan completion.
func (r *Registry) RecordScan(duration float64) {
	r.scanDuration.Observe(duration)
}

// RecordSignal records a generated signal by class.
func (r *Registry) RecordSignal(class string) {
	r.signalsGenerated.WithLabelValues(class).Inc()
}

// RecordFetchError records a collector failure.
func (r *Registry) RecordFetchError(collector string) {
	r.fetchErrors.WithLabelValues(collector).Inc()
}

// SetWatchlistSize sets the watchlist size.
func (r *Registry) SetWatchlistSize(size int) {
	r.watchlistSymbols.Set(float64(size))
}
