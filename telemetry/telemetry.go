// Package telemetry exposes Prometheus collectors for optimization runs.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values for the optimizations counter.
const (
	ResultSuccess = "success"
)

// Recorder holds the wasteroute collectors. The zero value is not usable;
// create one with NewRecorder.
type Recorder struct {
	Optimizations   *prometheus.CounterVec
	MSTDuration     *prometheus.HistogramVec
	SavingsRatio    *prometheus.GaugeVec
	DefaultedWeight prometheus.Counter
}

// NewRecorder creates the collectors and registers them with reg.
// A nil reg registers nothing, which suits tests and one-shot runs.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		Optimizations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wasteroute",
				Name:      "optimizations_total",
				Help:      "Total number of spanning tree optimizations by outcome",
			},
			[]string{"algorithm", "result"},
		),

		MSTDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "wasteroute",
				Name:      "mst_duration_seconds",
				Help:      "Spanning tree computation duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"algorithm"},
		),

		SavingsRatio: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "wasteroute",
				Name:      "savings_ratio",
				Help:      "Share of street length left out of the last spanning tree (0..1)",
			},
			[]string{"algorithm"},
		),

		DefaultedWeight: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "wasteroute",
				Name:      "prepared_edges_defaulted_total",
				Help:      "Total number of street segments whose weight was replaced by the fallback",
			},
		),
	}

	if reg == nil {
		return r, nil
	}
	for _, c := range []prometheus.Collector{r.Optimizations, r.MSTDuration, r.SavingsRatio, r.DefaultedWeight} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// ObserveOptimization records one optimizer run. result is ResultSuccess or a
// short failure kind; elapsed and savingsPercent are only recorded on success.
func (r *Recorder) ObserveOptimization(algorithm, result string, elapsed time.Duration, savingsPercent float64) {
	r.Optimizations.WithLabelValues(algorithm, result).Inc()
	if result != ResultSuccess {
		return
	}
	r.MSTDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	r.SavingsRatio.WithLabelValues(algorithm).Set(savingsPercent / 100)
}

// AddDefaultedWeights counts segments repaired by the preparer.
func (r *Recorder) AddDefaultedWeights(n int) {
	if n > 0 {
		r.DefaultedWeight.Add(float64(n))
	}
}
