package dictionary

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics counts dictionary operations observed by Instrumented.
type Metrics struct {
	puts             *prometheus.CounterVec
	removes          prometheus.Counter
	misses           *prometheus.CounterVec
	clears           prometheus.Counter
	iteratorFailures prometheus.Counter
	entries          prometheus.Gauge
}

// MetricsSnapshot is a point-in-time copy of the counters in Metrics.
type MetricsSnapshot struct {
	Inserts          int64
	Overwrites       int64
	Removes          int64
	GetMisses        int64
	RemoveMisses     int64
	Clears           int64
	IteratorFailures int64
	Entries          int64
}

// NewMetrics creates the collectors under namespace and registers them with
// reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	m := &Metrics{
		puts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "puts_total",
			Help:      "Put calls by outcome.",
		}, []string{"result"}),
		removes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "removes_total",
			Help:      "Entries removed.",
		}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "misses_total",
			Help:      "Lookups and removals of absent keys.",
		}, []string{"op"}),
		clears: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clears_total",
			Help:      "Clear calls.",
		}),
		iteratorFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iterator_failures_total",
			Help:      "Iterations aborted by a concurrent modification.",
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entries",
			Help:      "Current number of entries.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.puts, m.removes, m.misses, m.clears, m.iteratorFailures, m.entries)
	}
	return m
}

func (m *Metrics) IncInsert() {
	m.puts.WithLabelValues("insert").Inc()
}

func (m *Metrics) IncOverwrite() {
	m.puts.WithLabelValues("overwrite").Inc()
}

func (m *Metrics) IncRemove() {
	m.removes.Inc()
}

func (m *Metrics) IncMiss(op string) {
	m.misses.WithLabelValues(op).Inc()
}

func (m *Metrics) IncClear() {
	m.clears.Inc()
}

func (m *Metrics) IncIteratorFailure() {
	m.iteratorFailures.Inc()
}

func (m *Metrics) SetLen(n int) {
	m.entries.Set(float64(n))
}

// Snapshot reads the current value of every collector.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Inserts:          readValue(m.puts.WithLabelValues("insert")),
		Overwrites:       readValue(m.puts.WithLabelValues("overwrite")),
		Removes:          readValue(m.removes),
		GetMisses:        readValue(m.misses.WithLabelValues("get")),
		RemoveMisses:     readValue(m.misses.WithLabelValues("remove")),
		Clears:           readValue(m.clears),
		IteratorFailures: readValue(m.iteratorFailures),
		Entries:          readValue(m.entries),
	}
}

func readValue(c prometheus.Metric) int64 {
	var pb dto.Metric
	if err := c.Write(&pb); err != nil {
		return 0
	}
	switch {
	case pb.Counter != nil:
		return int64(pb.Counter.GetValue())
	case pb.Gauge != nil:
		return int64(pb.Gauge.GetValue())
	default:
		return 0
	}
}
