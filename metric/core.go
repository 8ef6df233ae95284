package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Core contains platform-level stream metrics (not component-specific)
type Core struct {
	StreamsOpen         prometheus.Gauge
	StreamsErrored      prometheus.Counter
	ElementsWritten     *prometheus.CounterVec
	ElementsRead        *prometheus.CounterVec
	WriteFailures       *prometheus.CounterVec
	AsyncWritesInFlight prometheus.Gauge
}

// NewCore creates a new Core instance with all platform metrics
func NewCore() *Core {
	return &Core{
		StreamsOpen: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "streamkit",
				Subsystem: "stream",
				Name:      "open",
				Help:      "Number of streams that have not reached a terminal state",
			},
		),

		StreamsErrored: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "streamkit",
				Subsystem: "stream",
				Name:      "errored_total",
				Help:      "Total number of streams driven to the errored state",
			},
		),

		ElementsWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streamkit",
				Subsystem: "stream",
				Name:      "elements_written_total",
				Help:      "Total number of elements admitted to stream buffers",
			},
			[]string{"stream"},
		),

		ElementsRead: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streamkit",
				Subsystem: "stream",
				Name:      "elements_read_total",
				Help:      "Total number of elements consumed from stream buffers",
			},
			[]string{"stream"},
		),

		WriteFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streamkit",
				Subsystem: "stream",
				Name:      "write_failures_total",
				Help:      "Total number of rejected writes by failure kind",
			},
			[]string{"stream", "kind"},
		),

		AsyncWritesInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "streamkit",
				Subsystem: "stream",
				Name:      "async_writes_in_flight",
				Help:      "Number of asynchronous writes awaiting capacity",
			},
		),
	}
}
