package stream

import (
	"github.com/c360/streamkit/errors"
	"github.com/c360/streamkit/metric"
)

// streamMetrics bridges a stream's accounting into the module's core
// Prometheus metrics, labeled by stream name.
type streamMetrics struct {
	core *metric.Core
	name string
}

func newStreamMetrics(registry *metric.Registry, name string) (*streamMetrics, error) {
	if registry == nil {
		return nil, errors.WrapInvalid(errors.ErrNilValue, "stream", "newStreamMetrics", "registry check")
	}
	if name == "" {
		return nil, errors.WrapInvalid(errors.ErrEmptyValue, "stream", "newStreamMetrics", "name check")
	}
	return &streamMetrics{core: registry.Core, name: name}, nil
}

func (m *streamMetrics) opened() {
	m.core.StreamsOpen.Inc()
}

// terminal is recorded exactly once per stream, on the Closed or
// Errored transition.
func (m *streamMetrics) terminal() {
	m.core.StreamsOpen.Dec()
}

func (m *streamMetrics) errored() {
	m.core.StreamsErrored.Inc()
}

func (m *streamMetrics) recordWrite(n int) {
	m.core.ElementsWritten.WithLabelValues(m.name).Add(float64(n))
}

func (m *streamMetrics) recordRead(n int) {
	m.core.ElementsRead.WithLabelValues(m.name).Add(float64(n))
}

func (m *streamMetrics) writeFailure(kind string) {
	m.core.WriteFailures.WithLabelValues(m.name, kind).Inc()
}

func (m *streamMetrics) asyncStarted() {
	m.core.AsyncWritesInFlight.Inc()
}

func (m *streamMetrics) asyncFinished() {
	m.core.AsyncWritesInFlight.Dec()
}
