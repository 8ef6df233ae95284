// Package metric provides Prometheus-based observability for StreamKit.
//
// # Overview
//
// The package centers on Registry, which owns a private prometheus.Registry,
// pre-registers the core stream metrics (open streams, elements written and
// read, write failures by kind, async writes in flight), and lets components
// register their own metrics under a unique component.name key with duplicate
// detection. Server exposes the registry for scraping over HTTP.
//
// # Usage
//
//	registry := metric.NewRegistry()
//
//	// Component-specific metric
//	hits := prometheus.NewCounter(prometheus.CounterOpts{
//	    Name: "pipeline_lines_total",
//	    Help: "Lines piped through",
//	})
//	if err := registry.RegisterCounter("pipeline", "lines_total", hits); err != nil {
//	    return err
//	}
//
//	// Scrape endpoint
//	server := metric.NewServer(9090, "/metrics", registry)
//	if err := server.Start(); err != nil {
//	    return err
//	}
//	defer server.Stop(5 * time.Second)
//
// Streams export their per-instance metrics through this registry when
// constructed with stream.WithMetrics.
package metric
