// Package main implements streampipe, a demo pipeline for the streamkit
// module: stdin lines flow through a bounded stream with backpressure
// into a worker-pool dispatcher that writes them to stdout.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/c360/streamkit/metric"
	"github.com/c360/streamkit/stream"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "streampipe"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Application failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}
	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	cfg, err := LoadConfig(cliCfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cliCfg.Validate {
		slog.Info("Configuration is valid")
		return nil
	}

	slog.Info("Starting streampipe",
		"version", Version,
		"capacity", cfg.Pipeline.Capacity,
		"workers", cfg.Pipeline.Workers,
		"metrics_enabled", cfg.Metrics.Enabled)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	registry, metricsServer, err := setupMetrics(cfg)
	if err != nil {
		return err
	}
	if metricsServer != nil {
		defer func() {
			if err := metricsServer.Stop(5 * time.Second); err != nil {
				slog.Warn("Metrics server shutdown failed", "error", err)
			}
		}()
	}

	return runPipeline(ctx, cfg, registry, cliCfg.ShutdownTimeout)
}

// setupMetrics creates the registry and scrape endpoint when enabled.
func setupMetrics(cfg *Config) (*metric.Registry, *metric.Server, error) {
	if !cfg.Metrics.Enabled {
		return nil, nil, nil
	}

	registry := metric.NewRegistry()
	server := metric.NewServer(cfg.Metrics.Port, cfg.Metrics.Path, registry)
	if err := server.Start(); err != nil {
		return nil, nil, fmt.Errorf("start metrics server: %w", err)
	}

	slog.Info("Metrics server started", "port", cfg.Metrics.Port, "path", cfg.Metrics.Path)
	return registry, server, nil
}

// runPipeline wires stdin → stream → dispatcher → stdout and blocks
// until input is exhausted or a shutdown signal arrives.
func runPipeline(ctx context.Context, cfg *Config, registry *metric.Registry, shutdownTimeout time.Duration) error {
	streamOpts := []stream.Option[string]{
		stream.WithCapacity[string](cfg.Pipeline.Capacity),
		stream.WithPollCadence[string](cfg.Pipeline.PollCadence),
		stream.WithOnClosed(func(s *stream.Stream[string]) {
			slog.Info("Stream closed", "written", s.Stats().Writes(), "read", s.Stats().Reads())
		}),
		stream.WithOnError(func(_ *stream.Stream[string], err error) {
			slog.Error("Stream errored", "error", err)
		}),
	}
	if registry != nil {
		streamOpts = append(streamOpts, stream.WithMetrics[string](registry, "pipeline"))
	}

	s, err := stream.New(streamOpts...)
	if err != nil {
		return fmt.Errorf("create stream: %w", err)
	}

	// Workers share the writer, so output is serialized here.
	var outMu sync.Mutex
	out := bufio.NewWriter(os.Stdout)
	handler := func(_ context.Context, line string) error {
		outMu.Lock()
		defer outMu.Unlock()
		_, werr := fmt.Fprintln(out, line)
		return werr
	}

	dispatchOpts := []stream.DispatcherOption{
		stream.WithWorkers(cfg.Pipeline.Workers),
		stream.WithQueueSize(cfg.Pipeline.QueueSize),
	}
	if registry != nil {
		dispatchOpts = append(dispatchOpts, stream.WithPoolMetrics(registry, "streampipe"))
	}

	dispatcher, err := stream.NewDispatcher(s, handler, dispatchOpts...)
	if err != nil {
		return fmt.Errorf("create dispatcher: %w", err)
	}
	if err := dispatcher.Start(ctx); err != nil {
		return fmt.Errorf("start dispatcher: %w", err)
	}

	produceErr := produce(ctx, s, cfg.Pipeline.AsyncTimeout)

	// Orderly close; the dispatcher drains whatever is still buffered.
	if cerr := s.Close(); cerr != nil {
		slog.Warn("Stream close failed", "error", cerr)
	}
	if err := dispatcher.Stop(shutdownTimeout); err != nil {
		return fmt.Errorf("stop dispatcher: %w", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	stats := s.Stats().Summary()
	slog.Info("Pipeline finished",
		"lines", stats.Writes,
		"overflow_waits", stats.AsyncWrites,
		"state", s.State().String())

	return produceErr
}

// produce feeds stdin lines into the stream, falling back to a
// deadline-bound asynchronous write when the buffer is full.
func produce(ctx context.Context, s *stream.Stream[string], asyncTimeout time.Duration) error {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			slog.Info("Shutdown signal received, stopping input")
			return nil
		default:
		}

		line := scanner.Text()
		err := s.Write(line)
		if err == nil {
			continue
		}

		// Full buffer: wait for the dispatcher to free space, bounded
		// by the configured deadline.
		if werr := <-s.WriteAsync([]string{line}, asyncTimeout); werr != nil {
			return fmt.Errorf("write %q: %w", line, werr)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}
