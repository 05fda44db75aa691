// Command fake-vhal runs an emulated vehicle HAL backend.
//
// It bootstraps a fake vehicle hardware from the built-in property set (plus
// an optional YAML declarations file), connects a HAL client to it through a
// pass-through connector and optionally:
//   - simulates driving data (speed, RPM, wheel ticks, gear)
//   - records every property event to a CBOR log
//   - persists property values across restarts
//   - runs an interactive shell
//
// Usage:
//
//	fake-vhal [flags]
//
// Flags:
//
//	-config string      Configuration file path (YAML)
//	-props string       Property declarations file (YAML)
//	-log-level string   Log level: debug, info, warn, error (default "info")
//	-event-log string   Record property events to this CBOR file
//	-trace              Log every property event at debug level
//	-state string       Snapshot file: restored at start, saved on exit
//	-reset              Clear the snapshot file before starting
//	-simulate           Enable simulation mode
//	-sim-interval dur   Simulation step interval (default 1s)
//	-pool-size int      Maximum recycled property values kept for reuse
//	-interactive        Enable interactive command mode
//
// Examples:
//
//	# Interactive session with simulation
//	fake-vhal -interactive -simulate
//
//	# Record events and keep state between runs
//	fake-vhal -event-log /tmp/vhal.vlog -state /tmp/vhal-state.json
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/vhal-go/fakevhal/cmd/fake-vhal/interactive"
	"github.com/vhal-go/fakevhal/pkg/connector"
	"github.com/vhal-go/fakevhal/pkg/hardware"
	"github.com/vhal-go/fakevhal/pkg/log"
	"github.com/vhal-go/fakevhal/pkg/persistence"
	"github.com/vhal-go/fakevhal/pkg/pool"
	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

func main() {
	config, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}
	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(config Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// In interactive mode log output goes through readline so it does not
	// clobber the prompt; the shell is created once the hardware exists.
	logOut := &switchWriter{w: os.Stderr}
	level, _ := parseLogLevel(config.LogLevel)
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	logger.Info("Fake Vehicle HAL", "config", config.ConfigFile, "properties", config.Properties)

	declarations, err := config.declarations()
	if err != nil {
		return err
	}

	events, closeEvents, err := setupEventLogging(config, logger)
	if err != nil {
		return err
	}
	defer closeEvents()

	// The pool is shared: this function holds one reference, the hardware
	// and its store hold their own.
	values := pool.NewWithCapacity(config.PoolSize)
	defer values.Release()

	hw := hardware.NewFakeHardware(hardware.Config{
		Pool:         values,
		Logger:       logger,
		EventLogger:  events,
		Declarations: declarations,
	})
	defer hw.Close()

	var state *persistence.SnapshotStore
	if config.StateFile != "" {
		state = persistence.NewSnapshotStore(config.StateFile)
		restoreState(state, hw, config.Reset, logger)
	}

	server := connector.NewHardwareServer(hw)
	conn := connector.NewPassThrough(nil, server)
	server.Attach(conn)

	sim := newSimControl(newSimulator(hw, logger, uint64(time.Now().UnixNano())), config.SimInterval, logger)
	defer sim.Stop()

	if config.Interactive {
		shell, err := interactive.New(hw, conn, sim, state)
		if err != nil {
			return err
		}
		logOut.Set(shell.Stderr())
		conn.SetClientHandler(shell)
		go shell.Run(ctx, cancel)
	} else {
		conn.SetClientHandler(connector.ClientHandlerFunc(func(v vehicle.PropertyValue) {
			logger.Debug("value from car",
				"prop", vehicle.PropertyName(v.Prop), "area", v.AreaID, "value", v.Value.String())
		}))
	}

	if config.Simulate {
		sim.Start(ctx)
	}

	logger.Info("hardware ready",
		"session", hw.SessionID(),
		"properties", len(conn.GetAllPropertyConfig()),
		"health", hw.CheckHealth().String())

	// Wait for shutdown signal or context cancellation
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received signal", "signal", sig.String())
	case <-ctx.Done():
		// Context was cancelled (e.g., by interactive quit command)
	}

	logger.Info("shutting down")
	sim.Stop()

	if state != nil {
		snapshot := hw.Snapshot()
		if err := state.Save(snapshot); err != nil {
			logger.Warn("failed to save state", "path", state.Path(), "error", err)
		} else {
			logger.Info("saved state", "path", state.Path(), "values", len(snapshot.Values))
		}
	}

	logOut.Set(os.Stderr)
	return nil
}

// setupEventLogging builds the event logger from the -event-log and -trace
// settings. The returned func closes any file it opened.
func setupEventLogging(config Config, logger *slog.Logger) (log.Logger, func(), error) {
	var loggers []log.Logger
	closeFn := func() {}

	if config.Trace {
		loggers = append(loggers, log.NewSlogAdapter(logger))
	}
	if config.EventLog != "" {
		fileLogger, err := log.NewFileLogger(config.EventLog)
		if err != nil {
			return nil, nil, fmt.Errorf("open event log: %w", err)
		}
		loggers = append(loggers, fileLogger)
		closeFn = func() {
			written, failed := fileLogger.Stats()
			if err := fileLogger.Close(); err != nil {
				logger.Warn("failed to close event log", "error", err)
			}
			logger.Info("event log closed", "path", config.EventLog, "written", written, "failed", failed)
		}
	}

	switch len(loggers) {
	case 0:
		return log.NoopLogger{}, closeFn, nil
	case 1:
		return loggers[0], closeFn, nil
	default:
		return log.NewMultiLogger(loggers...), closeFn, nil
	}
}

// restoreState loads the snapshot into hw, clearing it first when reset is
// set. Failures are logged; the hardware keeps its seeded values.
func restoreState(state *persistence.SnapshotStore, hw *hardware.FakeHardware, reset bool, logger *slog.Logger) {
	if reset {
		if err := state.Clear(); err != nil {
			logger.Warn("failed to clear state", "path", state.Path(), "error", err)
		}
		return
	}

	snapshot, err := state.Load()
	if err != nil {
		logger.Warn("failed to load state", "path", state.Path(), "error", err)
		return
	}
	if snapshot == nil {
		return
	}
	if _, err := hw.Restore(snapshot); err != nil {
		logger.Warn("failed to restore state", "path", state.Path(), "error", err)
	}
}

// switchWriter forwards writes to a writer that can be replaced at runtime.
type switchWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Set replaces the destination writer.
func (s *switchWriter) Set(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = w
}
