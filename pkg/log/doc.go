// Package log provides structured property event logging for the fake
// vehicle hardware.
//
// This package defines the Logger interface and Event type for capturing
// property traffic: client get/set requests, value changes reported by the
// store, and asynchronous set errors raised by the hardware. It is separate
// from operational logging (slog) - event capture provides a complete
// machine-readable trace for debugging and replay.
//
// # Basic Usage
//
// Adapters are configured with a Logger implementation:
//
//	// For development: log to console via slog
//	hw := hardware.NewFakeHardware(hardware.WithEventLogger(log.NewSlogAdapter(slog.Default())))
//
//	// For capture: write to binary file
//	fl, _ := log.NewFileLogger("/var/log/vhal/events.vlog")
//
//	// Both: use MultiLogger
//	l := log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fl)
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with integer keys. Use
// Reader (optionally with a Filter) to iterate over them.
package log
