package log

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// recordingLogger records events for testing
type recordingLogger struct {
	events []Event
}

func (r *recordingLogger) Log(event Event) {
	r.events = append(r.events, event)
}

func changeEvent(session string, prop int32, ts time.Time) Event {
	return Event{
		Timestamp: ts,
		SessionID: session,
		Kind:      KindChange,
		Source:    SourceHardware,
		Prop:      prop,
		Status:    vehicle.StatusOK,
		Value: &vehicle.PropertyValue{
			Prop:      prop,
			Timestamp: 42,
			Value:     vehicle.FloatValue(12.5),
		},
	}
}

func TestNoopLoggerIsZeroValue(t *testing.T) {
	var logger NoopLogger
	logger.Log(Event{})
	logger.Log(changeEvent("s", vehicle.PerfVehicleSpeed, time.Now()))
}

func TestKindAndSourceStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{KindGet.String(), "GET"},
		{KindSet.String(), "SET"},
		{KindChange.String(), "CHANGE"},
		{KindSetError.String(), "SET_ERROR"},
		{KindSeed.String(), "SEED"},
		{Kind(99).String(), "UNKNOWN"},
		{SourceClient.String(), "CLIENT"},
		{SourceHardware.String(), "HARDWARE"},
		{Source(9).String(), "UNKNOWN"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestEncodeDecodeEvent(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 123456789, time.UTC)
	event := changeEvent("session-1", vehicle.PerfVehicleSpeed, ts)
	event.RequestID = 7
	event.Message = "detail"

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent: %v", err)
	}
	got, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}

	if !got.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v", got.Timestamp, ts)
	}
	if got.SessionID != "session-1" || got.Kind != KindChange || got.Source != SourceHardware {
		t.Errorf("header mismatch: %+v", got)
	}
	if got.RequestID != 7 || got.Message != "detail" {
		t.Errorf("optional fields mismatch: %+v", got)
	}
	if got.Value == nil || !got.Value.Value.Equal(event.Value.Value) || got.Value.Timestamp != 42 {
		t.Errorf("Value = %+v, want %+v", got.Value, event.Value)
	}
}

func TestMultiLogger(t *testing.T) {
	r1, r2 := &recordingLogger{}, &recordingLogger{}
	multi := NewMultiLogger(r1, nil, r2)

	multi.Log(changeEvent("s", vehicle.NightMode, time.Now()))

	for i, r := range []*recordingLogger{r1, r2} {
		if len(r.events) != 1 {
			t.Errorf("logger %d: got %d events, want 1", i, len(r.events))
		}
	}

	// Empty list must not panic
	NewMultiLogger().Log(Event{})
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	adapter := NewSlogAdapter(slog.New(handler))

	event := changeEvent("session-9", vehicle.PerfVehicleSpeed, time.Now())
	event.RequestID = 3
	adapter.Log(event)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}

	want := map[string]any{
		"msg":        "property",
		"level":      "DEBUG",
		"session":    "session-9",
		"kind":       "CHANGE",
		"source":     "HARDWARE",
		"prop":       "PERF_VEHICLE_SPEED",
		"status":     "OK",
		"request_id": float64(3),
		"value":      "{float=[12.5]}",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s: got %v, want %v", k, entry[k], v)
		}
	}

	t.Run("WithLevel", func(t *testing.T) {
		buf.Reset()
		adapter.WithLevel(slog.LevelInfo).Log(Event{Kind: KindSetError})
		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("failed to parse log output: %v", err)
		}
		if entry["level"] != "INFO" {
			t.Errorf("level = %v, want INFO", entry["level"])
		}
	})
}

func TestFileLoggerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.vlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}

	base := time.Now()
	logger.Log(changeEvent("a", vehicle.PerfVehicleSpeed, base))
	logger.Log(changeEvent("b", vehicle.NightMode, base.Add(time.Second)))
	logger.Log(changeEvent("a", vehicle.NightMode, base.Add(2*time.Second)))

	if written, failed := logger.Stats(); written != 3 || failed != 0 {
		t.Errorf("Stats = (%d, %d), want (3, 0)", written, failed)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	logger.Log(changeEvent("ignored", vehicle.NightMode, base))

	t.Run("All", func(t *testing.T) {
		r, err := NewReader(path, Filter{})
		if err != nil {
			t.Fatalf("NewReader: %v", err)
		}
		defer r.Close()

		events, err := r.ReadAll()
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}
		if len(events) != 3 {
			t.Fatalf("got %d events, want 3", len(events))
		}
		if events[1].SessionID != "b" {
			t.Errorf("events[1].SessionID = %q, want b", events[1].SessionID)
		}
	})

	t.Run("FilterSessionAndProp", func(t *testing.T) {
		prop := vehicle.NightMode
		r, err := NewReader(path, Filter{SessionID: "a", Prop: &prop})
		if err != nil {
			t.Fatalf("NewReader: %v", err)
		}
		defer r.Close()

		ev, err := r.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if ev.SessionID != "a" || ev.Prop != vehicle.NightMode {
			t.Errorf("unexpected event %+v", ev)
		}
		if _, err := r.Next(); err != io.EOF {
			t.Errorf("Next err = %v, want io.EOF", err)
		}
	})

	t.Run("FilterTimeRange", func(t *testing.T) {
		start := base.Add(500 * time.Millisecond)
		end := base.Add(2 * time.Second)
		r, err := NewReader(path, Filter{TimeStart: &start, TimeEnd: &end})
		if err != nil {
			t.Fatalf("NewReader: %v", err)
		}
		defer r.Close()

		events, err := r.ReadAll()
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}
		if len(events) != 1 || events[0].SessionID != "b" {
			t.Errorf("got %+v, want only session b", events)
		}
	})
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.vlog")

	for i := 0; i < 2; i++ {
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger: %v", err)
		}
		logger.Log(changeEvent("s", vehicle.NightMode, time.Now()))
		logger.Close()
	}

	r, err := NewReader(path, Filter{})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer r.Close()
	events, _ := r.ReadAll()
	if len(events) != 2 {
		t.Errorf("got %d events, want 2", len(events))
	}
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.vlog")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				logger.Log(changeEvent("c", vehicle.PerfVehicleSpeed, time.Now()))
			}
		}()
	}
	wg.Wait()
	logger.Close()

	r, err := NewReader(path, Filter{})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer r.Close()
	events, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(events) != 200 {
		t.Errorf("got %d events, want 200", len(events))
	}
}

func TestNewFileLoggerBadPath(t *testing.T) {
	_, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "dir", "x.vlog"))
	if !os.IsNotExist(err) {
		t.Errorf("err = %v, want not-exist", err)
	}
}
