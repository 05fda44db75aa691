package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/vhal-go/fakevhal/pkg/log"
	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// exportRecord is the flat JSON form of an event.
type exportRecord struct {
	Timestamp string             `json:"timestamp"`
	SessionID string             `json:"session_id"`
	Kind      string             `json:"kind"`
	Source    string             `json:"source"`
	Prop      string             `json:"prop"`
	PropID    uint32             `json:"prop_id"`
	AreaID    int32              `json:"area_id"`
	Status    string             `json:"status"`
	RequestID int64              `json:"request_id,omitempty"`
	Value     *vehicle.RawValues `json:"value,omitempty"`
	Message   string             `json:"message,omitempty"`
}

func newExportRecord(event log.Event) exportRecord {
	r := exportRecord{
		Timestamp: event.Timestamp.UTC().Format(timeLayout),
		SessionID: event.SessionID,
		Kind:      event.Kind.String(),
		Source:    event.Source.String(),
		Prop:      vehicle.PropertyName(event.Prop),
		PropID:    uint32(event.Prop),
		AreaID:    event.AreaID,
		Status:    event.Status.String(),
		RequestID: event.RequestID,
		Message:   event.Message,
	}
	if event.Value != nil {
		r.Value = &event.Value.Value
	}
	return r
}

// RunExport exports the events matching filter in the given format to
// output, or to stdout when output is empty.
func RunExport(path, format, output string, filter log.Filter) error {
	if format != "jsonl" && format != "csv" {
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := log.NewReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	// Determine output writer
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if format == "csv" {
		return exportCSV(reader, w)
	}
	return exportJSONL(reader, w)
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(newExportRecord(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "session_id", "source", "kind", "prop", "area_id", "status", "request_id", "value", "message"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		value := ""
		if event.Value != nil {
			value = event.Value.Value.String()
		}
		requestID := ""
		if event.RequestID != 0 {
			requestID = strconv.FormatInt(event.RequestID, 10)
		}

		row := []string{
			event.Timestamp.UTC().Format(timeLayout),
			event.SessionID,
			event.Source.String(),
			event.Kind.String(),
			vehicle.PropertyName(event.Prop),
			fmt.Sprintf("0x%x", uint32(event.AreaID)),
			event.Status.String(),
			requestID,
			value,
			event.Message,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
