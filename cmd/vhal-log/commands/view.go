// Package commands implements the vhal-log CLI commands.
package commands

import (
	"fmt"
	"io"

	"github.com/vhal-go/fakevhal/pkg/log"
	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// RunView writes the events matching filter to w in human-readable form.
func RunView(path string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] SOURCE KIND PROPERTY area
	fmt.Fprintf(w, "%s [session:%s] %-8s %-9s %s area=0x%x\n",
		event.Timestamp.UTC().Format(timeLayout),
		shortenSession(event.SessionID),
		event.Source, event.Kind,
		vehicle.PropertyName(event.Prop), uint32(event.AreaID))

	if event.RequestID != 0 {
		fmt.Fprintf(w, "  RequestID: %d\n", event.RequestID)
	}
	switch event.Kind {
	case log.KindGet, log.KindSet, log.KindSetError:
		fmt.Fprintf(w, "  Status: %s (%d)\n", event.Status, event.Status)
	}
	if v := event.Value; v != nil {
		fmt.Fprintf(w, "  Value: %s\n", v.Value)
		fmt.Fprintf(w, "  PropertyStatus: %s  Timestamp: %d\n", v.Status, v.Timestamp)
	}
	if event.Message != "" {
		fmt.Fprintf(w, "  Message: %s\n", event.Message)
	}

	fmt.Fprintln(w) // Blank line between events
}
