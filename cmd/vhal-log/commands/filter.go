package commands

import (
	"fmt"
	"io"

	"github.com/vhal-go/fakevhal/pkg/log"
)

// RunFilter copies the events matching filter from path into a new log file
// at output and reports the count to w.
func RunFilter(path, output string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	// Create file logger to write filtered events
	logger, err := log.NewFileLogger(output)
	if err != nil {
		return fmt.Errorf("failed to create output logger: %w", err)
	}

	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Close()
			return fmt.Errorf("failed to read event: %w", err)
		}

		logger.Log(event)
		count++
	}

	_, failed := logger.Stats()
	if err := logger.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("failed to write %d of %d events", failed, count)
	}

	fmt.Fprintf(w, "Filtered %d events to %s\n", count, output)
	return nil
}
