package log

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Filter specifies criteria for selecting events.
// Empty/nil fields match all events for that criterion.
type Filter struct {
	SessionID string
	Kind      *Kind
	Source    *Source
	Prop      *int32
	AreaID    *int32

	// TimeStart and TimeEnd bound the half-open range [TimeStart, TimeEnd).
	TimeStart *time.Time
	TimeEnd   *time.Time
}

// Matches returns true if the event matches all filter criteria.
func (f *Filter) Matches(event Event) bool {
	switch {
	case f.SessionID != "" && event.SessionID != f.SessionID:
		return false
	case f.Kind != nil && event.Kind != *f.Kind:
		return false
	case f.Source != nil && event.Source != *f.Source:
		return false
	case f.Prop != nil && event.Prop != *f.Prop:
		return false
	case f.AreaID != nil && event.AreaID != *f.AreaID:
		return false
	case f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart):
		return false
	case f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd):
		return false
	}
	return true
}

// Reader streams events from a CBOR event log.
type Reader struct {
	closer  io.Closer
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader opens the log file at path and reads events matching filter.
func NewReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return NewStreamReader(f, filter), nil
}

// NewStreamReader reads events matching filter from rc.
func NewStreamReader(rc io.ReadCloser, filter Filter) *Reader {
	return &Reader{closer: rc, decoder: newDecoder(rc), filter: filter}
}

// Next returns the next matching event, or io.EOF at the end of the log.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			if errors.Is(err, io.EOF) {
				return Event{}, io.EOF
			}
			return Event{}, err
		}
		if r.filter.Matches(event) {
			return event, nil
		}
	}
}

// ReadAll returns every remaining matching event.
func (r *Reader) ReadAll() ([]Event, error) {
	var events []Event
	for {
		event, err := r.Next()
		if err == io.EOF {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, event)
	}
}

// Close closes the underlying source.
func (r *Reader) Close() error {
	return r.closer.Close()
}
