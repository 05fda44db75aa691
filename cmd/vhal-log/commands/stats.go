package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/vhal-go/fakevhal/pkg/log"
	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents    int
	EventsByKind   map[log.Kind]int
	EventsBySource map[log.Source]int
	Failures       map[vehicle.StatusCode]int
	Properties     map[int32]*PropertyStats
	Sessions       map[string]*SessionStats
	TimeRange      struct {
		Start time.Time
		End   time.Time
	}
}

// PropertyStats holds statistics for a single property.
type PropertyStats struct {
	Gets     int
	Sets     int
	Changes  int
	Failures int
	Areas    map[int32]bool
}

// SessionStats holds statistics for a single hardware session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
}

// CollectStats aggregates the events matching filter.
func CollectStats(path string, filter log.Filter) (*Stats, error) {
	reader, err := log.NewReader(path, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByKind:   make(map[log.Kind]int),
		EventsBySource: make(map[log.Source]int),
		Failures:       make(map[vehicle.StatusCode]int),
		Properties:     make(map[int32]*PropertyStats),
		Sessions:       make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}
	return stats, nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByKind[event.Kind]++
	s.EventsBySource[event.Source]++

	// Track time range
	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	session, ok := s.Sessions[event.SessionID]
	if !ok {
		session = &SessionStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
		s.Sessions[event.SessionID] = session
	}
	session.Events++
	if event.Timestamp.After(session.LastSeen) {
		session.LastSeen = event.Timestamp
	}

	prop, ok := s.Properties[event.Prop]
	if !ok {
		prop = &PropertyStats{Areas: make(map[int32]bool)}
		s.Properties[event.Prop] = prop
	}
	prop.Areas[event.AreaID] = true
	switch event.Kind {
	case log.KindGet:
		prop.Gets++
	case log.KindSet:
		prop.Sets++
	case log.KindChange:
		prop.Changes++
	}
	if event.Status != vehicle.StatusOK {
		prop.Failures++
		s.Failures[event.Status]++
	}
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, filter log.Filter, w io.Writer) error {
	stats, err := CollectStats(path, filter)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Vehicle HAL Event Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Kind:")
	for _, kind := range []log.Kind{log.KindSeed, log.KindGet, log.KindSet, log.KindChange, log.KindSetError} {
		if count := stats.EventsByKind[kind]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", kind.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Source:")
	for _, src := range []log.Source{log.SourceClient, log.SourceHardware} {
		if count := stats.EventsBySource[src]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", src.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Properties: %d\n", len(stats.Properties))
	if len(stats.Properties) > 0 {
		ids := make([]int32, 0, len(stats.Properties))
		for id := range stats.Properties {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return uint32(ids[i]) < uint32(ids[j]) })

		fmt.Fprintln(w)
		for _, id := range ids {
			p := stats.Properties[id]
			fmt.Fprintf(w, "  %-24s areas=%d get=%d set=%d change=%d failed=%d\n",
				vehicle.PropertyName(id), len(p.Areas), p.Gets, p.Sets, p.Changes, p.Failures)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		// Sort by first seen time
		type sessionInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessionInfo, 0, len(stats.Sessions))
		for id, ss := range stats.Sessions {
			sessions = append(sessions, sessionInfo{id, ss})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, s := range sessions {
			duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenSession(s.id), s.stats.Events, duration)
		}
	}

	if len(stats.Failures) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Failures:")
		for _, code := range []vehicle.StatusCode{
			vehicle.StatusTryAgain, vehicle.StatusInvalidArg, vehicle.StatusNotAvailable,
			vehicle.StatusAccessDenied, vehicle.StatusInternalError,
		} {
			if count := stats.Failures[code]; count > 0 {
				fmt.Fprintf(w, "  %-16s %d\n", code.String()+":", count)
			}
		}
	}
}
