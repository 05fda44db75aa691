package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vhal-go/fakevhal/pkg/defaultconfig"
	"github.com/vhal-go/fakevhal/pkg/log"
)

// ParseKindFlag parses an event kind name (get, set, change, set_error, seed).
func ParseKindFlag(s string) (log.Kind, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "-", "_")) {
	case "get":
		return log.KindGet, nil
	case "set":
		return log.KindSet, nil
	case "change":
		return log.KindChange, nil
	case "set_error", "seterr":
		return log.KindSetError, nil
	case "seed":
		return log.KindSeed, nil
	default:
		return 0, fmt.Errorf("invalid kind: %s (valid: get, set, change, set_error, seed)", s)
	}
}

// ParseSourceFlag parses an event source name (client, hardware).
func ParseSourceFlag(s string) (log.Source, error) {
	switch strings.ToLower(s) {
	case "client":
		return log.SourceClient, nil
	case "hardware", "hw":
		return log.SourceHardware, nil
	default:
		return 0, fmt.Errorf("invalid source: %s (valid: client, hardware)", s)
	}
}

// ParsePropFlag parses a property name or numeric ID.
func ParsePropFlag(s string) (int32, error) {
	return defaultconfig.ParsePropertyID(s)
}

// ParseAreaFlag parses an area ID in any base strconv understands.
func ParseAreaFlag(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid area: %s", s)
	}
	return int32(n), nil
}

// Selection holds the textual selection flags shared by view, export and
// filter. Empty fields select everything.
type Selection struct {
	Session   string
	Kind      string
	Source    string
	Prop      string
	Area      string
	TimeStart string
	TimeEnd   string
}

// Filter converts the selection into a log filter.
func (s Selection) Filter() (log.Filter, error) {
	filter := log.Filter{SessionID: s.Session}

	if s.Kind != "" {
		k, err := ParseKindFlag(s.Kind)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Kind = &k
	}
	if s.Source != "" {
		src, err := ParseSourceFlag(s.Source)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Source = &src
	}
	if s.Prop != "" {
		p, err := ParsePropFlag(s.Prop)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Prop = &p
	}
	if s.Area != "" {
		a, err := ParseAreaFlag(s.Area)
		if err != nil {
			return log.Filter{}, err
		}
		filter.AreaID = &a
	}
	if s.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, s.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if s.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, s.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	return filter, nil
}

const timeLayout = "2006-01-02T15:04:05.000000Z"

// shortenSession returns the first 8 characters of the session ID.
func shortenSession(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
