package log

import (
	"time"

	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// Event represents a property event captured by the hardware adapter.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the adapter instance that produced the event.
	SessionID string `cbor:"2,keyasint"`

	// Kind classifies the event.
	Kind Kind `cbor:"3,keyasint"`

	// Source is where the event originated.
	Source Source `cbor:"4,keyasint"`

	// Prop is the property ID.
	Prop int32 `cbor:"5,keyasint"`

	// AreaID is the area ID.
	AreaID int32 `cbor:"6,keyasint"`

	// Status is the result of the operation (OK for changes).
	Status vehicle.StatusCode `cbor:"7,keyasint"`

	// RequestID correlates get/set events with the client request.
	RequestID int64 `cbor:"8,keyasint,omitempty"`

	// Value is the value read, written or changed, when there is one.
	Value *vehicle.PropertyValue `cbor:"9,keyasint,omitempty"`

	// Message carries error details.
	Message string `cbor:"10,keyasint,omitempty"`
}

// Kind classifies the event type.
type Kind uint8

const (
	// KindGet is a client get request and its result.
	KindGet Kind = 0
	// KindSet is a client set request and its result.
	KindSet Kind = 1
	// KindChange is a value change reported by the store.
	KindChange Kind = 2
	// KindSetError is an asynchronous set failure reported by the hardware.
	KindSetError Kind = 3
	// KindSeed is an initial value written during bootstrap.
	KindSeed Kind = 4
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindGet:
		return "GET"
	case KindSet:
		return "SET"
	case KindChange:
		return "CHANGE"
	case KindSetError:
		return "SET_ERROR"
	case KindSeed:
		return "SEED"
	default:
		return "UNKNOWN"
	}
}

// Source indicates where an event originated.
type Source uint8

const (
	// SourceClient is the upstream framework-side client.
	SourceClient Source = 0
	// SourceHardware is the (simulated) vehicle hardware.
	SourceHardware Source = 1
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceClient:
		return "CLIENT"
	case SourceHardware:
		return "HARDWARE"
	default:
		return "UNKNOWN"
	}
}
