// Package hardware implements the fake vehicle hardware: an in-memory
// property backend that emulates a car for framework-side clients.
//
// FakeHardware bootstraps a property store from a set of config
// declarations, serves batched get and set requests against it, and forwards
// every stored change to a registered subscriber.
package hardware

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/vhal-go/fakevhal/pkg/defaultconfig"
	"github.com/vhal-go/fakevhal/pkg/log"
	"github.com/vhal-go/fakevhal/pkg/pool"
	"github.com/vhal-go/fakevhal/pkg/store"
	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// bootTime anchors the default monotonic clock.
var bootTime = time.Now()

// Config configures a FakeHardware.
type Config struct {
	// Pool is an optional value pool shared with other adapters.
	// The adapter retains it; the caller keeps its own reference.
	// If nil, the adapter creates a private pool.
	Pool *pool.ValuePool

	// Logger receives operational logs. If nil, logging is disabled.
	Logger *slog.Logger

	// EventLogger receives a record of every get, set, change and set error.
	// If nil, events are not recorded.
	EventLogger log.Logger

	// Declarations are the properties to register and seed, in order.
	// If nil, defaultconfig.DefaultConfigs() is used.
	Declarations []defaultconfig.ConfigDeclaration

	// Clock returns the timestamp stamped on written values, in monotonic
	// nanoseconds. If nil, nanoseconds since process start are used.
	Clock func() int64
}

// OnPropertyChangeCallback receives changed values. The adapter always
// delivers single-element batches.
type OnPropertyChangeCallback func(values []*vehicle.PropertyValue)

// OnPropertySetErrorCallback receives asynchronous set failures.
type OnPropertySetErrorCallback func(errors []vehicle.SetValueErrorEvent)

// SetValuesCallback receives one result per set request, in request order.
type SetValuesCallback func(results []vehicle.SetValueResult)

// GetValuesCallback receives one result per get request, in request order.
type GetValuesCallback func(results []vehicle.GetValueResult)

// FakeHardware is safe for concurrent use.
type FakeHardware struct {
	sessionID string
	logger    *slog.Logger
	events    log.Logger
	clock     func() int64

	pool   *pool.ValuePool
	store  *store.PropertyStore
	closed atomic.Bool

	// callbackMu guards the subscriber callbacks only; it is independent of
	// the store's lock.
	callbackMu         sync.Mutex
	onPropertyChange   OnPropertyChangeCallback
	onPropertySetError OnPropertySetErrorCallback
}

// NewFakeHardware creates an adapter, registers and seeds every declaration,
// and starts forwarding store changes.
func NewFakeHardware(config Config) *FakeHardware {
	h := &FakeHardware{
		sessionID: uuid.New().String(),
		logger:    config.Logger,
		events:    config.EventLogger,
		clock:     config.Clock,
	}
	if h.logger == nil {
		h.logger = slog.New(slog.DiscardHandler)
	}
	h.logger = h.logger.With("session", h.sessionID)
	if h.events == nil {
		h.events = log.NoopLogger{}
	}
	if h.clock == nil {
		h.clock = func() int64 { return time.Since(bootTime).Nanoseconds() }
	}

	if config.Pool != nil {
		h.pool = config.Pool.Retain()
	} else {
		h.pool = pool.New()
	}
	h.store = store.New(h.pool)

	declarations := config.Declarations
	if declarations == nil {
		declarations = defaultconfig.DefaultConfigs()
	}
	h.init(declarations)
	return h
}

// init registers and seeds declarations, then installs the change handler so
// that seeding does not notify subscribers.
func (h *FakeHardware) init(declarations []defaultconfig.ConfigDeclaration) {
	for _, d := range declarations {
		name := vehicle.PropertyName(d.Config.Prop)
		if err := h.store.RegisterProperty(d.Config); err != nil {
			h.logger.Error("failed to register property", "prop", name, "error", err)
			continue
		}

		for _, areaID := range d.Config.AreaIDs() {
			raw := d.InitialValue
			if len(d.InitialAreaValues) > 0 {
				areaValue, found := d.InitialAreaValues[areaID]
				if !found {
					h.logger.Warn("no initial value for area, leaving unset",
						"prop", name, "area", areaID)
					continue
				}
				raw = areaValue
			}
			if raw.IsEmpty() {
				continue
			}
			h.seed(d.Config.Prop, areaID, raw)
		}
	}

	h.store.SetOnValueChangeCallback(h.onValueChange)
	h.logger.Info("fake hardware initialized",
		"properties", len(declarations),
		"values", len(h.store.ReadAllValues()))
}

func (h *FakeHardware) seed(propID, areaID int32, raw vehicle.RawValues) {
	value := &vehicle.PropertyValue{
		Timestamp: h.clock(),
		Prop:      propID,
		AreaID:    areaID,
		Status:    vehicle.StatusAvailable,
		Value:     raw.Clone(),
	}
	if err := h.store.WriteValue(value, true); err != nil {
		h.logger.Error("failed to seed initial value",
			"prop", vehicle.PropertyName(propID), "area", areaID, "error", err)
		return
	}
	h.logEvent(log.Event{
		Kind:   log.KindSeed,
		Source: log.SourceHardware,
		Prop:   propID,
		AreaID: areaID,
		Status: vehicle.StatusOK,
		Value:  value,
	})
}

// SessionID returns the adapter's unique session identifier.
func (h *FakeHardware) SessionID() string {
	return h.sessionID
}

// GetAllPropertyConfigs returns all registered configs in registration order.
func (h *FakeHardware) GetAllPropertyConfigs() []vehicle.PropertyConfig {
	return h.store.GetAllConfigs()
}

// Close stops change forwarding, closes the store and releases the adapter's
// pool reference. Calling Close twice is a no-op.
func (h *FakeHardware) Close() error {
	if !h.closed.CompareAndSwap(false, true) {
		return nil
	}
	h.store.SetOnValueChangeCallback(nil)
	h.store.Close()
	h.pool.Release()
	h.logger.Info("fake hardware closed")
	return nil
}

// logEvent stamps and records event on the event logger.
func (h *FakeHardware) logEvent(event log.Event) {
	event.Timestamp = time.Now()
	event.SessionID = h.sessionID
	h.events.Log(event)
}
