package hardware

import (
	"errors"

	"github.com/vhal-go/fakevhal/pkg/log"
	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// Errors returned by the adapter.
var (
	ErrClosed       = errors.New("hardware closed")
	ErrAccessDenied = errors.New("access denied")
)

// RegisterOnPropertyChangeEvent installs the property-change subscriber,
// replacing any previous one. A nil callback disables forwarding.
func (h *FakeHardware) RegisterOnPropertyChangeEvent(callback OnPropertyChangeCallback) {
	h.callbackMu.Lock()
	defer h.callbackMu.Unlock()
	h.onPropertyChange = callback
}

// RegisterOnPropertySetErrorEvent installs the set-error subscriber,
// replacing any previous one. A nil callback disables forwarding.
func (h *FakeHardware) RegisterOnPropertySetErrorEvent(callback OnPropertySetErrorCallback) {
	h.callbackMu.Lock()
	defer h.callbackMu.Unlock()
	h.onPropertySetError = callback
}

// onValueChange is the store's change handler. It runs outside the store's
// lock and forwards value as a single-element batch.
func (h *FakeHardware) onValueChange(value *vehicle.PropertyValue) {
	h.callbackMu.Lock()
	callback := h.onPropertyChange
	h.callbackMu.Unlock()

	h.logEvent(log.Event{
		Kind:   log.KindChange,
		Source: log.SourceHardware,
		Prop:   value.Prop,
		AreaID: value.AreaID,
		Status: vehicle.StatusOK,
		Value:  value,
	})

	if callback != nil {
		callback([]*vehicle.PropertyValue{value})
	}
}

// InjectPropertyEvent stores value as if the car had reported it. Access
// modes are not checked and the value's status is kept as stored. A zero
// timestamp is replaced by the current time.
func (h *FakeHardware) InjectPropertyEvent(value *vehicle.PropertyValue) error {
	if h.closed.Load() {
		return ErrClosed
	}

	injected := value.Clone()
	if injected.Timestamp == 0 {
		injected.Timestamp = h.clock()
	}
	if err := h.store.WriteValue(injected, false); err != nil {
		h.logger.Warn("failed to inject property event",
			"prop", vehicle.PropertyName(value.Prop), "area", value.AreaID, "error", err)
		return err
	}
	return nil
}

// InjectSetError reports an asynchronous set failure to the set-error
// subscriber as a single-element batch.
func (h *FakeHardware) InjectSetError(event vehicle.SetValueErrorEvent) error {
	if h.closed.Load() {
		return ErrClosed
	}

	h.callbackMu.Lock()
	callback := h.onPropertySetError
	h.callbackMu.Unlock()

	h.logEvent(log.Event{
		Kind:   log.KindSetError,
		Source: log.SourceHardware,
		Prop:   event.PropID,
		AreaID: event.AreaID,
		Status: event.ErrorCode,
	})

	if callback != nil {
		callback([]vehicle.SetValueErrorEvent{event})
	}
	return nil
}
