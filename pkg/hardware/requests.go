package hardware

import (
	"errors"
	"fmt"

	"github.com/vhal-go/fakevhal/pkg/log"
	"github.com/vhal-go/fakevhal/pkg/store"
	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// SetValues writes each request's value and reports one result per request.
//
// Requests are processed independently: a failed request does not stop the
// rest of the batch. callback is invoked exactly once, with results in
// request order, before SetValues returns. The returned status describes the
// batch as a whole: INVALID_ARG for a nil callback, INTERNAL_ERROR once the
// adapter is closed (callback not invoked), OK otherwise.
func (h *FakeHardware) SetValues(callback SetValuesCallback, requests []vehicle.SetValueRequest) vehicle.StatusCode {
	if callback == nil {
		return vehicle.StatusInvalidArg
	}
	if h.closed.Load() {
		return vehicle.StatusInternalError
	}

	results := make([]vehicle.SetValueResult, len(requests))
	for i := range requests {
		req := &requests[i]
		status, err := h.setValue(&req.Value)
		results[i] = vehicle.SetValueResult{RequestID: req.RequestID, Status: status}

		event := log.Event{
			Kind:      log.KindSet,
			Source:    log.SourceClient,
			Prop:      req.Value.Prop,
			AreaID:    req.Value.AreaID,
			Status:    status,
			RequestID: req.RequestID,
			Value:     &req.Value,
		}
		if err != nil {
			event.Message = err.Error()
			h.logger.Debug("set request failed",
				"request", req.RequestID,
				"prop", vehicle.PropertyName(req.Value.Prop),
				"area", req.Value.AreaID,
				"status", status,
				"error", err)
		}
		h.logEvent(event)
	}

	callback(results)
	return vehicle.StatusOK
}

func (h *FakeHardware) setValue(value *vehicle.PropertyValue) (vehicle.StatusCode, error) {
	config, err := h.store.GetConfig(value.Prop)
	if err != nil {
		return store.StatusCodeOf(err), err
	}
	if !config.Access.CanWrite() {
		return vehicle.StatusAccessDenied, errAccess(value.Prop, "writable")
	}

	written := value.Clone()
	written.Timestamp = h.clock()
	if err := h.store.WriteValue(written, true); err != nil {
		if errors.Is(err, store.ErrOutdated) {
			return vehicle.StatusTryAgain, err
		}
		return store.StatusCodeOf(err), err
	}
	return vehicle.StatusOK, nil
}

// GetValues reads the value each request names and reports one result per
// request. The batch contract matches SetValues.
func (h *FakeHardware) GetValues(callback GetValuesCallback, requests []vehicle.GetValueRequest) vehicle.StatusCode {
	if callback == nil {
		return vehicle.StatusInvalidArg
	}
	if h.closed.Load() {
		return vehicle.StatusInternalError
	}

	results := make([]vehicle.GetValueResult, len(requests))
	for i := range requests {
		req := &requests[i]
		value, status, err := h.getValue(req.Prop.Prop, req.Prop.AreaID)
		results[i] = vehicle.GetValueResult{RequestID: req.RequestID, Status: status, Prop: value}

		event := log.Event{
			Kind:      log.KindGet,
			Source:    log.SourceClient,
			Prop:      req.Prop.Prop,
			AreaID:    req.Prop.AreaID,
			Status:    status,
			RequestID: req.RequestID,
			Value:     value,
		}
		if err != nil {
			event.Message = err.Error()
		}
		h.logEvent(event)
	}

	callback(results)
	return vehicle.StatusOK
}

func (h *FakeHardware) getValue(propID, areaID int32) (*vehicle.PropertyValue, vehicle.StatusCode, error) {
	config, err := h.store.GetConfig(propID)
	if err != nil {
		return nil, store.StatusCodeOf(err), err
	}
	if !config.Access.CanRead() {
		return nil, vehicle.StatusAccessDenied, errAccess(propID, "readable")
	}

	value, err := h.store.ReadValue(propID, areaID)
	if err != nil {
		return nil, store.StatusCodeOf(err), err
	}
	return value, vehicle.StatusOK, nil
}

func errAccess(propID int32, mode string) error {
	return fmt.Errorf("%w: property %s is not %s", ErrAccessDenied, vehicle.PropertyName(propID), mode)
}
