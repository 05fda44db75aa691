package connector

import (
	"sync/atomic"

	"github.com/vhal-go/fakevhal/pkg/hardware"
	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// HardwareServer serves HAL requests from a FakeHardware.
type HardwareServer struct {
	hw     *hardware.FakeHardware
	nextID atomic.Int64
}

// NewHardwareServer creates a server handler backed by hw.
func NewHardwareServer(hw *hardware.FakeHardware) *HardwareServer {
	return &HardwareServer{hw: hw}
}

// OnGetAllPropertyConfig returns the hardware's registered configs.
func (s *HardwareServer) OnGetAllPropertyConfig() []vehicle.PropertyConfig {
	return s.hw.GetAllPropertyConfigs()
}

// OnSetProperty writes value through the hardware's batch set path and
// returns the per-request status.
func (s *HardwareServer) OnSetProperty(value vehicle.PropertyValue) vehicle.StatusCode {
	result := vehicle.StatusInternalError
	status := s.hw.SetValues(func(results []vehicle.SetValueResult) {
		if len(results) == 1 {
			result = results[0].Status
		}
	}, []vehicle.SetValueRequest{{RequestID: s.nextID.Add(1), Value: value}})

	if status != vehicle.StatusOK {
		return status
	}
	return result
}

// Attach forwards every hardware property change to sink as a value from
// the car. It replaces any change subscriber already registered on the
// hardware; Attach(nil) stops forwarding.
func (s *HardwareServer) Attach(sink Server) {
	if sink == nil {
		s.hw.RegisterOnPropertyChangeEvent(nil)
		return
	}
	s.hw.RegisterOnPropertyChangeEvent(func(values []*vehicle.PropertyValue) {
		for _, v := range values {
			sink.OnPropertyValueFromCar(*v)
		}
	})
}

var _ ServerHandler = (*HardwareServer)(nil)
