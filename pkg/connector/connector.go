// Package connector links a vehicle HAL client to a vehicle server.
//
// The client role is the HAL side: it asks for property configs, sends set
// requests and receives property values. The server role is the car side: it
// answers config and set requests and reports values read from the car.
// PassThrough joins the two roles in one process by delegating each call to
// the handler that serves it.
package connector

import "github.com/vhal-go/fakevhal/pkg/vehicle"

// Client is the HAL-side role of a connector.
type Client interface {
	// GetAllPropertyConfig returns the configs of every property the server
	// supports.
	GetAllPropertyConfig() []vehicle.PropertyConfig

	// SetProperty sends a set request to the server.
	SetProperty(value vehicle.PropertyValue) vehicle.StatusCode

	// OnPropertyValue receives a new property value from the server.
	OnPropertyValue(value vehicle.PropertyValue)
}

// Server is the car-side role of a connector.
type Server interface {
	// OnGetAllPropertyConfig answers a config request from the HAL.
	OnGetAllPropertyConfig() []vehicle.PropertyConfig

	// OnSetProperty processes a set request from the HAL.
	OnSetProperty(value vehicle.PropertyValue) vehicle.StatusCode

	// OnPropertyValueFromCar forwards a value read from the car to the HAL.
	OnPropertyValueFromCar(value vehicle.PropertyValue)
}

// ClientHandler consumes property values delivered to the HAL.
type ClientHandler interface {
	OnPropertyValue(value vehicle.PropertyValue)
}

// ServerHandler serves HAL requests on the car side.
type ServerHandler interface {
	OnGetAllPropertyConfig() []vehicle.PropertyConfig
	OnSetProperty(value vehicle.PropertyValue) vehicle.StatusCode
}

// ClientHandlerFunc adapts a function to ClientHandler.
type ClientHandlerFunc func(value vehicle.PropertyValue)

// OnPropertyValue calls f(value).
func (f ClientHandlerFunc) OnPropertyValue(value vehicle.PropertyValue) {
	f(value)
}
