package connector

import (
	"sync"
	"sync/atomic"

	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// PassThrough implements both Client and Server for a HAL and a car that
// live in the same process. Client requests go straight to the server
// handler and values from the car go straight to the client handler.
//
// The client handler may be installed after construction, since the HAL
// usually subscribes once the connector already exists. Values arriving
// while no client handler is installed are dropped.
type PassThrough struct {
	server ServerHandler

	mu     sync.RWMutex
	client ClientHandler

	dropped atomic.Uint64
}

// NewPassThrough creates a connector delegating to client and server.
// client may be nil; server must not be.
func NewPassThrough(client ClientHandler, server ServerHandler) *PassThrough {
	return &PassThrough{client: client, server: server}
}

// SetClientHandler replaces the client handler. A nil handler drops
// subsequent values.
func (p *PassThrough) SetClientHandler(client ClientHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.client = client
}

// GetAllPropertyConfig delegates to the server handler.
func (p *PassThrough) GetAllPropertyConfig() []vehicle.PropertyConfig {
	return p.server.OnGetAllPropertyConfig()
}

// SetProperty delegates to the server handler.
func (p *PassThrough) SetProperty(value vehicle.PropertyValue) vehicle.StatusCode {
	return p.server.OnSetProperty(value)
}

// OnPropertyValue delegates to the client handler.
func (p *PassThrough) OnPropertyValue(value vehicle.PropertyValue) {
	p.mu.RLock()
	client := p.client
	p.mu.RUnlock()

	if client == nil {
		p.dropped.Add(1)
		return
	}
	client.OnPropertyValue(value)
}

// OnGetAllPropertyConfig delegates to the server handler.
func (p *PassThrough) OnGetAllPropertyConfig() []vehicle.PropertyConfig {
	return p.server.OnGetAllPropertyConfig()
}

// OnSetProperty delegates to the server handler.
func (p *PassThrough) OnSetProperty(value vehicle.PropertyValue) vehicle.StatusCode {
	return p.server.OnSetProperty(value)
}

// OnPropertyValueFromCar forwards value to the client handler.
func (p *PassThrough) OnPropertyValueFromCar(value vehicle.PropertyValue) {
	p.OnPropertyValue(value)
}

// Dropped returns the number of car values discarded for lack of a client
// handler.
func (p *PassThrough) Dropped() uint64 {
	return p.dropped.Load()
}

// Compile-time interface satisfaction checks.
var (
	_ Client = (*PassThrough)(nil)
	_ Server = (*PassThrough)(nil)
)
