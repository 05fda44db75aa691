// Package pool provides a recycling allocator for property values.
//
// Property values are allocated on every read and write of the property
// store. ValuePool keeps released instances (and their payload buffers) on a
// bounded free list so hot paths reuse them instead of allocating.
//
// A pool may be shared between several owners. Ownership is reference
// counted: New returns a pool holding one reference, each additional owner
// calls Retain, and every owner calls Release when done.
package pool

import (
	"sync"
	"sync/atomic"

	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// DefaultMaxFree is the default bound on recycled instances kept for reuse.
const DefaultMaxFree = 256

// Stats reports pool usage counters.
type Stats struct {
	Obtained uint64
	Reused   uint64
	Recycled uint64
	Free     int
	Refs     int32
}

// ValuePool recycles PropertyValue instances. It is safe for concurrent use.
type ValuePool struct {
	mu      sync.Mutex
	free    []*vehicle.PropertyValue
	maxFree int

	refs     atomic.Int32
	obtained atomic.Uint64
	reused   atomic.Uint64
	recycled atomic.Uint64
}

// New creates a pool with DefaultMaxFree capacity and one reference.
func New() *ValuePool {
	return NewWithCapacity(DefaultMaxFree)
}

// NewWithCapacity creates a pool keeping at most maxFree recycled instances.
func NewWithCapacity(maxFree int) *ValuePool {
	if maxFree < 0 {
		maxFree = 0
	}
	p := &ValuePool{maxFree: maxFree}
	p.refs.Store(1)
	return p
}

// Obtain returns an instance initialized from template. The returned value
// shares no payload memory with template or any other live instance.
func (p *ValuePool) Obtain(template *vehicle.PropertyValue) *vehicle.PropertyValue {
	p.obtained.Add(1)

	v := p.take()
	if v == nil {
		return template.Clone()
	}
	p.reused.Add(1)

	v.Timestamp = template.Timestamp
	v.AreaID = template.AreaID
	v.Prop = template.Prop
	v.Status = template.Status
	v.Value.Int32Values = reuse(v.Value.Int32Values, template.Value.Int32Values)
	v.Value.FloatValues = reuse(v.Value.FloatValues, template.Value.FloatValues)
	v.Value.Int64Values = reuse(v.Value.Int64Values, template.Value.Int64Values)
	v.Value.ByteValues = reuse(v.Value.ByteValues, template.Value.ByteValues)
	v.Value.StringValue = template.Value.StringValue
	return v
}

// Recycle hands v back to the pool. The caller must not use v afterwards.
func (p *ValuePool) Recycle(v *vehicle.PropertyValue) {
	if v == nil || p.Closed() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.free) >= p.maxFree {
		return
	}
	p.recycled.Add(1)
	p.free = append(p.free, v)
}

func (p *ValuePool) take() *vehicle.PropertyValue {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := len(p.free)
	if n == 0 {
		return nil
	}
	v := p.free[n-1]
	p.free[n-1] = nil
	p.free = p.free[:n-1]
	return v
}

// Retain adds a reference for a new owner and returns p.
func (p *ValuePool) Retain() *ValuePool {
	p.refs.Add(1)
	return p
}

// Release drops one reference. When the last reference is dropped the free
// list is discarded; Obtain keeps working but no longer reuses instances.
func (p *ValuePool) Release() {
	if p.refs.Add(-1) != 0 {
		return
	}
	p.mu.Lock()
	p.free = nil
	p.mu.Unlock()
}

// Closed returns true once every owner has released the pool.
func (p *ValuePool) Closed() bool {
	return p.refs.Load() <= 0
}

// Stats returns a snapshot of the usage counters.
func (p *ValuePool) Stats() Stats {
	p.mu.Lock()
	free := len(p.free)
	p.mu.Unlock()

	return Stats{
		Obtained: p.obtained.Load(),
		Reused:   p.reused.Load(),
		Recycled: p.recycled.Load(),
		Free:     free,
		Refs:     p.refs.Load(),
	}
}

// reuse copies src into dst's backing array when it fits.
func reuse[T any](dst, src []T) []T {
	if len(src) == 0 {
		return nil
	}
	if cap(dst) < len(src) {
		dst = make([]T, len(src))
	}
	dst = dst[:len(src)]
	copy(dst, src)
	return dst
}
