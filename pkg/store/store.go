// Package store implements the property store: the authoritative table of
// current property values keyed by (property ID, area ID).
//
// The store owns the config registry and the value table. Both are guarded by
// a single mutex that is never held while the change callback runs, so a
// callback may read from or write to the store without deadlocking.
//
// Stored values are obtained from a shared pool.ValuePool. Callers always
// receive copies; the stored instance is recycled when it is replaced.
package store

import (
	"sync"

	"github.com/vhal-go/fakevhal/pkg/pool"
	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// ValueChangeCallback is invoked once per successful write with a copy of the
// stored value.
type ValueChangeCallback func(value *vehicle.PropertyValue)

// record holds a registered property and its per-area values.
// A nil entry in values is a declared area with no value set.
type record struct {
	config vehicle.PropertyConfig
	areas  []int32
	values map[int32]*vehicle.PropertyValue
}

// PropertyStore is safe for concurrent use.
type PropertyStore struct {
	mu sync.RWMutex

	pool    *pool.ValuePool
	records map[int32]*record
	order   []int32
	closed  bool

	onValueChange ValueChangeCallback
}

// New creates a store that allocates values from p. The store retains p
// until Close.
func New(p *pool.ValuePool) *PropertyStore {
	return &PropertyStore{
		pool:    p.Retain(),
		records: make(map[int32]*record),
	}
}

// Close releases the store's pool reference. Calling Close twice is a no-op.
func (s *PropertyStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.pool.Release()
}

// RegisterProperty adds config to the registry and creates an empty slot for
// each of its areas.
func (s *PropertyStore) RegisterProperty(config vehicle.PropertyConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[config.Prop]; exists {
		return newError(ErrAlreadyRegistered, nil, "property %s", vehicle.PropertyName(config.Prop))
	}

	rec := &record{
		config: config.Clone(),
		values: make(map[int32]*vehicle.PropertyValue),
	}
	rec.areas = rec.config.AreaIDs()
	for _, areaID := range rec.areas {
		rec.values[areaID] = nil
	}

	s.records[config.Prop] = rec
	s.order = append(s.order, config.Prop)
	return nil
}

// WriteValue validates value and replaces the stored value at its
// (property, area). With updateStatus the stored status is forced to
// AVAILABLE; otherwise a previously stored status is kept.
//
// A value older than the stored one is rejected as outdated.
func (s *PropertyStore) WriteValue(value *vehicle.PropertyValue, updateStatus bool) error {
	s.mu.Lock()

	rec, err := s.lookupLocked(value.Prop, value.AreaID)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	if err := vehicle.ValidateValue(&rec.config, value); err != nil {
		s.mu.Unlock()
		return newError(ErrInvalidArg, err, "property %s area 0x%x",
			vehicle.PropertyName(value.Prop), uint32(value.AreaID))
	}

	old := rec.values[value.AreaID]
	if old != nil && old.Timestamp > value.Timestamp {
		s.mu.Unlock()
		return newError(ErrInvalidArg, ErrOutdated, "timestamp %d for property %s area 0x%x (stored %d)",
			value.Timestamp, vehicle.PropertyName(value.Prop), uint32(value.AreaID), old.Timestamp)
	}

	stored := s.pool.Obtain(value)
	switch {
	case updateStatus:
		stored.Status = vehicle.StatusAvailable
	case old != nil:
		stored.Status = old.Status
	}
	rec.values[value.AreaID] = stored

	// Capture callback and payload for use outside lock
	onChange := s.onValueChange
	var changed *vehicle.PropertyValue
	if onChange != nil {
		changed = stored.Clone()
	}

	s.mu.Unlock()

	if old != nil {
		s.pool.Recycle(old)
	}
	if onChange != nil {
		onChange(changed)
	}
	return nil
}

// ReadValue returns a copy of the value stored at (propID, areaID).
func (s *PropertyStore) ReadValue(propID, areaID int32) (*vehicle.PropertyValue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, err := s.lookupLocked(propID, areaID)
	if err != nil {
		return nil, err
	}
	v := rec.values[areaID]
	if v == nil {
		return nil, newError(ErrNotFound, nil, "no value for property %s area 0x%x",
			vehicle.PropertyName(propID), uint32(areaID))
	}
	return v.Clone(), nil
}

// ReadValuesForProperty returns copies of the set values of propID in
// declared area order.
func (s *PropertyStore) ReadValuesForProperty(propID int32) ([]*vehicle.PropertyValue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.records[propID]
	if !exists {
		return nil, newError(ErrNotFound, nil, "property %s not registered", vehicle.PropertyName(propID))
	}
	return rec.snapshot(nil), nil
}

// ReadAllValues returns copies of every set value, in registration order
// and then declared area order.
func (s *PropertyStore) ReadAllValues() []*vehicle.PropertyValue {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*vehicle.PropertyValue
	for _, propID := range s.order {
		out = s.records[propID].snapshot(out)
	}
	return out
}

// RemoveValue unsets the value at (propID, areaID). No callback fires.
func (s *PropertyStore) RemoveValue(propID, areaID int32) error {
	s.mu.Lock()
	rec, err := s.lookupLocked(propID, areaID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	old := rec.values[areaID]
	rec.values[areaID] = nil
	s.mu.Unlock()

	s.pool.Recycle(old)
	return nil
}

// RemoveValuesForProperty unsets every area of propID. No callback fires.
func (s *PropertyStore) RemoveValuesForProperty(propID int32) error {
	s.mu.Lock()
	rec, exists := s.records[propID]
	if !exists {
		s.mu.Unlock()
		return newError(ErrNotFound, nil, "property %s not registered", vehicle.PropertyName(propID))
	}
	var old []*vehicle.PropertyValue
	for _, areaID := range rec.areas {
		if v := rec.values[areaID]; v != nil {
			old = append(old, v)
		}
		rec.values[areaID] = nil
	}
	s.mu.Unlock()

	for _, v := range old {
		s.pool.Recycle(v)
	}
	return nil
}

// GetAllConfigs returns copies of all registered configs in registration order.
func (s *PropertyStore) GetAllConfigs() []vehicle.PropertyConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	configs := make([]vehicle.PropertyConfig, 0, len(s.order))
	for _, propID := range s.order {
		configs = append(configs, s.records[propID].config.Clone())
	}
	return configs
}

// GetConfig returns a copy of the config registered for propID.
func (s *PropertyStore) GetConfig(propID int32) (vehicle.PropertyConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.records[propID]
	if !exists {
		return vehicle.PropertyConfig{}, newError(ErrNotFound, nil, "property %s not registered", vehicle.PropertyName(propID))
	}
	return rec.config.Clone(), nil
}

// SetOnValueChangeCallback installs the change callback, replacing any
// previous one. A nil callback disables notifications.
func (s *PropertyStore) SetOnValueChangeCallback(cb ValueChangeCallback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onValueChange = cb
}

// Verify checks the table's internal consistency: every stored value sits
// under its own property and a declared area.
func (s *PropertyStore) Verify() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return newError(ErrNotFound, nil, "store closed")
	}
	if len(s.order) != len(s.records) {
		return newError(ErrInvalidArg, nil, "registry order has %d entries, table has %d", len(s.order), len(s.records))
	}
	for propID, rec := range s.records {
		if rec.config.Prop != propID {
			return newError(ErrInvalidArg, nil, "record for 0x%x holds config 0x%x", uint32(propID), uint32(rec.config.Prop))
		}
		for areaID, v := range rec.values {
			if !rec.config.HasArea(areaID) {
				return newError(ErrInvalidArg, nil, "property %s has undeclared area 0x%x", vehicle.PropertyName(propID), uint32(areaID))
			}
			if v != nil && (v.Prop != propID || v.AreaID != areaID) {
				return newError(ErrInvalidArg, nil, "value %s stored under property 0x%x area 0x%x", v, uint32(propID), uint32(areaID))
			}
		}
	}
	return nil
}

// lookupLocked finds the record for propID and checks areaID is declared.
// s.mu must be held.
func (s *PropertyStore) lookupLocked(propID, areaID int32) (*record, error) {
	rec, exists := s.records[propID]
	if !exists {
		return nil, newError(ErrNotFound, nil, "property %s not registered", vehicle.PropertyName(propID))
	}
	if !rec.config.HasArea(areaID) {
		return nil, newError(ErrNotFound, nil, "area 0x%x not declared for property %s",
			uint32(areaID), vehicle.PropertyName(propID))
	}
	return rec, nil
}

func (r *record) snapshot(out []*vehicle.PropertyValue) []*vehicle.PropertyValue {
	for _, areaID := range r.areas {
		if v := r.values[areaID]; v != nil {
			out = append(out, v.Clone())
		}
	}
	return out
}
