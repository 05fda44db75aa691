package hardware

import (
	"github.com/vhal-go/fakevhal/pkg/persistence"
	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// Snapshot captures every stored value.
func (h *FakeHardware) Snapshot() *persistence.Snapshot {
	values := h.store.ReadAllValues()
	snapshot := &persistence.Snapshot{
		SessionID: h.sessionID,
		Values:    make([]vehicle.PropertyValue, 0, len(values)),
	}
	for _, v := range values {
		snapshot.Values = append(snapshot.Values, *v)
	}
	return snapshot
}

// Restore writes the snapshot's values back into the store as hardware
// updates. Restored values are restamped with the adapter clock, since
// snapshot timestamps come from another session's clock. Values for
// properties or areas that are no longer registered, or that fail
// validation, are logged and skipped. Subscribers are notified of each
// restored value. Returns the number restored.
func (h *FakeHardware) Restore(snapshot *persistence.Snapshot) (int, error) {
	if h.closed.Load() {
		return 0, ErrClosed
	}
	if snapshot == nil {
		return 0, nil
	}

	restored := 0
	for i := range snapshot.Values {
		v := snapshot.Values[i].Clone()
		v.Timestamp = h.clock()
		if err := h.store.WriteValue(v, false); err != nil {
			h.logger.Warn("skipping snapshot value",
				"prop", vehicle.PropertyName(v.Prop), "area", v.AreaID, "error", err)
			continue
		}
		restored++
	}
	h.logger.Info("restored snapshot",
		"from_session", snapshot.SessionID,
		"restored", restored,
		"skipped", len(snapshot.Values)-restored)
	return restored, nil
}
