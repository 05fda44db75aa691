package hardware

import "github.com/vhal-go/fakevhal/pkg/vehicle"

// CheckHealth reports OK while the adapter is open, its pool is live and the
// store's table is consistent. Any failure is logged and reported as
// INTERNAL_ERROR.
func (h *FakeHardware) CheckHealth() vehicle.StatusCode {
	if h.closed.Load() {
		h.logger.Warn("health check on closed hardware")
		return vehicle.StatusInternalError
	}
	if h.pool.Closed() {
		h.logger.Error("health check failed: value pool released")
		return vehicle.StatusInternalError
	}
	if err := h.store.Verify(); err != nil {
		h.logger.Error("health check failed", "error", err)
		return vehicle.StatusInternalError
	}
	return vehicle.StatusOK
}
