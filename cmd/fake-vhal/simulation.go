package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// Gear values reported on CURRENT_GEAR.
const (
	gearPark  int32 = 4
	gearDrive int32 = 8
)

// Simulation limits.
const (
	maxSpeed  = 40.0 // m/s
	idleRPM   = 800.0
	rpmPerMPS = 90.0
	// wheel ticks per meter travelled
	ticksPerMeter = 10.0
)

// injector is the subset of the hardware the simulator drives.
type injector interface {
	InjectPropertyEvent(value *vehicle.PropertyValue) error
}

// simulator produces synthetic driving data: a random walk on vehicle
// speed, with engine RPM, wheel ticks and gear derived from it.
type simulator struct {
	hw     injector
	logger *slog.Logger
	rng    *rand.Rand

	speed float64
	gear  int32
	ticks [4]int64
}

func newSimulator(hw injector, logger *slog.Logger, seed uint64) *simulator {
	return &simulator{
		hw:     hw,
		logger: logger,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		gear:   gearPark,
	}
}

// step advances the simulation by dt and injects the new values.
func (s *simulator) step(dt time.Duration) {
	s.speed += (s.rng.Float64() - 0.45) * 4
	s.speed = min(max(s.speed, 0), maxSpeed)

	meters := s.speed * dt.Seconds()
	for i := range s.ticks {
		s.ticks[i] += int64(meters * ticksPerMeter)
	}

	s.inject(vehicle.PerfVehicleSpeed, vehicle.FloatValue(float32(s.speed)))
	s.inject(vehicle.EngineRPM, vehicle.FloatValue(float32(idleRPM+s.speed*rpmPerMPS)))
	s.inject(vehicle.WheelTick, vehicle.RawValues{
		Int64Values: []int64{0, s.ticks[0], s.ticks[1], s.ticks[2], s.ticks[3]},
	})

	gear := gearDrive
	if s.speed == 0 {
		gear = gearPark
	}
	if gear != s.gear {
		s.gear = gear
		s.inject(vehicle.CurrentGear, vehicle.Int32Value(gear))
	}
}

func (s *simulator) inject(propID int32, raw vehicle.RawValues) {
	err := s.hw.InjectPropertyEvent(&vehicle.PropertyValue{
		Prop:   propID,
		Status: vehicle.StatusAvailable,
		Value:  raw,
	})
	if err != nil {
		s.logger.Debug("simulation inject failed", "prop", vehicle.PropertyName(propID), "error", err)
	}
}

// run steps the simulation every interval until ctx is done.
func (s *simulator) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.step(interval)
		}
	}
}

// simControl starts and stops a background simulation.
type simControl struct {
	mu       sync.Mutex
	sim      *simulator
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
	logger   *slog.Logger
}

func newSimControl(sim *simulator, interval time.Duration, logger *slog.Logger) *simControl {
	return &simControl{sim: sim, interval: interval, logger: logger}
}

// Start launches the simulation under ctx. Starting a running simulation is
// a no-op.
func (c *simControl) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel, c.done = cancel, done
	go func() {
		defer close(done)
		c.sim.run(ctx, c.interval)
	}()
	c.logger.Info("simulation started", "interval", c.interval)
}

// Stop halts the simulation and waits for it to exit.
func (c *simControl) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	c.logger.Info("simulation stopped")
}

// Running reports whether the simulation is active.
func (c *simControl) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}
