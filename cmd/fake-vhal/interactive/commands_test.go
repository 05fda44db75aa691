package interactive

import (
	"bytes"
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vhal-go/fakevhal/pkg/connector"
	"github.com/vhal-go/fakevhal/pkg/hardware"
	"github.com/vhal-go/fakevhal/pkg/persistence"
	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// syncBuffer is a bytes.Buffer safe for the concurrent writes of the
// change callback and the command loop.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

type fakeSim struct {
	running bool
	starts  int
}

func (f *fakeSim) Start(context.Context) { f.running = true; f.starts++ }
func (f *fakeSim) Stop()                 { f.running = false }
func (f *fakeSim) Running() bool         { return f.running }

// newTestShell wires a shell to a fresh hardware the same way fake-vhal
// does, without a terminal.
func newTestShell(t *testing.T) (*Shell, *syncBuffer) {
	t.Helper()

	hw := hardware.NewFakeHardware(hardware.Config{})
	t.Cleanup(func() { _ = hw.Close() })

	server := connector.NewHardwareServer(hw)
	conn := connector.NewPassThrough(nil, server)
	server.Attach(conn)

	out := &syncBuffer{}
	s := &Shell{hw: hw, client: conn, out: out}
	conn.SetClientHandler(s)
	return s, out
}

func run(s *Shell, out *syncBuffer, line string) string {
	out.Reset()
	s.Execute(context.Background(), line)
	return out.String()
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in      string
		want    target
		wantErr bool
	}{
		{in: "HVAC_FAN_SPEED", want: target{prop: vehicle.HvacFanSpeed}},
		{in: "hvac_fan_speed@0x31", want: target{prop: vehicle.HvacFanSpeed, area: 0x31, hasArea: true}},
		{in: "0x11400401", want: target{prop: vehicle.CurrentGear}},
		{in: "DISPLAY_BRIGHTNESS@0", want: target{prop: vehicle.DisplayBrightness, hasArea: true}},
		{in: "NOPE", wantErr: true},
		{in: "HVAC_FAN_SPEED@left", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTarget(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		prop    int32
		args    []string
		want    vehicle.RawValues
		wantErr string
	}{
		{"bool on", vehicle.HvacPowerOn, []string{"on"}, vehicle.BoolValue(true), ""},
		{"bool false", vehicle.DoorLock, []string{"false"}, vehicle.BoolValue(false), ""},
		{"bool bad", vehicle.HvacPowerOn, []string{"maybe"}, vehicle.RawValues{}, "invalid boolean"},
		{"bool two", vehicle.HvacPowerOn, []string{"on", "off"}, vehicle.RawValues{}, "one value"},
		{"int32", vehicle.HvacFanSpeed, []string{"5"}, vehicle.Int32Value(5), ""},
		{"int32 hex", vehicle.HvacFanSpeed, []string{"0x3"}, vehicle.Int32Value(3), ""},
		{"int32 bad", vehicle.HvacFanSpeed, []string{"fast"}, vehicle.RawValues{}, "invalid value"},
		{"int32 vec", vehicle.InfoFuelType, []string{"1", "2"}, vehicle.RawValues{Int32Values: []int32{1, 2}}, ""},
		{"float", vehicle.HvacTemperatureSet, []string{"21.5"}, vehicle.FloatValue(21.5), ""},
		{"int64 vec", vehicle.WheelTick, []string{"0", "1", "2", "3", "4"},
			vehicle.RawValues{Int64Values: []int64{0, 1, 2, 3, 4}}, ""},
		{"string", vehicle.InfoMake, []string{"Test", "Car"}, vehicle.StringValue("Test Car"), ""},
		{"bytes", 0x11700001, []string{"de", "ad"}, vehicle.RawValues{ByteValues: []byte{0xde, 0xad}}, ""},
		{"bytes bad", 0x11700001, []string{"zz"}, vehicle.RawValues{}, "must be hex"},
		{"mixed", 0x11e00001, []string{"1"}, vehicle.RawValues{}, "cannot parse"},
		{"missing", vehicle.HvacFanSpeed, nil, vehicle.RawValues{}, "missing value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseValue(tt.prop, tt.args)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatus(t *testing.T) {
	code, err := parseStatus("try_again")
	require.NoError(t, err)
	assert.Equal(t, vehicle.StatusTryAgain, code)

	code, err = parseStatus("5")
	require.NoError(t, err)
	assert.Equal(t, vehicle.StatusCode(5), code)

	_, err = parseStatus("BROKEN")
	assert.ErrorContains(t, err, "unknown status")
}

func TestExecuteList(t *testing.T) {
	s, out := newTestShell(t)

	got := run(s, out, "list")
	assert.Contains(t, got, "15 properties:")
	assert.Contains(t, got, "HVAC_FAN_SPEED")
	assert.Contains(t, got, "0x15400500")
}

func TestExecuteGet(t *testing.T) {
	s, out := newTestShell(t)

	got := run(s, out, "get HVAC_FAN_SPEED")
	assert.Contains(t, got, "area=0x31 = {int32=[3]}")
	assert.Contains(t, got, "area=0x44")

	got = run(s, out, "get INFO_MAKE")
	assert.Contains(t, got, `"Toy Vehicle"`)

	got = run(s, out, "get HVAC_FAN_SPEED@0x99")
	assert.Contains(t, got, "NOT_AVAILABLE")

	assert.Contains(t, run(s, out, "get"), "Usage: get")
	assert.Contains(t, run(s, out, "get 0x11400fff"), "unknown property")
}

func TestExecuteSet(t *testing.T) {
	s, out := newTestShell(t)

	got := run(s, out, "set HVAC_FAN_SPEED@0x31 6")
	assert.Contains(t, got, "set HVAC_FAN_SPEED area=0x31: OK")

	got = run(s, out, "get HVAC_FAN_SPEED@0x31")
	assert.Contains(t, got, "{int32=[6]}")

	got = run(s, out, "set HVAC_FAN_SPEED@0x31 9")
	assert.Contains(t, got, "INVALID_ARG")

	got = run(s, out, "set CURRENT_GEAR 8")
	assert.Contains(t, got, "ACCESS_DENIED")

	assert.Contains(t, run(s, out, "set HVAC_FAN_SPEED"), "Usage: set")
	assert.Contains(t, run(s, out, "set HVAC_POWER_ON maybe"), "Error:")
}

func TestExecuteInjectAndWatch(t *testing.T) {
	s, out := newTestShell(t)

	got := run(s, out, "inject CURRENT_GEAR 8")
	assert.Contains(t, got, "injected CURRENT_GEAR")
	assert.NotContains(t, got, "[car]", "nothing printed while watch is off")

	assert.Contains(t, run(s, out, "watch on"), "watch: on")

	got = run(s, out, "inject CURRENT_GEAR 4")
	assert.Contains(t, got, "[car] CURRENT_GEAR area=0x0 {int32=[4]}")

	// A client set is echoed back as a change from the car.
	got = run(s, out, "set HVAC_POWER_ON@0x31 off")
	assert.Contains(t, got, "[car] HVAC_POWER_ON")

	assert.Contains(t, run(s, out, "watch off"), "watch: off")
	assert.Contains(t, run(s, out, "watch"), "watch: off")
	assert.Contains(t, run(s, out, "watch loud"), "Usage: watch")

	got = run(s, out, "inject HVAC_FAN_SPEED@0x99 3")
	assert.Contains(t, got, "Error:")
}

func TestExecuteSetError(t *testing.T) {
	s, out := newTestShell(t)

	var (
		mu     sync.Mutex
		events []vehicle.SetValueErrorEvent
	)
	s.hw.RegisterOnPropertySetErrorEvent(func(e []vehicle.SetValueErrorEvent) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, e...)
	})

	got := run(s, out, "seterr HVAC_FAN_SPEED@0x31 TRY_AGAIN")
	assert.Contains(t, got, "reported TRY_AGAIN for HVAC_FAN_SPEED area=0x31")

	mu.Lock()
	require.Len(t, events, 1)
	assert.Equal(t, vehicle.SetValueErrorEvent{
		ErrorCode: vehicle.StatusTryAgain,
		PropID:    vehicle.HvacFanSpeed,
		AreaID:    0x31,
	}, events[0])
	mu.Unlock()

	assert.Contains(t, run(s, out, "seterr HVAC_FAN_SPEED"), "Usage: seterr")
	assert.Contains(t, run(s, out, "seterr HVAC_FAN_SPEED BROKEN"), "unknown status")
}

func TestExecuteDiagnostics(t *testing.T) {
	s, out := newTestShell(t)

	assert.Contains(t, run(s, out, "health"), "health: OK")
	assert.Contains(t, run(s, out, "dump --list"), "listing 15 properties")
	assert.Contains(t, run(s, out, "dump --get HVAC_FAN_SPEED 0x31"), "{int32=[3]}")
	assert.Contains(t, run(s, out, "dump"), "pool: obtained=")
	assert.Contains(t, run(s, out, "help"), "Fake Vehicle HAL Commands")
	assert.Contains(t, run(s, out, "frobnicate"), "Unknown command: frobnicate")
}

func TestExecuteSim(t *testing.T) {
	s, out := newTestShell(t)

	assert.Contains(t, run(s, out, "sim start"), "Simulation not available")

	sim := &fakeSim{}
	s.sim = sim
	assert.Contains(t, run(s, out, "sim start"), "simulation running: true")
	assert.Equal(t, 1, sim.starts)
	assert.Contains(t, run(s, out, "sim status"), "simulation running: true")
	assert.Contains(t, run(s, out, "sim stop"), "simulation running: false")
	assert.Contains(t, run(s, out, "sim"), "Usage: sim")
	assert.Contains(t, run(s, out, "sim fast"), "Usage: sim")
}

func TestExecuteSave(t *testing.T) {
	s, out := newTestShell(t)

	assert.Contains(t, run(s, out, "save"), "No state file configured")

	path := filepath.Join(t.TempDir(), "state.json")
	s.state = persistence.NewSnapshotStore(path)

	run(s, out, "set HVAC_FAN_SPEED@0x44 2")
	got := run(s, out, "save")
	assert.Contains(t, got, "saved ")
	assert.Contains(t, got, path)

	snapshot, err := s.state.Load()
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, s.hw.SessionID(), snapshot.SessionID)

	var found bool
	for _, v := range snapshot.Values {
		if v.Prop == vehicle.HvacFanSpeed && v.AreaID == 0x44 {
			found = true
			assert.Equal(t, []int32{2}, v.Value.Int32Values)
		}
	}
	assert.True(t, found, "saved snapshot holds the value just set")
}

func TestExecuteQuit(t *testing.T) {
	s, out := newTestShell(t)

	assert.False(t, s.Execute(context.Background(), ""))
	assert.False(t, s.Execute(context.Background(), "list"))
	assert.True(t, s.Execute(context.Background(), "quit"))
	assert.True(t, s.Execute(context.Background(), "EXIT"))
	assert.Contains(t, out.String(), "Exiting...")
}
