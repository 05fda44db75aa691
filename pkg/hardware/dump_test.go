package hardware

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vhal-go/fakevhal/pkg/defaultconfig"
	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

func TestDump(t *testing.T) {
	h := newTestHardware(t, Config{})

	tests := []struct {
		name        string
		args        []string
		callerDump  bool
		contains    []string
		notContains []string
	}{
		{
			name:       "All",
			args:       nil,
			callerDump: true,
			contains: []string{
				h.SessionID(),
				"INFO_MAKE (0x11100101)",
				`{string="Toy Vehicle"}`,
				"DISPLAY_BRIGHTNESS",
				"no value",
				"pool: obtained=",
				"areas=[0x31,0x44]",
			},
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			contains: []string{"--list", "--get <prop> [area]"},
		},
		{
			name:     "List",
			args:     []string{"--list"},
			contains: []string{"listing 15 properties", "0x11600207: PERF_VEHICLE_SPEED"},
		},
		{
			name:        "GetByName",
			args:        []string{"--get", "HVAC_FAN_SPEED"},
			contains:    []string{"HVAC_FAN_SPEED", "area=0x31", "area=0x44"},
			notContains: []string{"no value"},
		},
		{
			name:        "GetByIDAndArea",
			args:        []string{"--get", "0x15400500", "0x44"},
			contains:    []string{"area=0x44", "{int32=[3]}"},
			notContains: []string{"area=0x31"},
		},
		{
			name:     "GetUnsetArea",
			args:     []string{"--get", "HVAC_TEMPERATURE_SET", "0x44"},
			contains: []string{"no value"},
		},
		{
			name:     "GetUnknownProperty",
			args:     []string{"--get", "NOT_A_PROPERTY"},
			contains: []string{"invalid property"},
		},
		{
			name:     "GetBadArea",
			args:     []string{"--get", "HVAC_FAN_SPEED", "left"},
			contains: []string{"invalid area"},
		},
		{
			name:     "GetMissingArgs",
			args:     []string{"--get"},
			contains: []string{"--get requires"},
		},
		{
			name:     "InvalidOption",
			args:     []string{"--bogus"},
			contains: []string{"Invalid option: --bogus", "--help"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := h.Dump(tt.args)
			assert.Equal(t, tt.callerDump, result.CallerShouldDumpState)
			for _, s := range tt.contains {
				assert.Contains(t, result.Buffer, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, result.Buffer, s)
			}
		})
	}
}

func TestDumpListCoversRegistry(t *testing.T) {
	h := newTestHardware(t, Config{})

	lines := strings.Split(strings.TrimSpace(h.Dump([]string{"--list"}).Buffer), "\n")
	assert.Len(t, lines, len(defaultconfig.DefaultConfigs())+1)
}

func TestDumpIsReadOnly(t *testing.T) {
	h := newTestHardware(t, Config{})

	var changes int
	h.RegisterOnPropertyChangeEvent(func([]*vehicle.PropertyValue) { changes++ })

	before := h.Snapshot().Values
	statsBefore := h.pool.Stats()
	for _, args := range [][]string{nil, {"--list"}, {"--get", "DOOR_LOCK"}, {"--get", "DOOR_LOCK", "0x1"}} {
		h.Dump(args)
	}
	after := h.Snapshot().Values

	require.Equal(t, len(before), len(after))
	for i := range before {
		assert.Equal(t, before[i].Timestamp, after[i].Timestamp)
		assert.True(t, before[i].Value.Equal(after[i].Value))
	}
	assert.Zero(t, changes)
	assert.Equal(t, statsBefore.Obtained, h.pool.Stats().Obtained)
}
