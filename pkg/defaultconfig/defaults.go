// Package defaultconfig supplies the property declarations the fake hardware
// is bootstrapped from: a built-in set modelled on a typical passenger car,
// and a YAML loader for additional or replacement declarations.
package defaultconfig

import "github.com/vhal-go/fakevhal/pkg/vehicle"

// ConfigDeclaration is one property's config and its initial values.
//
// InitialValue seeds a global property (or every area, when
// InitialAreaValues is empty). InitialAreaValues seeds per-area properties
// by area ID.
type ConfigDeclaration struct {
	Config            vehicle.PropertyConfig
	InitialValue      vehicle.RawValues
	InitialAreaValues map[int32]vehicle.RawValues
}

// Clone returns a deep copy of d.
func (d ConfigDeclaration) Clone() ConfigDeclaration {
	c := ConfigDeclaration{
		Config:       d.Config.Clone(),
		InitialValue: d.InitialValue.Clone(),
	}
	if d.InitialAreaValues != nil {
		c.InitialAreaValues = make(map[int32]vehicle.RawValues, len(d.InitialAreaValues))
		for area, v := range d.InitialAreaValues {
			c.InitialAreaValues[area] = v.Clone()
		}
	}
	return c
}

var (
	hvacAreas = []vehicle.AreaConfig{
		{AreaID: vehicle.AreaHvacLeft},
		{AreaID: vehicle.AreaHvacRight},
	}
	doorAreas = []vehicle.AreaConfig{
		{AreaID: vehicle.AreaRow1Left},
		{AreaID: vehicle.AreaRow1Right},
		{AreaID: vehicle.AreaRow2Left},
		{AreaID: vehicle.AreaRow2Right},
	}
)

// DefaultConfigs returns a fresh copy of the built-in declarations in
// registration order.
func DefaultConfigs() []ConfigDeclaration {
	out := make([]ConfigDeclaration, 0, len(builtin))
	for _, d := range builtin {
		out = append(out, d.Clone())
	}
	return out
}

var builtin = []ConfigDeclaration{
	{
		Config: vehicle.PropertyConfig{
			Prop:       vehicle.InfoMake,
			Access:     vehicle.AccessRead,
			ChangeMode: vehicle.ChangeModeStatic,
		},
		InitialValue: vehicle.StringValue("Toy Vehicle"),
	},
	{
		Config: vehicle.PropertyConfig{
			Prop:       vehicle.InfoModelYear,
			Access:     vehicle.AccessRead,
			ChangeMode: vehicle.ChangeModeStatic,
		},
		InitialValue: vehicle.Int32Value(2021),
	},
	{
		Config: vehicle.PropertyConfig{
			Prop:       vehicle.InfoFuelCapacity,
			Access:     vehicle.AccessRead,
			ChangeMode: vehicle.ChangeModeStatic,
		},
		InitialValue: vehicle.FloatValue(15000),
	},
	{
		Config: vehicle.PropertyConfig{
			Prop:       vehicle.InfoFuelType,
			Access:     vehicle.AccessRead,
			ChangeMode: vehicle.ChangeModeStatic,
		},
		// FUEL_TYPE_UNLEADED
		InitialValue: vehicle.RawValues{Int32Values: []int32{1}},
	},
	{
		Config: vehicle.PropertyConfig{
			Prop:          vehicle.PerfVehicleSpeed,
			Access:        vehicle.AccessRead,
			ChangeMode:    vehicle.ChangeModeContinuous,
			MinSampleRate: 1,
			MaxSampleRate: 10,
		},
		InitialValue: vehicle.FloatValue(0),
	},
	{
		Config: vehicle.PropertyConfig{
			Prop:          vehicle.EngineRPM,
			Access:        vehicle.AccessRead,
			ChangeMode:    vehicle.ChangeModeContinuous,
			MinSampleRate: 1,
			MaxSampleRate: 10,
		},
		InitialValue: vehicle.FloatValue(0),
	},
	{
		Config: vehicle.PropertyConfig{
			Prop:          vehicle.WheelTick,
			Access:        vehicle.AccessRead,
			ChangeMode:    vehicle.ChangeModeContinuous,
			ConfigArray:   []int32{15, 50000, 50000, 50000, 50000},
			MinSampleRate: 1,
			MaxSampleRate: 10,
		},
		InitialValue: vehicle.RawValues{Int64Values: []int64{0, 100000, 200000, 300000, 400000}},
	},
	{
		Config: vehicle.PropertyConfig{
			Prop:       vehicle.CurrentGear,
			Access:     vehicle.AccessRead,
			ChangeMode: vehicle.ChangeModeOnChange,
		},
		// GEAR_PARK
		InitialValue: vehicle.Int32Value(4),
	},
	{
		Config: vehicle.PropertyConfig{
			Prop:       vehicle.ParkingBrakeOn,
			Access:     vehicle.AccessRead,
			ChangeMode: vehicle.ChangeModeOnChange,
		},
		InitialValue: vehicle.BoolValue(true),
	},
	{
		Config: vehicle.PropertyConfig{
			Prop:       vehicle.NightMode,
			Access:     vehicle.AccessRead,
			ChangeMode: vehicle.ChangeModeOnChange,
		},
		InitialValue: vehicle.BoolValue(false),
	},
	{
		Config: vehicle.PropertyConfig{
			Prop:        vehicle.HvacPowerOn,
			Access:      vehicle.AccessReadWrite,
			ChangeMode:  vehicle.ChangeModeOnChange,
			AreaConfigs: hvacAreas,
		},
		InitialValue: vehicle.BoolValue(true),
	},
	{
		Config: vehicle.PropertyConfig{
			Prop:       vehicle.HvacFanSpeed,
			Access:     vehicle.AccessReadWrite,
			ChangeMode: vehicle.ChangeModeOnChange,
			AreaConfigs: []vehicle.AreaConfig{
				{AreaID: vehicle.AreaHvacLeft, MinInt32Value: 1, MaxInt32Value: 7},
				{AreaID: vehicle.AreaHvacRight, MinInt32Value: 1, MaxInt32Value: 7},
			},
		},
		InitialAreaValues: map[int32]vehicle.RawValues{
			vehicle.AreaHvacLeft:  vehicle.Int32Value(3),
			vehicle.AreaHvacRight: vehicle.Int32Value(3),
		},
	},
	{
		Config: vehicle.PropertyConfig{
			Prop:       vehicle.HvacTemperatureSet,
			Access:     vehicle.AccessReadWrite,
			ChangeMode: vehicle.ChangeModeOnChange,
			AreaConfigs: []vehicle.AreaConfig{
				{AreaID: vehicle.AreaHvacLeft, MinFloatValue: 16, MaxFloatValue: 32},
				{AreaID: vehicle.AreaHvacRight, MinFloatValue: 16, MaxFloatValue: 32},
			},
		},
		// The passenger side has no factory default and stays unset until
		// first written.
		InitialAreaValues: map[int32]vehicle.RawValues{
			vehicle.AreaHvacLeft: vehicle.FloatValue(21),
		},
	},
	{
		Config: vehicle.PropertyConfig{
			Prop:        vehicle.DoorLock,
			Access:      vehicle.AccessReadWrite,
			ChangeMode:  vehicle.ChangeModeOnChange,
			AreaConfigs: doorAreas,
		},
		InitialValue: vehicle.BoolValue(true),
	},
	{
		Config: vehicle.PropertyConfig{
			Prop:       vehicle.DisplayBrightness,
			Access:     vehicle.AccessReadWrite,
			ChangeMode: vehicle.ChangeModeOnChange,
			AreaConfigs: []vehicle.AreaConfig{
				{AreaID: vehicle.AreaGlobal, MinInt32Value: 0, MaxInt32Value: 100},
			},
		},
		// No initial value: reported as unavailable until set.
	},
}
