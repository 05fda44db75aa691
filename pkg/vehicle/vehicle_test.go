package vehicle

import (
	"errors"
	"testing"
)

func TestPropertyIDFields(t *testing.T) {
	tests := []struct {
		name     string
		prop     int32
		area     AreaType
		typ      PropertyType
		isGlobal bool
	}{
		{"InfoMake", InfoMake, AreaTypeGlobal, PropertyTypeString, true},
		{"VehicleSpeed", PerfVehicleSpeed, AreaTypeGlobal, PropertyTypeFloat, true},
		{"WheelTick", WheelTick, AreaTypeGlobal, PropertyTypeInt64Vec, true},
		{"HvacFanSpeed", HvacFanSpeed, AreaTypeSeat, PropertyTypeInt32, false},
		{"DoorLock", DoorLock, AreaTypeDoor, PropertyTypeBoolean, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AreaTypeOf(tt.prop); got != tt.area {
				t.Errorf("AreaTypeOf = %s, want %s", got, tt.area)
			}
			if got := PropertyTypeOf(tt.prop); got != tt.typ {
				t.Errorf("PropertyTypeOf = %s, want %s", got, tt.typ)
			}
			if got := IsGlobalProp(tt.prop); got != tt.isGlobal {
				t.Errorf("IsGlobalProp = %v, want %v", got, tt.isGlobal)
			}
			if !IsSystemProp(tt.prop) {
				t.Error("IsSystemProp = false, want true")
			}
		})
	}
}

func TestPropertyName(t *testing.T) {
	if got := PropertyName(HvacFanSpeed); got != "HVAC_FAN_SPEED" {
		t.Errorf("PropertyName = %q, want HVAC_FAN_SPEED", got)
	}
	if got := PropertyName(0x21400001); got != "0x21400001" {
		t.Errorf("PropertyName(unknown) = %q, want hex", got)
	}
	id, ok := PropertyByName("DOOR_LOCK")
	if !ok || id != DoorLock {
		t.Errorf("PropertyByName(DOOR_LOCK) = 0x%x, %v", id, ok)
	}
}

func TestRawValuesClone(t *testing.T) {
	orig := RawValues{
		Int32Values: []int32{1, 2},
		FloatValues: []float32{1.5},
		ByteValues:  []byte{0xAA},
		StringValue: "x",
	}

	c := orig.Clone()
	if !c.Equal(orig) {
		t.Fatalf("clone %v not equal to %v", c, orig)
	}

	c.Int32Values[0] = 99
	c.ByteValues[0] = 0
	if orig.Int32Values[0] != 1 || orig.ByteValues[0] != 0xAA {
		t.Error("clone aliases original payload")
	}
}

func TestRawValuesIsEmpty(t *testing.T) {
	if !(RawValues{}).IsEmpty() {
		t.Error("zero RawValues should be empty")
	}
	if (RawValues{Int32Values: []int32{}}).IsEmpty() != true {
		t.Error("empty slice should count as empty")
	}
	if StringValue("Toy").IsEmpty() {
		t.Error("string payload should not be empty")
	}
}

func TestPropertyValueClone(t *testing.T) {
	v := &PropertyValue{Prop: HvacFanSpeed, AreaID: AreaHvacLeft, Value: Int32Value(3)}
	c := v.Clone()
	c.Value.Int32Values[0] = 5
	if v.Value.Int32Values[0] != 3 {
		t.Error("PropertyValue.Clone aliases payload")
	}

	var nilValue *PropertyValue
	if nilValue.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestPropertyConfigAreas(t *testing.T) {
	t.Run("GlobalByID", func(t *testing.T) {
		c := PropertyConfig{Prop: PerfVehicleSpeed}
		if !c.IsGlobal() {
			t.Error("expected global")
		}
		if ids := c.AreaIDs(); len(ids) != 1 || ids[0] != 0 {
			t.Errorf("AreaIDs = %v, want [0]", ids)
		}
		if !c.HasArea(0) || c.HasArea(1) {
			t.Error("global property must accept only area 0")
		}
	})

	t.Run("AreaPropertyWithoutAreas", func(t *testing.T) {
		c := PropertyConfig{Prop: HvacFanSpeed}
		if !c.IsGlobal() {
			t.Error("area property with no area configs stores under area 0")
		}
	})

	t.Run("PerArea", func(t *testing.T) {
		c := PropertyConfig{
			Prop:        HvacFanSpeed,
			AreaConfigs: []AreaConfig{{AreaID: AreaHvacLeft}, {AreaID: AreaHvacRight}},
		}
		if c.IsGlobal() {
			t.Error("expected per-area")
		}
		ids := c.AreaIDs()
		if len(ids) != 2 || ids[0] != AreaHvacLeft || ids[1] != AreaHvacRight {
			t.Errorf("AreaIDs = %v", ids)
		}
		if c.HasArea(0) || !c.HasArea(AreaHvacRight) {
			t.Error("HasArea mismatch")
		}
	})

	t.Run("CloneIndependent", func(t *testing.T) {
		c := PropertyConfig{Prop: HvacFanSpeed, AreaConfigs: []AreaConfig{{AreaID: 1}}}
		cp := c.Clone()
		cp.AreaConfigs[0].AreaID = 7
		if c.AreaConfigs[0].AreaID != 1 {
			t.Error("Clone aliases area configs")
		}
	})
}

func TestValidateValue(t *testing.T) {
	fan := &PropertyConfig{
		Prop: HvacFanSpeed,
		AreaConfigs: []AreaConfig{
			{AreaID: AreaHvacLeft, MinInt32Value: 1, MaxInt32Value: 7},
			{AreaID: AreaHvacRight},
		},
	}

	tests := []struct {
		name    string
		config  *PropertyConfig
		value   PropertyValue
		wantErr error
	}{
		{
			name:   "InRange",
			config: fan,
			value:  PropertyValue{Prop: HvacFanSpeed, AreaID: AreaHvacLeft, Value: Int32Value(3)},
		},
		{
			name:    "BelowMin",
			config:  fan,
			value:   PropertyValue{Prop: HvacFanSpeed, AreaID: AreaHvacLeft, Value: Int32Value(0)},
			wantErr: ErrValueOutOfRange,
		},
		{
			name:   "UnconstrainedArea",
			config: fan,
			value:  PropertyValue{Prop: HvacFanSpeed, AreaID: AreaHvacRight, Value: Int32Value(100)},
		},
		{
			name:    "WrongShape",
			config:  fan,
			value:   PropertyValue{Prop: HvacFanSpeed, AreaID: AreaHvacLeft, Value: FloatValue(1)},
			wantErr: ErrValueType,
		},
		{
			name:    "BooleanNotBinary",
			config:  &PropertyConfig{Prop: NightMode},
			value:   PropertyValue{Prop: NightMode, Value: Int32Value(2)},
			wantErr: ErrValueType,
		},
		{
			name:    "EmptyVector",
			config:  &PropertyConfig{Prop: WheelTick},
			value:   PropertyValue{Prop: WheelTick},
			wantErr: ErrValueType,
		},
		{
			name:   "StringAnyPayload",
			config: &PropertyConfig{Prop: InfoMake},
			value:  PropertyValue{Prop: InfoMake, Value: StringValue("Toy Vehicle")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateValue(tt.config, &tt.value)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateValue() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateValue() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStatusCodeString(t *testing.T) {
	if StatusNotAvailable.String() != "NOT_AVAILABLE" {
		t.Errorf("got %s", StatusNotAvailable)
	}
	if StatusCode(42).String() != "UNKNOWN" {
		t.Errorf("got %s", StatusCode(42))
	}
	if StatusUnavailable.String() != "UNAVAILABLE" {
		t.Errorf("got %s", StatusUnavailable)
	}
}
