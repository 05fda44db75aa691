package vehicle

import "slices"

// Access is the access mode of a property.
type Access int32

const (
	AccessNone      Access = 0
	AccessRead      Access = 1
	AccessWrite     Access = 2
	AccessReadWrite Access = 3
)

// CanRead returns true if reading is allowed.
func (a Access) CanRead() bool { return a&AccessRead != 0 }

// CanWrite returns true if writing is allowed.
func (a Access) CanWrite() bool { return a&AccessWrite != 0 }

// String returns the access mode name.
func (a Access) String() string {
	switch a {
	case AccessNone:
		return "NONE"
	case AccessRead:
		return "READ"
	case AccessWrite:
		return "WRITE"
	case AccessReadWrite:
		return "READ_WRITE"
	default:
		return "UNKNOWN"
	}
}

// ChangeMode describes how a property's value changes.
type ChangeMode int32

const (
	// ChangeModeStatic values never change after boot.
	ChangeModeStatic ChangeMode = 0

	// ChangeModeOnChange values are reported when they change.
	ChangeModeOnChange ChangeMode = 1

	// ChangeModeContinuous values change continuously and are sampled.
	ChangeModeContinuous ChangeMode = 2
)

// String returns the change mode name.
func (c ChangeMode) String() string {
	switch c {
	case ChangeModeStatic:
		return "STATIC"
	case ChangeModeOnChange:
		return "ON_CHANGE"
	case ChangeModeContinuous:
		return "CONTINUOUS"
	default:
		return "UNKNOWN"
	}
}

// AreaConfig declares one area of a property and its value constraints.
// A min/max pair that is both zero leaves that kind unconstrained.
type AreaConfig struct {
	AreaID        int32   `json:"area_id" yaml:"areaId"`
	MinInt32Value int32   `json:"min_int32_value,omitempty" yaml:"minInt32Value,omitempty"`
	MaxInt32Value int32   `json:"max_int32_value,omitempty" yaml:"maxInt32Value,omitempty"`
	MinInt64Value int64   `json:"min_int64_value,omitempty" yaml:"minInt64Value,omitempty"`
	MaxInt64Value int64   `json:"max_int64_value,omitempty" yaml:"maxInt64Value,omitempty"`
	MinFloatValue float32 `json:"min_float_value,omitempty" yaml:"minFloatValue,omitempty"`
	MaxFloatValue float32 `json:"max_float_value,omitempty" yaml:"maxFloatValue,omitempty"`
}

// PropertyConfig is the static metadata of a property.
type PropertyConfig struct {
	// Prop is the property ID.
	Prop int32 `json:"prop" yaml:"prop"`

	// Access is the access mode.
	Access Access `json:"access" yaml:"access"`

	// ChangeMode describes how the value changes.
	ChangeMode ChangeMode `json:"change_mode" yaml:"changeMode"`

	// AreaConfigs lists the supported areas. Empty for global properties.
	AreaConfigs []AreaConfig `json:"area_configs,omitempty" yaml:"areaConfigs,omitempty"`

	// ConfigArray carries property-specific configuration.
	ConfigArray []int32 `json:"config_array,omitempty" yaml:"configArray,omitempty"`

	// ConfigString carries property-specific configuration.
	ConfigString string `json:"config_string,omitempty" yaml:"configString,omitempty"`

	// MinSampleRate and MaxSampleRate bound the sampling rate in Hz for
	// continuous properties.
	MinSampleRate float32 `json:"min_sample_rate,omitempty" yaml:"minSampleRate,omitempty"`
	MaxSampleRate float32 `json:"max_sample_rate,omitempty" yaml:"maxSampleRate,omitempty"`
}

// IsGlobal returns true if the property is stored under the single area 0:
// either its ID declares a global area type or it declares no areas.
func (c *PropertyConfig) IsGlobal() bool {
	return IsGlobalProp(c.Prop) || len(c.AreaConfigs) == 0
}

// AreaIDs returns the area IDs values are stored under, in declaration order.
func (c *PropertyConfig) AreaIDs() []int32 {
	if c.IsGlobal() {
		return []int32{AreaGlobal}
	}
	ids := make([]int32, 0, len(c.AreaConfigs))
	for _, ac := range c.AreaConfigs {
		ids = append(ids, ac.AreaID)
	}
	return ids
}

// AreaConfigFor returns the area config for areaID.
// For global properties the first declared area config (if any) applies to area 0.
func (c *PropertyConfig) AreaConfigFor(areaID int32) (*AreaConfig, bool) {
	if c.IsGlobal() {
		if areaID != AreaGlobal || len(c.AreaConfigs) == 0 {
			return nil, false
		}
		return &c.AreaConfigs[0], true
	}
	for i := range c.AreaConfigs {
		if c.AreaConfigs[i].AreaID == areaID {
			return &c.AreaConfigs[i], true
		}
	}
	return nil, false
}

// HasArea returns true if a value may be stored under areaID.
func (c *PropertyConfig) HasArea(areaID int32) bool {
	if c.IsGlobal() {
		return areaID == AreaGlobal
	}
	_, ok := c.AreaConfigFor(areaID)
	return ok
}

// Clone returns a deep copy of c.
func (c PropertyConfig) Clone() PropertyConfig {
	c.AreaConfigs = slices.Clone(c.AreaConfigs)
	c.ConfigArray = slices.Clone(c.ConfigArray)
	return c
}
