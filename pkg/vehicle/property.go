package vehicle

import "fmt"

// Bit masks for the fields encoded in a property ID.
const (
	PropertyGroupMask int32 = -0x10000000 // 0xf0000000
	PropertyAreaMask  int32 = 0x0f000000
	PropertyTypeMask  int32 = 0x00ff0000
	PropertyIndexMask int32 = 0x0000ffff
)

// Property groups.
const (
	PropertyGroupSystem int32 = 0x10000000
	PropertyGroupVendor int32 = 0x20000000
)

// AreaType is the area-type field of a property ID.
type AreaType int32

const (
	AreaTypeGlobal AreaType = 0x01000000
	AreaTypeWindow AreaType = 0x03000000
	AreaTypeMirror AreaType = 0x04000000
	AreaTypeSeat   AreaType = 0x05000000
	AreaTypeDoor   AreaType = 0x06000000
	AreaTypeWheel  AreaType = 0x07000000
)

// String returns the area type name.
func (a AreaType) String() string {
	switch a {
	case AreaTypeGlobal:
		return "GLOBAL"
	case AreaTypeWindow:
		return "WINDOW"
	case AreaTypeMirror:
		return "MIRROR"
	case AreaTypeSeat:
		return "SEAT"
	case AreaTypeDoor:
		return "DOOR"
	case AreaTypeWheel:
		return "WHEEL"
	default:
		return "UNKNOWN"
	}
}

// PropertyType is the value-type field of a property ID.
type PropertyType int32

const (
	PropertyTypeString   PropertyType = 0x00100000
	PropertyTypeBoolean  PropertyType = 0x00200000
	PropertyTypeInt32    PropertyType = 0x00400000
	PropertyTypeInt32Vec PropertyType = 0x00410000
	PropertyTypeInt64    PropertyType = 0x00500000
	PropertyTypeInt64Vec PropertyType = 0x00510000
	PropertyTypeFloat    PropertyType = 0x00600000
	PropertyTypeFloatVec PropertyType = 0x00610000
	PropertyTypeBytes    PropertyType = 0x00700000
	PropertyTypeMixed    PropertyType = 0x00e00000
)

// String returns the value type name.
func (t PropertyType) String() string {
	switch t {
	case PropertyTypeString:
		return "STRING"
	case PropertyTypeBoolean:
		return "BOOLEAN"
	case PropertyTypeInt32:
		return "INT32"
	case PropertyTypeInt32Vec:
		return "INT32_VEC"
	case PropertyTypeInt64:
		return "INT64"
	case PropertyTypeInt64Vec:
		return "INT64_VEC"
	case PropertyTypeFloat:
		return "FLOAT"
	case PropertyTypeFloatVec:
		return "FLOAT_VEC"
	case PropertyTypeBytes:
		return "BYTES"
	case PropertyTypeMixed:
		return "MIXED"
	default:
		return "UNKNOWN"
	}
}

// Well-known system property IDs.
const (
	InfoMake           int32 = 0x11100101
	InfoModelYear      int32 = 0x11400103
	InfoFuelCapacity   int32 = 0x11600104
	InfoFuelType       int32 = 0x11410105
	PerfVehicleSpeed   int32 = 0x11600207
	EngineRPM          int32 = 0x11600305
	WheelTick          int32 = 0x11510306
	CurrentGear        int32 = 0x11400401
	ParkingBrakeOn     int32 = 0x11200402
	NightMode          int32 = 0x11200407
	HvacFanSpeed       int32 = 0x15400500
	HvacTemperatureSet int32 = 0x15600503
	HvacPowerOn        int32 = 0x15200510
	DisplayBrightness  int32 = 0x11400a01
	DoorLock           int32 = 0x16200b02
)

// Seat and door area bits.
const (
	AreaGlobal    int32 = 0
	AreaRow1Left  int32 = 0x0001
	AreaRow1Right int32 = 0x0004
	AreaRow2Left  int32 = 0x0010
	AreaRow2Right int32 = 0x0040

	// HVAC zones group seats sharing one climate control.
	AreaHvacLeft  int32 = 0x0031
	AreaHvacRight int32 = 0x0044
)

// AreaTypeOf returns the area type encoded in propID.
func AreaTypeOf(propID int32) AreaType {
	return AreaType(propID & PropertyAreaMask)
}

// PropertyTypeOf returns the value type encoded in propID.
func PropertyTypeOf(propID int32) PropertyType {
	return PropertyType(propID & PropertyTypeMask)
}

// IsGlobalProp returns true if propID is a global property.
func IsGlobalProp(propID int32) bool {
	return AreaTypeOf(propID) == AreaTypeGlobal
}

// IsSystemProp returns true if propID belongs to the system group.
func IsSystemProp(propID int32) bool {
	return propID&PropertyGroupMask == PropertyGroupSystem
}

// PropertyName returns the well-known name of propID, or its hex ID.
func PropertyName(propID int32) string {
	if name, ok := propertyNames[propID]; ok {
		return name
	}
	return fmt.Sprintf("0x%x", uint32(propID))
}

var propertyNames = map[int32]string{
	InfoMake:           "INFO_MAKE",
	InfoModelYear:      "INFO_MODEL_YEAR",
	InfoFuelCapacity:   "INFO_FUEL_CAPACITY",
	InfoFuelType:       "INFO_FUEL_TYPE",
	PerfVehicleSpeed:   "PERF_VEHICLE_SPEED",
	EngineRPM:          "ENGINE_RPM",
	WheelTick:          "WHEEL_TICK",
	CurrentGear:        "CURRENT_GEAR",
	ParkingBrakeOn:     "PARKING_BRAKE_ON",
	NightMode:          "NIGHT_MODE",
	HvacFanSpeed:       "HVAC_FAN_SPEED",
	HvacTemperatureSet: "HVAC_TEMPERATURE_SET",
	HvacPowerOn:        "HVAC_POWER_ON",
	DisplayBrightness:  "DISPLAY_BRIGHTNESS",
	DoorLock:           "DOOR_LOCK",
}

// PropertyByName returns the property ID for a well-known name.
func PropertyByName(name string) (int32, bool) {
	for id, n := range propertyNames {
		if n == name {
			return id, true
		}
	}
	return 0, false
}
