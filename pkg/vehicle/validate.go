package vehicle

import (
	"errors"
	"fmt"
)

// Value validation errors.
var (
	ErrValueType       = errors.New("invalid value type for property")
	ErrValueOutOfRange = errors.New("value out of range")
)

// ValidateValue checks that value's payload matches the shape required by
// the property's value type and lies within the area's declared limits.
func ValidateValue(config *PropertyConfig, value *PropertyValue) error {
	if err := checkShape(PropertyTypeOf(value.Prop), value.Value); err != nil {
		return err
	}
	if ac, ok := config.AreaConfigFor(value.AreaID); ok {
		return checkRange(ac, value.Value)
	}
	return nil
}

func checkShape(t PropertyType, v RawValues) error {
	switch t {
	case PropertyTypeBoolean:
		if len(v.Int32Values) != 1 {
			return fmt.Errorf("%w: expected 1 int32 element for BOOLEAN, got %d", ErrValueType, len(v.Int32Values))
		}
		if b := v.Int32Values[0]; b != 0 && b != 1 {
			return fmt.Errorf("%w: BOOLEAN must be 0 or 1, got %d", ErrValueType, b)
		}
	case PropertyTypeInt32:
		if len(v.Int32Values) != 1 {
			return fmt.Errorf("%w: expected 1 int32 element, got %d", ErrValueType, len(v.Int32Values))
		}
	case PropertyTypeInt32Vec:
		if len(v.Int32Values) == 0 {
			return fmt.Errorf("%w: expected at least 1 int32 element", ErrValueType)
		}
	case PropertyTypeInt64:
		if len(v.Int64Values) != 1 {
			return fmt.Errorf("%w: expected 1 int64 element, got %d", ErrValueType, len(v.Int64Values))
		}
	case PropertyTypeInt64Vec:
		if len(v.Int64Values) == 0 {
			return fmt.Errorf("%w: expected at least 1 int64 element", ErrValueType)
		}
	case PropertyTypeFloat:
		if len(v.FloatValues) != 1 {
			return fmt.Errorf("%w: expected 1 float element, got %d", ErrValueType, len(v.FloatValues))
		}
	case PropertyTypeFloatVec:
		if len(v.FloatValues) == 0 {
			return fmt.Errorf("%w: expected at least 1 float element", ErrValueType)
		}
	case PropertyTypeString, PropertyTypeBytes, PropertyTypeMixed:
		// Any payload
	default:
		return fmt.Errorf("%w: unknown value type 0x%x", ErrValueType, int32(t))
	}
	return nil
}

func checkRange(ac *AreaConfig, v RawValues) error {
	if ac.MinInt32Value != 0 || ac.MaxInt32Value != 0 {
		for _, n := range v.Int32Values {
			if n < ac.MinInt32Value || n > ac.MaxInt32Value {
				return fmt.Errorf("%w: %d not in [%d, %d]", ErrValueOutOfRange, n, ac.MinInt32Value, ac.MaxInt32Value)
			}
		}
	}
	if ac.MinInt64Value != 0 || ac.MaxInt64Value != 0 {
		for _, n := range v.Int64Values {
			if n < ac.MinInt64Value || n > ac.MaxInt64Value {
				return fmt.Errorf("%w: %d not in [%d, %d]", ErrValueOutOfRange, n, ac.MinInt64Value, ac.MaxInt64Value)
			}
		}
	}
	if ac.MinFloatValue != 0 || ac.MaxFloatValue != 0 {
		for _, f := range v.FloatValues {
			if f < ac.MinFloatValue || f > ac.MaxFloatValue {
				return fmt.Errorf("%w: %v not in [%v, %v]", ErrValueOutOfRange, f, ac.MinFloatValue, ac.MaxFloatValue)
			}
		}
	}
	return nil
}
