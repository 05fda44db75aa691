package vehicle

import (
	"fmt"
	"slices"
	"strings"
)

// RawValues is the payload of a property value. Which fields are meaningful
// depends on the property's value type; MIXED properties may use several.
type RawValues struct {
	Int32Values []int32   `json:"int32_values,omitempty" yaml:"int32Values,omitempty" cbor:"1,keyasint,omitempty"`
	FloatValues []float32 `json:"float_values,omitempty" yaml:"floatValues,omitempty" cbor:"2,keyasint,omitempty"`
	Int64Values []int64   `json:"int64_values,omitempty" yaml:"int64Values,omitempty" cbor:"3,keyasint,omitempty"`
	ByteValues  []byte    `json:"byte_values,omitempty" yaml:"byteValues,omitempty" cbor:"4,keyasint,omitempty"`
	StringValue string    `json:"string_value,omitempty" yaml:"stringValue,omitempty" cbor:"5,keyasint,omitempty"`
}

// IsEmpty returns true if no payload field is set.
func (r RawValues) IsEmpty() bool {
	return len(r.Int32Values) == 0 &&
		len(r.FloatValues) == 0 &&
		len(r.Int64Values) == 0 &&
		len(r.ByteValues) == 0 &&
		r.StringValue == ""
}

// Clone returns a deep copy of r. Empty slices become nil.
func (r RawValues) Clone() RawValues {
	return RawValues{
		Int32Values: cloneSlice(r.Int32Values),
		FloatValues: cloneSlice(r.FloatValues),
		Int64Values: cloneSlice(r.Int64Values),
		ByteValues:  cloneSlice(r.ByteValues),
		StringValue: r.StringValue,
	}
}

// Equal reports whether r and o hold the same payload.
func (r RawValues) Equal(o RawValues) bool {
	return slices.Equal(r.Int32Values, o.Int32Values) &&
		slices.Equal(r.FloatValues, o.FloatValues) &&
		slices.Equal(r.Int64Values, o.Int64Values) &&
		slices.Equal(r.ByteValues, o.ByteValues) &&
		r.StringValue == o.StringValue
}

// String formats the non-empty payload fields.
func (r RawValues) String() string {
	var parts []string
	if len(r.Int32Values) > 0 {
		parts = append(parts, fmt.Sprintf("int32=%v", r.Int32Values))
	}
	if len(r.FloatValues) > 0 {
		parts = append(parts, fmt.Sprintf("float=%v", r.FloatValues))
	}
	if len(r.Int64Values) > 0 {
		parts = append(parts, fmt.Sprintf("int64=%v", r.Int64Values))
	}
	if len(r.ByteValues) > 0 {
		parts = append(parts, fmt.Sprintf("bytes=%x", r.ByteValues))
	}
	if r.StringValue != "" {
		parts = append(parts, fmt.Sprintf("string=%q", r.StringValue))
	}
	if len(parts) == 0 {
		return "{}"
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func cloneSlice[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

// PropertyValue is one property's value at one area.
type PropertyValue struct {
	// Timestamp is the elapsed-realtime time of the update in nanoseconds.
	Timestamp int64 `json:"timestamp" cbor:"1,keyasint"`

	// AreaID is the area the value applies to (0 for global properties).
	AreaID int32 `json:"area_id" cbor:"2,keyasint"`

	// Prop is the property ID.
	Prop int32 `json:"prop" cbor:"3,keyasint"`

	// Status is the availability of the value.
	Status PropertyStatus `json:"status" cbor:"4,keyasint"`

	// Value is the payload.
	Value RawValues `json:"value" cbor:"5,keyasint"`
}

// Clone returns a deep copy of v.
func (v *PropertyValue) Clone() *PropertyValue {
	if v == nil {
		return nil
	}
	c := *v
	c.Value = v.Value.Clone()
	return &c
}

// String formats the value for diagnostics.
func (v *PropertyValue) String() string {
	return fmt.Sprintf("%s area=0x%x status=%s ts=%d value=%s",
		PropertyName(v.Prop), uint32(v.AreaID), v.Status, v.Timestamp, v.Value)
}

// Int32Value returns a value payload with a single int32.
func Int32Value(v int32) RawValues {
	return RawValues{Int32Values: []int32{v}}
}

// BoolValue returns a BOOLEAN payload (0 or 1 in Int32Values).
func BoolValue(b bool) RawValues {
	if b {
		return Int32Value(1)
	}
	return Int32Value(0)
}

// FloatValue returns a value payload with a single float32.
func FloatValue(v float32) RawValues {
	return RawValues{FloatValues: []float32{v}}
}

// Int64Value returns a value payload with a single int64.
func Int64Value(v int64) RawValues {
	return RawValues{Int64Values: []int64{v}}
}

// StringValue returns a STRING payload.
func StringValue(s string) RawValues {
	return RawValues{StringValue: s}
}
