// Package vehicle defines the vehicle property data model.
//
// # Properties and Areas
//
// A property is a vehicle signal or control point (speed, fan speed, door
// lock) identified by a stable 32-bit ID. The ID encodes the property's
// group, area type and value type:
//
//	0x1 5 40 0500
//	  │ │ │  └── unique index
//	  │ │ └───── value type (INT32)
//	  │ └─────── area type (SEAT)
//	  └───────── group (SYSTEM)
//
// Global properties have a single value for the whole vehicle, stored under
// area 0. Area properties have one value per declared area ID (a bitmask of
// physical zones such as seats or doors).
//
// # Values
//
// A PropertyValue carries one property's payload at one area together with
// a monotonic timestamp and an availability status. The payload is a RawValues
// union; which slice is meaningful depends on the property's value type.
//
// # Status Codes
//
// StatusCode is the result code reported to upstream callers, both as the
// synchronous return of batch operations and per request inside a batch.
package vehicle
