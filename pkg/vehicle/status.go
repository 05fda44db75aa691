package vehicle

// StatusCode is the result code of a property operation.
type StatusCode int32

const (
	// StatusOK indicates the operation completed successfully.
	StatusOK StatusCode = 0

	// StatusTryAgain indicates a transient failure; retry later.
	StatusTryAgain StatusCode = 1

	// StatusInvalidArg indicates a malformed request or value.
	StatusInvalidArg StatusCode = 2

	// StatusNotAvailable indicates the property or area has no value.
	StatusNotAvailable StatusCode = 3

	// StatusAccessDenied indicates the access mode forbids the operation.
	StatusAccessDenied StatusCode = 4

	// StatusInternalError indicates an unexpected failure.
	StatusInternalError StatusCode = 5
)

// String returns the status code name.
func (s StatusCode) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusTryAgain:
		return "TRY_AGAIN"
	case StatusInvalidArg:
		return "INVALID_ARG"
	case StatusNotAvailable:
		return "NOT_AVAILABLE"
	case StatusAccessDenied:
		return "ACCESS_DENIED"
	case StatusInternalError:
		return "INTERNAL_ERROR"
	default:
		return "UNKNOWN"
	}
}

// PropertyStatus is the availability status attached to a stored value.
type PropertyStatus int32

const (
	StatusAvailable   PropertyStatus = 0
	StatusUnavailable PropertyStatus = 1
	StatusError       PropertyStatus = 2
)

// String returns the property status name.
func (s PropertyStatus) String() string {
	switch s {
	case StatusAvailable:
		return "AVAILABLE"
	case StatusUnavailable:
		return "UNAVAILABLE"
	case StatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
