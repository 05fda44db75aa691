package vehicle

// GetValueRequest asks for the current value of Prop.Prop at Prop.AreaID.
type GetValueRequest struct {
	RequestID int64
	Prop      PropertyValue
}

// GetValueResult is the outcome of one GetValueRequest.
// Prop is set only when Status is StatusOK.
type GetValueResult struct {
	RequestID int64
	Status    StatusCode
	Prop      *PropertyValue
}

// SetValueRequest asks to write Value.
type SetValueRequest struct {
	RequestID int64
	Value     PropertyValue
}

// SetValueResult is the outcome of one SetValueRequest.
type SetValueResult struct {
	RequestID int64
	Status    StatusCode
}

// SetValueErrorEvent reports a set failure detected asynchronously by the
// hardware after the request had already been accepted.
type SetValueErrorEvent struct {
	ErrorCode StatusCode
	PropID    int32
	AreaID    int32
}

// DumpResult is the diagnostic output of a dump request.
type DumpResult struct {
	// CallerShouldDumpState asks the caller to append its own state.
	CallerShouldDumpState bool

	// Buffer is the text produced by the dump.
	Buffer string
}
