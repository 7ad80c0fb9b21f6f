package array

import "errors"

// Common errors. Fallible operations return them wrapped with context;
// element access and expression constructors panic with the same
// wrapped values, so recovered panics can be classified with errors.Is.
var (
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAllocation      = errors.New("allocation size overflow")
)
