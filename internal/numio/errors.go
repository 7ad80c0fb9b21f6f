package numio

import "errors"

// Common errors.
var (
	ErrUnsupportedType = errors.New("element type has no fixed-width encoding")
	ErrBadHeader       = errors.New("truncated or invalid shape header")
	ErrBadPayload      = errors.New("payload does not match the shape header")
	ErrUnsupportedRank = errors.New("rank not representable in this format")
	ErrRaggedText      = errors.New("text rows differ in length")
)
