package dlog

import "errors"

var (
	// ErrNilInput is returned when a witness, statement or proof field is missing.
	ErrNilInput = errors.New("dlog: nil input")
	// ErrIdentityBase is returned when the base point is the identity, which generates nothing.
	ErrIdentityBase = errors.New("dlog: base point is the identity")
	// ErrInvalidPointEncoding is returned when the commitment is not a valid curve point.
	ErrInvalidPointEncoding = errors.New("dlog: invalid point encoding")
	// ErrInvalidScalarEncoding is returned when the response is not a canonical 32-byte scalar.
	ErrInvalidScalarEncoding = errors.New("dlog: invalid scalar encoding")
)
