package ecc

import (
	"errors"
	"fmt"
)

// Failure kinds reported by the arithmetic core and the protocols built on it.
// Operations wrap these with operand details; match them with errors.Is.
var (
	ErrInvalidCurve     = errors.New("ecc: singular curve, discriminant is zero")
	ErrNoInverse        = errors.New("ecc: no modular inverse")
	ErrNoSquareRoot     = errors.New("ecc: no modular square root")
	ErrOrderNotFound    = errors.New("ecc: no valid order")
	ErrInvalidScalar    = errors.New("ecc: invalid scalar")
	ErrPointNotOnCurve  = errors.New("ecc: point not on curve")
	ErrInvalidSignature = errors.New("ecc: invalid signature")
	ErrDecrypt          = errors.New("ecc: decryption failed")
	ErrInvalidEncoding  = errors.New("ecc: invalid point encoding")
)

// OpError records which curve operation failed and why.
// It allows callers to tell a failed doubling apart from a failed decryption
// while still matching the underlying kind with errors.Is.
type OpError struct {
	Op     string
	Reason string
	Err    error
}

func (e *OpError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// NewOpError creates a new OpError.
func NewOpError(op, reason string, err error) *OpError {
	return &OpError{
		Op:     op,
		Reason: reason,
		Err:    err,
	}
}
