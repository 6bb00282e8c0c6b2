package styled

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error returned by this package satisfies errors.Is
// with one of them.
var (
	// ErrIndexOutOfBounds is matched by errors about a bad index or range:
	// negative, reversed or past the length.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrInvalidArgument is matched by errors about a missing or malformed
	// value, such as an empty link ID.
	ErrInvalidArgument = errors.New("invalid argument")
)

// OutOfRange encodes an error where a value is not in its valid range.
type OutOfRange struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    int
}

// Error implements the error interface.
func (e *OutOfRange) Error() string {
	if e.ValidHigh < e.ValidLow {
		return fmt.Sprintf("out of range: %v has no valid value, but is %v",
			e.What, e.Actual)
	}
	return fmt.Sprintf("out of range: %s must be from %v to %v, but is %v",
		e.What, e.ValidLow, e.ValidHigh, e.Actual)
}

// Is reports whether target is ErrIndexOutOfBounds.
func (e *OutOfRange) Is(target error) bool { return target == ErrIndexOutOfBounds }

// InvalidArgument encodes an error where a required value is absent or
// malformed.
type InvalidArgument struct {
	What   string
	Reason string
}

// Error implements the error interface.
func (e *InvalidArgument) Error() string {
	return fmt.Sprintf("invalid argument: %s: %s", e.What, e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgument) Is(target error) bool { return target == ErrInvalidArgument }
