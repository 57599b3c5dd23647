package array

import "github.com/pkg/errors"

// Sentinel errors for the failure classes the library reports. Call sites
// wrap these with context via errors.Wrapf; callers match with errors.Is.
var (
	// ErrShapeMismatch reports a shape that does not fit the operation:
	// element counts that disagree, descriptor arity over rank, or a shape
	// change rejected by a locked container.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrBroadcast reports operand shapes that cannot be reconciled by
	// broadcasting.
	ErrBroadcast = errors.New("broadcast mismatch")

	// ErrIndexOutOfRange reports an index outside [0, extent) for its axis.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidRange reports a malformed range descriptor: a zero step, an
	// empty resolved interval, or duplicate drop indices.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidReshapeArity reports a reshape with more than one inferred
	// axis, or an inferred axis that does not divide the element count.
	ErrInvalidReshapeArity = errors.New("invalid reshape arity")
)
