package idtheory

import "errors"

// Generation errors. Both are recoverable: the generator state is left
// untouched and the call can be retried once the wall clock advances.
var (
	// ErrClockRunningBackwards reports a clock reading behind the last
	// successful generation.
	ErrClockRunningBackwards = errors.New("idtheory: clock is running backwards")

	// ErrSequenceExhausted reports that 65536 IDs were already drawn
	// within the current millisecond.
	ErrSequenceExhausted = errors.New("idtheory: sequence exhausted for this millisecond")
)

// Construction errors.
var (
	// ErrShortWorkerID reports an identifier slice shorter than
	// WorkerIDSize bytes.
	ErrShortWorkerID = errors.New("idtheory: worker identifier is too short")

	// ErrUnknownEndianness reports an Endianness value this package does
	// not define.
	ErrUnknownEndianness = errors.New("idtheory: unknown endianness")
)
