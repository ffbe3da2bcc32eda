package idtheory

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Stats is a point-in-time snapshot of a LockedFlaker's counters.
type Stats struct {
	Generated           uint64
	ClockRegressions    uint64
	SequenceExhaustions uint64
}

// LockedFlaker serializes a Flaker behind a mutex so one worker identity
// can be shared across goroutines. Its counters are atomic, so Stats
// never takes the lock.
type LockedFlaker struct {
	mu     sync.Mutex
	flaker *Flaker

	generated           atomic.Uint64
	clockRegressions    atomic.Uint64
	sequenceExhaustions atomic.Uint64
}

// NewLocked creates a LockedFlaker; arguments match New.
func NewLocked(worker WorkerID, order Endianness, opts ...Option) (*LockedFlaker, error) {
	f, err := New(worker, order, opts...)
	if err != nil {
		return nil, err
	}
	return &LockedFlaker{flaker: f}, nil
}

// NextID draws the next ID under the lock. Semantics and errors match
// Flaker.NextID.
func (l *LockedFlaker) NextID() (ID, error) {
	l.mu.Lock()
	id, err := l.flaker.NextID()
	l.mu.Unlock()

	switch {
	case err == nil:
		l.generated.Add(1)
	case errors.Is(err, ErrClockRunningBackwards):
		l.clockRegressions.Add(1)
	case errors.Is(err, ErrSequenceExhausted):
		l.sequenceExhaustions.Add(1)
	}
	return id, err
}

// Worker returns the identifier in its stored (little-endian) byte order.
func (l *LockedFlaker) Worker() WorkerID {
	return l.flaker.Worker()
}

// Stats returns a snapshot of the counters.
func (l *LockedFlaker) Stats() Stats {
	return Stats{
		Generated:           l.generated.Load(),
		ClockRegressions:    l.clockRegressions.Load(),
		SequenceExhaustions: l.sequenceExhaustions.Load(),
	}
}
