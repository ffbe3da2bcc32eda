// Package idtheory generates 128-bit flake IDs without coordination, in
// the style of Twitter's Snowflake and Boundary's flake. Each ID combines
// a millisecond timestamp, a 48-bit worker identifier, and a 16-bit
// sequence counter, so IDs drawn from one generator are strictly
// increasing and IDs drawn by workers with distinct identifiers never
// collide.
//
// See: https://blog.twitter.com/2010/announcing-snowflake
// or: https://github.com/boundary/flake
package idtheory

import (
	"encoding/binary"
	"fmt"
)

const maxCounter = 1<<16 - 1

// Flaker generates flake IDs for a single worker.
//
// A Flaker is not safe for concurrent use; wrap it in a LockedFlaker to
// share one worker identity across goroutines.
type Flaker struct {
	worker     WorkerID
	lastMillis uint64
	counter    uint16
	clock      Clock
}

type Option func(*Flaker)

// WithClock overrides the wall-clock source. A nil clock restores
// RealClock.
func WithClock(clock Clock) Option {
	return func(f *Flaker) {
		if clock == nil {
			f.clock = RealClock{}
			return
		}
		f.clock = clock
	}
}

// New creates a Flaker for the given worker identifier.
//
// order declares the byte order of the identifier as supplied: a
// BigEndian identifier is reversed on the way in, so the generator always
// holds it least significant byte first. The clock reading at
// construction seeds the last-generated time, so a fresh generator never
// issues an ID that predates it.
func New(worker WorkerID, order Endianness, opts ...Option) (*Flaker, error) {
	switch order {
	case LittleEndian:
	case BigEndian:
		worker = worker.reversed()
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEndianness, int(order))
	}

	f := &Flaker{
		worker: worker,
		clock:  RealClock{},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(f)
	}
	f.lastMillis = unixMillis(f.clock.Now())
	return f, nil
}

// NewFromBytes creates a Flaker from an identifier slice in little-endian
// order. At least WorkerIDSize bytes are required; bytes beyond the first
// six are ignored.
func NewFromBytes(b []byte, opts ...Option) (*Flaker, error) {
	if len(b) < WorkerIDSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrShortWorkerID, len(b), WorkerIDSize)
	}
	var worker WorkerID
	copy(worker[:], b[:WorkerIDSize])
	return New(worker, LittleEndian, opts...)
}

// Worker returns the identifier in its stored (little-endian) byte order.
func (f *Flaker) Worker() WorkerID {
	return f.worker
}

// NextID returns the next ID in the sequence.
//
// The clock is sampled once per call. A reading behind the last
// successful generation fails with ErrClockRunningBackwards; a 65536th
// draw within one millisecond fails with ErrSequenceExhausted. Either
// rejection leaves the generator untouched, so the same call succeeds
// once the clock advances.
func (f *Flaker) NextID() (ID, error) {
	if err := f.update(); err != nil {
		return ID{}, err
	}
	return f.pack(), nil
}

func (f *Flaker) update() error {
	now := unixMillis(f.clock.Now())
	switch {
	case now < f.lastMillis:
		return fmt.Errorf("%w: last generated at %dms, clock reads %dms",
			ErrClockRunningBackwards, f.lastMillis, now)
	case now > f.lastMillis:
		f.counter = 0
	default:
		if f.counter == maxCounter {
			return fmt.Errorf("%w: %dms", ErrSequenceExhausted, now)
		}
		f.counter++
	}
	f.lastMillis = now
	return nil
}

// pack lays the state out most significant byte first; see ID for the
// layout.
func (f *Flaker) pack() ID {
	var id ID
	binary.BigEndian.PutUint64(id[0:8], f.lastMillis)
	for i := 0; i < WorkerIDSize; i++ {
		id[8+i] = f.worker[WorkerIDSize-1-i]
	}
	binary.BigEndian.PutUint16(id[14:16], f.counter)
	return id
}
