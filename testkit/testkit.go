// Package testkit provides deterministic clocks and ID sources for
// testing code built on idtheory.
package testkit

import (
	"encoding/binary"
	"errors"
	"sync"
	"time"

	"github.com/theory-cloud/idtheory"
)

// Env is a deterministic environment for exercising generators in tests.
type Env struct {
	Clock *ManualClock
}

func New() *Env {
	return NewWithTime(time.Unix(0, 0).UTC())
}

func NewWithTime(now time.Time) *Env {
	return &Env{Clock: NewManualClock(now)}
}

// Flaker builds a generator driven by the environment's clock.
func (e *Env) Flaker(worker idtheory.WorkerID, order idtheory.Endianness, opts ...idtheory.Option) (*idtheory.Flaker, error) {
	combined := make([]idtheory.Option, 0, len(opts)+1)
	combined = append(combined, idtheory.WithClock(e.Clock))
	combined = append(combined, opts...)
	return idtheory.New(worker, order, combined...)
}

// LockedFlaker builds a shared generator driven by the environment's
// clock.
func (e *Env) LockedFlaker(worker idtheory.WorkerID, order idtheory.Endianness, opts ...idtheory.Option) (*idtheory.LockedFlaker, error) {
	combined := make([]idtheory.Option, 0, len(opts)+1)
	combined = append(combined, idtheory.WithClock(e.Clock))
	combined = append(combined, opts...)
	return idtheory.NewLocked(worker, order, combined...)
}

// ManualClock is a deterministic, mutable clock for tests.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

var _ idtheory.Clock = (*ManualClock)(nil)

func NewManualClock(now time.Time) *ManualClock {
	return &ManualClock{now: now}
}

// AtMillis builds a clock reading the given milliseconds since the Unix
// epoch.
func AtMillis(ms int64) *ManualClock {
	return NewManualClock(time.UnixMilli(ms))
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) Set(now time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	c.now = c.now.Add(d)
	out := c.now
	c.mu.Unlock()
	return out
}

// ErrQueueDrained reports an IDQueue with no queued IDs left and no
// synthetic fallback.
var ErrQueueDrained = errors.New("testkit: id queue drained")

// IDQueue replays a fixed sequence of IDs for code that draws them
// through an interface of its own. Queued IDs are returned first; once
// drained, NextID returns synthetic IDs with increasing timestamps, or
// ErrQueueDrained when the fallback is disabled.
type IDQueue struct {
	mu      sync.Mutex
	queue   []idtheory.ID
	next    uint64
	noSynth bool
}

func NewIDQueue(ids ...idtheory.ID) *IDQueue {
	return &IDQueue{queue: ids, next: 1}
}

// WithoutFallback makes a drained queue fail instead of synthesizing.
func (q *IDQueue) WithoutFallback() *IDQueue {
	q.mu.Lock()
	q.noSynth = true
	q.mu.Unlock()
	return q
}

// Push appends IDs to the replay queue.
func (q *IDQueue) Push(ids ...idtheory.ID) {
	q.mu.Lock()
	q.queue = append(q.queue, ids...)
	q.mu.Unlock()
}

// Reset drops queued IDs and restarts the synthetic sequence.
func (q *IDQueue) Reset() {
	q.mu.Lock()
	q.queue = nil
	q.next = 1
	q.mu.Unlock()
}

func (q *IDQueue) NextID() (idtheory.ID, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.queue) > 0 {
		out := q.queue[0]
		q.queue = q.queue[1:]
		return out, nil
	}
	if q.noSynth {
		return idtheory.ID{}, ErrQueueDrained
	}

	var le [16]byte
	binary.LittleEndian.PutUint64(le[8:16], q.next)
	q.next++
	return idtheory.IDFromLittleEndianBytes(le), nil
}
