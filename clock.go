package idtheory

import "time"

// Clock provides deterministic time for ID generation.
type Clock interface {
	Now() time.Time
}

// RealClock uses time.Now.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

var unixEpoch = time.Unix(0, 0)

// unixMillis reports t's distance from the Unix epoch in whole
// milliseconds. Readings before the epoch yield the magnitude of the
// offset rather than an error.
func unixMillis(t time.Time) uint64 {
	d := t.Sub(unixEpoch)
	if d < 0 {
		d = -d
	}
	return uint64(d / time.Millisecond)
}
