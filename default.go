package idtheory

import (
	"fmt"
	"sync"
)

var (
	defaultOnce   sync.Once
	defaultFlaker *LockedFlaker
	defaultErr    error
)

// NextID draws an ID from a process-wide LockedFlaker holding a random
// worker identity, initialized on first use. Callers that need a stable
// or configured identity should construct their own generator.
func NextID() (ID, error) {
	defaultOnce.Do(func() {
		worker, err := RandomWorkerID()
		if err != nil {
			defaultErr = fmt.Errorf("idtheory: default generator: %w", err)
			return
		}
		defaultFlaker, defaultErr = NewLocked(worker, LittleEndian)
	})
	if defaultErr != nil {
		return ID{}, defaultErr
	}
	return defaultFlaker.NextID()
}
