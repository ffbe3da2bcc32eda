package idtheory

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// WorkerIDSize is the width of a worker identifier in bytes.
const WorkerIDSize = 6

// WorkerID is a 48-bit worker identifier.
type WorkerID [WorkerIDSize]byte

// String formats the identifier as 12 lowercase hex digits.
func (w WorkerID) String() string {
	return hex.EncodeToString(w[:])
}

func (w WorkerID) reversed() WorkerID {
	var out WorkerID
	for i, b := range w {
		out[WorkerIDSize-1-i] = b
	}
	return out
}

// ParseWorkerID reads 12 hex digits, with optional ":" or "-" separators
// as in MAC notation.
func ParseWorkerID(s string) (WorkerID, error) {
	var w WorkerID
	cleaned := strings.NewReplacer(":", "", "-", "").Replace(strings.TrimSpace(s))
	b, err := hex.DecodeString(cleaned)
	if err != nil {
		return w, fmt.Errorf("idtheory: parse worker id: %w", err)
	}
	if len(b) != WorkerIDSize {
		return w, fmt.Errorf("idtheory: parse worker id: got %d bytes, want %d", len(b), WorkerIDSize)
	}
	copy(w[:], b)
	return w, nil
}

// RandomWorkerID draws an identifier from cryptographic randomness.
func RandomWorkerID() (WorkerID, error) {
	var w WorkerID
	if _, err := rand.Read(w[:]); err != nil {
		return WorkerID{}, fmt.Errorf("idtheory: random worker id: %w", err)
	}
	return w, nil
}

// NodeWorkerID derives the identifier from a hardware (MAC) address of the
// host, falling back to a random value when no interface is usable. The
// result is stable for the lifetime of the process.
func NodeWorkerID() WorkerID {
	var w WorkerID
	copy(w[:], uuid.NodeID())
	return w
}
