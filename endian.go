package idtheory

import (
	"fmt"
	"strings"
)

// Endianness declares the byte order of a caller-supplied worker
// identifier.
type Endianness int

const (
	// LittleEndian marks an identifier whose first byte is the least
	// significant.
	LittleEndian Endianness = iota
	// BigEndian marks an identifier whose first byte is the most
	// significant.
	BigEndian
)

func (e Endianness) String() string {
	switch e {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	default:
		return fmt.Sprintf("endianness(%d)", int(e))
	}
}

// ParseEndianness reads an endianness name such as "little", "le" or
// "big-endian".
func ParseEndianness(s string) (Endianness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "little", "little-endian", "le":
		return LittleEndian, nil
	case "big", "big-endian", "be":
		return BigEndian, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEndianness, s)
	}
}
