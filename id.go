package idtheory

import (
	"bytes"
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a 128-bit flake identifier in canonical big-endian byte order:
// bytes 0-7 hold the millisecond timestamp, bytes 8-13 the worker
// identifier most significant byte first, and bytes 14-15 the sequence
// counter. Raw bytes and String values therefore sort in generation
// order.
//
// LittleEndianBytes exposes the same value least significant byte first
// for callers that serialize it as a little-endian 128-bit integer.
type ID [16]byte

// IDFromLittleEndianBytes reads the layout produced by LittleEndianBytes.
func IDFromLittleEndianBytes(b [16]byte) ID {
	var id ID
	for i, v := range b {
		id[15-i] = v
	}
	return id
}

// LittleEndianBytes returns the value least significant byte first: bytes
// 0-1 counter, bytes 2-7 worker identifier in stored order, bytes 8-15
// timestamp.
func (id ID) LittleEndianBytes() [16]byte {
	var out [16]byte
	for i, v := range id {
		out[15-i] = v
	}
	return out
}

// Compare returns -1, 0 or 1, ordering IDs as unsigned 128-bit integers.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool {
	return id == ID{}
}

// Millis returns the embedded timestamp in milliseconds since the Unix
// epoch.
func (id ID) Millis() uint64 {
	return binary.BigEndian.Uint64(id[0:8])
}

// Time returns the embedded timestamp in UTC, truncated to milliseconds.
func (id ID) Time() time.Time {
	return time.UnixMilli(int64(id.Millis())).UTC()
}

// Worker returns the embedded identifier in its stored (little-endian)
// byte order, matching Flaker.Worker.
func (id ID) Worker() WorkerID {
	var w WorkerID
	for i := 0; i < WorkerIDSize; i++ {
		w[i] = id[13-i]
	}
	return w
}

// Counter returns the embedded sequence counter.
func (id ID) Counter() uint16 {
	return binary.BigEndian.Uint16(id[14:16])
}

// Hi returns the most significant 64 bits, which by layout equal Millis.
func (id ID) Hi() uint64 {
	return binary.BigEndian.Uint64(id[0:8])
}

// Lo returns the least significant 64 bits.
func (id ID) Lo() uint64 {
	return binary.BigEndian.Uint64(id[8:16])
}

// Bytes returns the canonical big-endian form.
func (id ID) Bytes() []byte {
	return id[:]
}

// String renders the ID as 26 Crockford base32 characters, the same
// alphabet ULID uses, preserving sort order.
func (id ID) String() string {
	return ulid.ULID(id).String()
}

// ParseID reads the 26-character form produced by String.
func ParseID(s string) (ID, error) {
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return ID{}, fmt.Errorf("idtheory: parse id: %w", err)
	}
	return ID(u), nil
}

// MustParseID is ParseID that panics on malformed input.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// MarshalText implements encoding.TextMarshaler using String.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := ParseID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary returns the canonical big-endian form.
func (id ID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ID) UnmarshalBinary(b []byte) error {
	if len(b) != len(id) {
		return fmt.Errorf("idtheory: unmarshal id: got %d bytes, want %d", len(b), len(id))
	}
	copy(id[:], b)
	return nil
}

// Value implements driver.Valuer with the canonical binary form.
func (id ID) Value() (driver.Value, error) {
	return id.MarshalBinary()
}

// Scan implements sql.Scanner, accepting the canonical 16-byte binary
// form or the 26-character text form.
func (id *ID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = ID{}
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == len(id) {
			return id.UnmarshalBinary(v)
		}
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("idtheory: scan id: unsupported type %T", src)
	}
}
