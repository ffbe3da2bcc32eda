package idtheory

import (
	"encoding/hex"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type idVector struct {
	Name          string `yaml:"name"`
	Worker        string `yaml:"worker"`
	Endianness    string `yaml:"endianness"`
	ConstructAtMS int64  `yaml:"construct_at_ms"`
	ClockAtMS     int64  `yaml:"clock_at_ms"`
	Draws         int    `yaml:"draws"`
	Want          struct {
		Millis  uint64 `yaml:"millis"`
		Counter uint16 `yaml:"counter"`
		Worker  string `yaml:"worker"`
		LE      string `yaml:"le"`
		BE      string `yaml:"be"`
	} `yaml:"want"`
}

// The byte layout is pinned by versioned fixtures so that an encoding
// change can never slip through unnoticed.
func TestID_LayoutVectors(t *testing.T) {
	t.Parallel()

	raw, err := os.ReadFile("testdata/vectors.yaml")
	require.NoError(t, err)

	var file struct {
		Vectors []idVector `yaml:"vectors"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &file))
	require.NotEmpty(t, file.Vectors)

	for _, vec := range file.Vectors {
		t.Run(vec.Name, func(t *testing.T) {
			t.Parallel()

			worker, err := ParseWorkerID(vec.Worker)
			require.NoError(t, err)
			order, err := ParseEndianness(vec.Endianness)
			require.NoError(t, err)

			clock := clockAtMillis(vec.ConstructAtMS)
			f, err := New(worker, order, WithClock(clock))
			require.NoError(t, err)
			clock.set(time.UnixMilli(vec.ClockAtMS))

			var id ID
			for i := 0; i < vec.Draws; i++ {
				id, err = f.NextID()
				require.NoError(t, err)
			}

			require.Equal(t, vec.Want.Millis, id.Millis())
			require.Equal(t, vec.Want.Counter, id.Counter())
			require.Equal(t, vec.Want.Worker, id.Worker().String())

			le := id.LittleEndianBytes()
			require.Equal(t, vec.Want.LE, hex.EncodeToString(le[:]))
			require.Equal(t, vec.Want.BE, hex.EncodeToString(id.Bytes()))

			require.Equal(t, id, IDFromLittleEndianBytes(le))

			parsed, err := ParseID(id.String())
			require.NoError(t, err)
			require.Equal(t, id, parsed)
		})
	}
}
