package idtheory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackageNextID(t *testing.T) {
	t.Parallel()

	first, err := NextID()
	require.NoError(t, err)
	require.False(t, first.IsZero())

	second, err := NextID()
	require.NoError(t, err)
	require.Equal(t, 1, second.Compare(first))
	require.Equal(t, first.Worker(), second.Worker())
}
