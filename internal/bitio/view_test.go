package bitio

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ShadwDrgn/d2skit/pkg/types"
)

func TestViewReadMSBFirst(t *testing.T) {
	v := NewView([]byte{0b1010_0000, 0b1111_0000})

	got, err := v.Read(3)
	require.NoError(t, err)
	require.Equal(t, uint32(0b101), got)
	require.Equal(t, 3, v.Pos())

	// Crosses the byte boundary.
	got, err = v.Read(9)
	require.NoError(t, err)
	require.Equal(t, uint32(0b0_0000_1111), got)
	require.Equal(t, 12, v.Pos())
	require.Equal(t, 4, v.Remaining())
}

func TestViewReadOutOfRange(t *testing.T) {
	v := NewView([]byte{0xFF})
	_, err := v.Read(9)
	require.ErrorIs(t, err, types.ErrOutOfRange)
	require.Equal(t, 0, v.Pos(), "failed read must not move the cursor")

	_, err = v.Read(0)
	require.ErrorIs(t, err, types.ErrOutOfRange)
	_, err = NewView(make([]byte, 8)).Read(33)
	require.ErrorIs(t, err, types.ErrOutOfRange)
}

func TestViewWritePreservesNeighbours(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 0xFF}
	v := NewView(buf)
	require.NoError(t, v.Seek(5))
	require.NoError(t, v.Write(10, 0))
	require.Equal(t, 15, v.Pos())
	require.Equal(t, []byte{0b1111_1000, 0b0000_0001, 0xFF}, buf)

	require.NoError(t, v.Seek(5))
	got, err := v.Read(10)
	require.NoError(t, err)
	require.Zero(t, got)
}

func TestViewWriteThenRead(t *testing.T) {
	widths := []int{1, 7, 8, 9, 10, 21, 25, 32}
	buf := make([]byte, 32)
	w := NewView(buf)
	for _, n := range widths {
		require.NoError(t, w.Write(n, (uint32(1)<<(n-1))|1))
	}
	r := NewView(buf)
	for _, n := range widths {
		got, err := r.Read(n)
		require.NoError(t, err)
		require.Equal(t, (uint32(1)<<(n-1))|1, got, "width %d", n)
	}
	require.Equal(t, w.Pos(), r.Pos())
}

func TestViewSeekBounds(t *testing.T) {
	v := NewView([]byte{0, 0})
	require.NoError(t, v.Seek(16))
	require.ErrorIs(t, v.Seek(17), types.ErrOutOfRange)
	require.ErrorIs(t, v.Seek(-1), types.ErrOutOfRange)
	require.ErrorIs(t, v.Write(1, 1), types.ErrOutOfRange)
}
