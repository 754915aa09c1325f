package checksum

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ShadwDrgn/d2skit/internal/format"
)

// reference evaluates the recurrence in 64-bit space and truncates each step.
func reference(b []byte) int32 {
	var acc int64
	for _, c := range b {
		carry := int64(0)
		if int32(acc) < 0 {
			carry = 1
		}
		acc = int64(int32(uint32(acc<<1) + uint32(c) + uint32(carry)))
	}
	return int32(acc)
}

func TestComputeSmall(t *testing.T) {
	require.Zero(t, Compute(nil))
	require.Equal(t, int32(1), Compute([]byte{1}))
	// ((1<<1)+2)<<1 + 3 = 11
	require.Equal(t, int32(11), Compute([]byte{1, 2, 3}))
}

func TestComputeCarry(t *testing.T) {
	// 0x80 shifted 24 times reaches the sign bit; the next step adds the carry.
	b := make([]byte, 26)
	b[0] = 0x80
	require.Equal(t, int32(-0x80000000), Compute(b[:25]))
	require.Equal(t, int32(1), Compute(b))
}

func TestComputeMatchesReference(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	b := make([]byte, 4096)
	for i := range b {
		b[i] = byte(r.Uint32())
	}
	require.Equal(t, reference(b), Compute(b))
	require.Equal(t, Compute(b), Compute(b))
}

func TestComputeSensitivity(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))
	b := make([]byte, 1024)
	for i := range b {
		b[i] = byte(r.Uint32())
	}
	base := Compute(b)
	for _, i := range []int{0, 1, 500, 1022, 1023} {
		mut := append([]byte(nil), b...)
		mut[i] ^= 0x01
		require.NotEqual(t, base, Compute(mut), "flip at %d", i)
	}
}

func TestOfIgnoresStoredField(t *testing.T) {
	file := make([]byte, 64)
	for i := range file {
		file[i] = byte(i * 7)
	}
	scratch := append([]byte(nil), file...)
	clear(scratch[format.ChecksumOffset : format.ChecksumOffset+format.ChecksumSize])
	want := Compute(scratch)

	require.Equal(t, want, Of(file))
	require.Equal(t, byte(12*7), file[format.ChecksumOffset], "Of must not modify input")

	format.PutI32(file, format.ChecksumOffset, 0x12345678)
	require.Equal(t, want, Of(file))
}

func TestStampAndValid(t *testing.T) {
	file := make([]byte, 800)
	for i := range file {
		file[i] = byte(i)
	}
	require.False(t, Valid(file))

	sum := Stamp(file)
	require.Equal(t, sum, Stored(file))
	require.True(t, Valid(file))
	require.Equal(t, sum, Stamp(file), "stamping twice is stable")

	file[700]++
	require.False(t, Valid(file))
	require.Zero(t, Stored(file[:8]))
	require.False(t, Valid(file[:8]))
}
