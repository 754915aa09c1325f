// Package bitio provides the bit-level primitives used by the attribute codec.
//
// Two independent bit-order inversions exist in the save format and they are
// kept as separate functions here:
//
//   - ToNatural/ToDisk reverse the 8 bits of every byte of the attribute
//     section, turning the on-disk payload into the order the scanner reads.
//   - ReverseBits reverses a single n-bit field; every record id and value is
//     stored bit-reversed inside the natural-order stream.
//
// View itself always reads the most significant bit of each byte first.
package bitio

import (
	"fmt"

	"github.com/ShadwDrgn/d2skit/pkg/types"
)

// MaxFieldBits is the widest field Read and Write accept.
const MaxFieldBits = 32

// View is a sequential bit cursor over a byte buffer. Bits are addressed
// from the high bit of b[0] downwards. Writes go directly into the buffer.
type View struct {
	buf []byte
	pos int
}

// NewView returns a cursor positioned at bit 0 of b.
func NewView(b []byte) *View {
	return &View{buf: b}
}

// Pos returns the current bit offset.
func (v *View) Pos() int { return v.pos }

// Len returns the buffer length in bits.
func (v *View) Len() int { return len(v.buf) * 8 }

// Remaining returns the number of bits left after Pos.
func (v *View) Remaining() int { return v.Len() - v.pos }

// Seek moves the cursor to an absolute bit offset.
func (v *View) Seek(pos int) error {
	if pos < 0 || pos > v.Len() {
		return fmt.Errorf("bitio: seek to %d of %d: %w", pos, v.Len(), types.ErrOutOfRange)
	}
	v.pos = pos
	return nil
}

// Read returns the next n raw bits, first bit read ending up as the most
// significant bit of the result. The cursor advances by n.
func (v *View) Read(n int) (uint32, error) {
	if err := v.check(n); err != nil {
		return 0, err
	}
	var out uint32
	for range n {
		bit := (v.buf[v.pos>>3] >> (7 - uint(v.pos&7))) & 1
		out = out<<1 | uint32(bit)
		v.pos++
	}
	return out, nil
}

// Write stores the low n bits of val at the cursor, most significant first,
// leaving every other bit of the buffer untouched. The cursor advances by n.
func (v *View) Write(n int, val uint32) error {
	if err := v.check(n); err != nil {
		return err
	}
	for i := n - 1; i >= 0; i-- {
		mask := byte(1) << (7 - uint(v.pos&7))
		if (val>>uint(i))&1 == 1 {
			v.buf[v.pos>>3] |= mask
		} else {
			v.buf[v.pos>>3] &^= mask
		}
		v.pos++
	}
	return nil
}

func (v *View) check(n int) error {
	if n < 1 || n > MaxFieldBits {
		return fmt.Errorf("bitio: field width %d not in [1,%d]: %w", n, MaxFieldBits, types.ErrOutOfRange)
	}
	if n > v.Remaining() {
		return fmt.Errorf("bitio: need %d bits at %d, have %d: %w", n, v.pos, v.Remaining(), types.ErrOutOfRange)
	}
	return nil
}
