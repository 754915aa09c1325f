package bitio

import "math/bits"

// ReverseBits reverses the low n bits of v; bits above n are dropped.
// ReverseBits(ReverseBits(v, n), n) == v for every v < 1<<n.
func ReverseBits(v uint32, n int) uint32 {
	if n <= 0 {
		return 0
	}
	if n > MaxFieldBits {
		n = MaxFieldBits
	}
	return bits.Reverse32(v) >> uint(MaxFieldBits-n)
}

// ToNatural converts an on-disk attribute payload into scanner order by
// reversing the bits of every byte. The input is not modified.
func ToNatural(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = bits.Reverse8(c)
	}
	return out
}

// ToDisk is the inverse of ToNatural. The per-byte reversal is its own
// inverse, so the two only differ in intent.
func ToDisk(b []byte) []byte {
	return ToNatural(b)
}
