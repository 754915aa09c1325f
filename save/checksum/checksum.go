// Package checksum implements the whole-file rolling checksum stored in the
// save header.
//
// The recurrence deliberately overflows: for each byte b,
//
//	acc = acc<<1 + b + carry
//
// where carry is 1 when acc was negative before the shift. All arithmetic
// wraps in 32-bit signed space.
package checksum

import (
	"github.com/ShadwDrgn/d2skit/internal/format"
)

// Compute runs the rolling checksum over b exactly as given.
func Compute(b []byte) int32 {
	return fold(0, b)
}

// Of computes the checksum of a whole save file with its checksum field
// treated as zero. file is not modified.
func Of(file []byte) int32 {
	if len(file) < format.ChecksumOffset+format.ChecksumSize {
		return Compute(file)
	}
	// The field contributes zeros; fold the three regions without copying.
	acc := fold(0, file[:format.ChecksumOffset])
	acc = fold(acc, zeroField[:])
	return fold(acc, file[format.ChecksumOffset+format.ChecksumSize:])
}

// Stamp zeroes the checksum field, computes the checksum and writes it back.
// It returns the stored value.
func Stamp(file []byte) int32 {
	sum := Of(file)
	if len(file) >= format.ChecksumOffset+format.ChecksumSize {
		format.PutI32(file, format.ChecksumOffset, sum)
	}
	return sum
}

// Stored returns the checksum currently held in the header, or 0 when the
// buffer is too short to contain one.
func Stored(file []byte) int32 {
	if len(file) < format.ChecksumOffset+format.ChecksumSize {
		return 0
	}
	return format.ReadI32(file, format.ChecksumOffset)
}

// Valid reports whether the stored checksum matches the computed one.
func Valid(file []byte) bool {
	return len(file) >= format.ChecksumOffset+format.ChecksumSize && Stored(file) == Of(file)
}

var zeroField [format.ChecksumSize]byte

func fold(acc int32, b []byte) int32 {
	for _, c := range b {
		var carry int32
		if acc < 0 {
			carry = 1
		}
		acc = acc<<1 + int32(c) + carry
	}
	return acc
}
