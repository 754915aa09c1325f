// Package attr decodes and re-encodes the bit-packed attribute record stream
// of a character save.
//
// The stream is a sequence of records, each a 9-bit id followed by a value
// whose width is fixed by the id, terminated by the all-ones id 511. Both the
// id and the value are stored bit-reversed. Functions in this package operate
// on the natural-order stream, i.e. after bitio.ToNatural has been applied to
// the on-disk bytes that follow the "gf" marker.
//
// Record boundaries never move: widths are fixed per id and the codec only
// rewrites values, never ids.
package attr
