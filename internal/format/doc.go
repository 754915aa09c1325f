// Package format holds the fixed byte layout of character save files and the
// little-endian helpers used to read and patch scalar header fields.
package format
