// Package mmfile provides platform-specific helpers for mapping save files.
package mmfile

// MaxSize bounds the files Map accepts. Character saves are at most tens of
// kilobytes; anything this large is not a save.
const MaxSize = 8 << 20
