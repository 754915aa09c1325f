// Package save reads, edits and writes character save files.
//
// A Document owns the whole file buffer and splits it into four contiguous
// regions:
//
//	[0, 765)                  header (name, class, level, checksum)
//	[765, end)                attribute section: "gf" + bit-packed records
//	[end, end+32)             skill section (opaque)
//	[end+32, len)             items, corpse and stash (opaque)
//
// Only the attribute record stream and a handful of header fields are ever
// interpreted. Every other byte is preserved exactly as loaded.
//
// Typical use:
//
//	doc, err := save.Open(path)
//	if err != nil { ... }
//	if err := doc.Set("Strength", 99); err != nil { ... }
//	err = save.Write(path, doc, &save.WriteOptions{CreateBackup: true})
//
// A Document is not safe for concurrent use.
package save
