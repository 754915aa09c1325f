package save

import (
	"bytes"
	"fmt"

	"github.com/ShadwDrgn/d2skit/internal/bitio"
	"github.com/ShadwDrgn/d2skit/internal/format"
	"github.com/ShadwDrgn/d2skit/pkg/types"
	"github.com/ShadwDrgn/d2skit/save/attr"
	"github.com/ShadwDrgn/d2skit/save/checksum"
)

// Document is an in-memory character save.
type Document struct {
	data    []byte   // entire file, owned exclusively
	natural []byte   // record stream in scanner order, sentinel included
	attrs   attr.Map // kept in sync with natural

	// identity is the name the file is saved under. FinalizeForSave refuses
	// to produce bytes when the in-file name disagrees with it.
	identity string
}

// Parse decodes a save file. b is copied; the caller keeps ownership of it.
func Parse(b []byte) (*Document, error) {
	if len(b) < format.AttrStreamOffset {
		return nil, fmt.Errorf("save: %d bytes is too short to hold the attribute marker: %w", len(b), types.ErrBadMagic)
	}
	if !bytes.Equal(b[format.AttrMagicOffset:format.AttrStreamOffset], format.AttrMagic) {
		return nil, fmt.Errorf("save: got %q at 0x%X: %w",
			b[format.AttrMagicOffset:format.AttrStreamOffset], format.AttrMagicOffset, types.ErrBadMagic)
	}

	data := bytes.Clone(b)
	natural := bitio.ToNatural(data[format.AttrStreamOffset:])
	end, attrs, err := attr.Decode(natural)
	if err != nil {
		return nil, fmt.Errorf("save: attributes: %w", err)
	}
	skillEnd := format.AttrStreamOffset + end + format.SkillSectionSize
	if skillEnd > len(data) {
		return nil, fmt.Errorf("save: skill section ends at %d, file has %d bytes: %w", skillEnd, len(data), types.ErrOutOfRange)
	}

	d := &Document{
		data:    data,
		natural: natural[:end:end],
		attrs:   attrs,
	}
	d.identity = d.Name()
	return d, nil
}

// Get returns the displayed value of a named attribute. Attributes absent
// from the stream read as 0.
func (d *Document) Get(name string) (uint32, error) {
	return d.attrs.Get(name)
}

// Attributes returns a copy of the current attribute values.
func (d *Document) Attributes() attr.Map { return d.attrs }

// Records returns the decoded records in stream order.
func (d *Document) Records() ([]attr.Record, error) {
	recs, _, err := attr.Records(d.natural)
	return recs, err
}

// Set rewrites the value of a named attribute. value is the displayed value;
// scaled attributes are multiplied by 256 before storing. Only bits of the
// record's value field change. The attribute must already have a record in
// the stream, since inserting one would shift every following byte.
//
// On error the document is left unchanged.
func (d *Document) Set(name string, value uint32) error {
	id, ok := attr.Lookup(name)
	if !ok {
		return fmt.Errorf("save: set %q: %w", name, types.ErrAttributeNotFound)
	}
	stored, err := attr.StoredValue(id, value)
	if err != nil {
		return fmt.Errorf("save: set %s: %w", id, err)
	}
	off, width, err := attr.LocateID(d.natural, id)
	if err != nil {
		return fmt.Errorf("save: set %s: %w", id, err)
	}

	scratch := bytes.Clone(d.natural)
	if err := attr.EncodeValueAt(scratch, off, width, stored); err != nil {
		return fmt.Errorf("save: set %s: %w", id, err)
	}
	end, attrs, err := attr.Decode(scratch)
	if err != nil {
		return fmt.Errorf("save: set %s: re-decode: %w", id, err)
	}
	if end != len(d.natural) {
		return &types.Error{
			Kind: types.ErrKindCorrupt,
			Msg:  fmt.Sprintf("save: set %s: record stream length changed from %d to %d bytes", id, len(d.natural), end),
		}
	}

	copy(d.data[format.AttrStreamOffset:], bitio.ToDisk(scratch))
	d.natural = scratch
	d.attrs = attrs
	return nil
}

// FinalizeForSave stamps the checksum and returns a copy of the file bytes
// ready to be written. It fails with types.ErrNameMismatch, leaving the
// document untouched, when the in-file name differs from Identity.
func (d *Document) FinalizeForSave() ([]byte, error) {
	if name := d.Name(); name != d.identity {
		return nil, fmt.Errorf("save: name %q, identity %q: %w", name, d.identity, types.ErrNameMismatch)
	}
	checksum.Stamp(d.data)
	return bytes.Clone(d.data), nil
}

// StoredChecksum returns the checksum held in the header.
func (d *Document) StoredChecksum() int32 { return checksum.Stored(d.data) }

// ComputedChecksum returns the checksum the current bytes should carry.
func (d *Document) ComputedChecksum() int32 { return checksum.Of(d.data) }

// ChecksumOK reports whether the stored checksum matches the current bytes.
func (d *Document) ChecksumOK() bool { return checksum.Valid(d.data) }

// Len returns the file size in bytes.
func (d *Document) Len() int { return len(d.data) }

// ---- region views (zero-copy; do not modify) ----

func (d *Document) streamEnd() int { return format.AttrStreamOffset + len(d.natural) }

// Header returns the flat header region.
func (d *Document) Header() []byte { return d.data[:format.HeaderSize] }

// AttributeSection returns the "gf" marker and the on-disk record stream.
func (d *Document) AttributeSection() []byte {
	return d.data[format.AttrMagicOffset:d.streamEnd()]
}

// SkillSection returns the 32 bytes following the record stream.
func (d *Document) SkillSection() []byte {
	return d.data[d.streamEnd() : d.streamEnd()+format.SkillSectionSize]
}

// ItemSection returns everything after the skill section.
func (d *Document) ItemSection() []byte {
	return d.data[d.streamEnd()+format.SkillSectionSize:]
}
