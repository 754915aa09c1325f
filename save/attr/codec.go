package attr

import (
	"fmt"

	"github.com/ShadwDrgn/d2skit/internal/bitio"
	"github.com/ShadwDrgn/d2skit/pkg/types"
)

// Record is one decoded (id, value) pair and the position of its value field.
type Record struct {
	ID     ID
	Offset int    // bit offset of the value field within the stream
	Width  int    // bit width of the value field
	Raw    uint32 // stored value, bit order already restored
}

// Value returns the displayed value of the record.
func (r Record) Value() uint32 { return DisplayValue(r.ID, r.Raw) }

// Map holds the current value of every known attribute, indexed by ID.
// Attributes absent from a stream are zero.
type Map [Count]uint32

// Value returns the value of id, or 0 for ids outside the table.
func (m Map) Value(id ID) uint32 {
	if !id.Valid() {
		return 0
	}
	return m[id]
}

// Get returns the value for a named attribute.
func (m Map) Get(name string) (uint32, error) {
	id, ok := Lookup(name)
	if !ok {
		return 0, fmt.Errorf("attr: %q: %w", name, types.ErrAttributeNotFound)
	}
	return m[id], nil
}

// Named returns a copy of the map keyed by attribute name.
func (m Map) Named() map[string]uint32 {
	out := make(map[string]uint32, Count)
	for i, v := range m {
		out[names[i]] = v
	}
	return out
}

// scan walks the record stream and calls fn for every record. It stops when
// fn returns false (stopped == true) or at the sentinel, in which case end is
// the bit offset just past the sentinel.
func scan(natural []byte, fn func(Record) bool) (end int, stopped bool, err error) {
	v := bitio.NewView(natural)
	for {
		raw, err := v.Read(IDBits)
		if err != nil {
			return 0, false, fmt.Errorf("attr: record id at bit %d: %w", v.Pos(), err)
		}
		id := ID(bitio.ReverseBits(raw, IDBits))
		if id == Sentinel {
			return v.Pos(), false, nil
		}
		if !id.Valid() {
			return 0, false, fmt.Errorf("attr: id %d at bit %d: %w", id, v.Pos()-IDBits, types.ErrUnknownAttributeID)
		}
		rec := Record{ID: id, Offset: v.Pos(), Width: id.Width()}
		raw, err = v.Read(rec.Width)
		if err != nil {
			return 0, false, fmt.Errorf("attr: %s value at bit %d: %w", id, rec.Offset, err)
		}
		rec.Raw = bitio.ReverseBits(raw, rec.Width)
		if !fn(rec) {
			return 0, true, nil
		}
	}
}

// Decode parses the record stream into a Map. end is the length of the
// stream in whole bytes, sentinel included.
func Decode(natural []byte) (end int, m Map, err error) {
	bitsEnd, _, err := scan(natural, func(r Record) bool {
		m[r.ID] = r.Value()
		return true
	})
	if err != nil {
		return 0, Map{}, err
	}
	return (bitsEnd + 7) / 8, m, nil
}

// Records returns every record in stream order and the stream length in bytes.
func Records(natural []byte) ([]Record, int, error) {
	var recs []Record
	bitsEnd, _, err := scan(natural, func(r Record) bool {
		recs = append(recs, r)
		return true
	})
	if err != nil {
		return nil, 0, err
	}
	return recs, (bitsEnd + 7) / 8, nil
}

// Locate returns the bit offset and width of the named attribute's value field.
func Locate(natural []byte, name string) (offset, width int, err error) {
	id, ok := Lookup(name)
	if !ok {
		return 0, 0, fmt.Errorf("attr: %q: %w", name, types.ErrAttributeNotFound)
	}
	return LocateID(natural, id)
}

// LocateID is Locate keyed by id.
func LocateID(natural []byte, id ID) (offset, width int, err error) {
	var found Record
	_, stopped, err := scan(natural, func(r Record) bool {
		if r.ID == id {
			found = r
			return false
		}
		return true
	})
	if err != nil {
		return 0, 0, err
	}
	if !stopped {
		return 0, 0, fmt.Errorf("attr: %s not present in stream: %w", id, types.ErrAttributeNotFound)
	}
	return found.Offset, found.Width, nil
}

// EncodeValueAt overwrites width bits at offset with the bit-reversed value.
// No other bit of natural changes. value is the stored (already scaled) value.
func EncodeValueAt(natural []byte, offset, width int, value uint32) error {
	if width < 1 || width > bitio.MaxFieldBits {
		return fmt.Errorf("attr: width %d: %w", width, types.ErrOutOfRange)
	}
	if value > fieldMax(width) {
		return fmt.Errorf("attr: %d in %d bits: %w", value, width, types.ErrValueOutOfRange)
	}
	v := bitio.NewView(natural)
	if err := v.Seek(offset); err != nil {
		return err
	}
	return v.Write(width, bitio.ReverseBits(value, width))
}

// Encode builds a natural-order record stream holding every non-zero
// attribute of m in id order, followed by the sentinel. Unused bits of the
// final byte are zero.
func Encode(m Map) ([]byte, error) {
	total := IDBits
	for id, v := range m {
		if v != 0 {
			total += IDBits + widths[id]
		}
	}
	out := make([]byte, (total+7)/8)
	w := bitio.NewView(out)
	for i, v := range m {
		if v == 0 {
			continue
		}
		id := ID(i)
		stored, err := StoredValue(id, v)
		if err != nil {
			return nil, err
		}
		if err := w.Write(IDBits, bitio.ReverseBits(uint32(id), IDBits)); err != nil {
			return nil, err
		}
		if err := w.Write(id.Width(), bitio.ReverseBits(stored, id.Width())); err != nil {
			return nil, err
		}
	}
	if err := w.Write(IDBits, uint32(Sentinel)); err != nil {
		return nil, err
	}
	return out, nil
}

// StoredValue converts a displayed value into the integer stored for id,
// multiplying scaled attributes by 256.
func StoredValue(id ID, display uint32) (uint32, error) {
	if !id.Valid() {
		return 0, fmt.Errorf("attr: id %d: %w", id, types.ErrUnknownAttributeID)
	}
	limit := fieldMax(id.Width())
	if id.Scaled() {
		limit /= ScaleFactor
	}
	if display > limit {
		return 0, fmt.Errorf("attr: %s = %d exceeds %d: %w", id, display, limit, types.ErrValueOutOfRange)
	}
	if id.Scaled() {
		return display * ScaleFactor, nil
	}
	return display, nil
}

// DisplayValue converts a stored integer into the displayed value. Scaled
// attributes lose any fractional part.
func DisplayValue(id ID, raw uint32) uint32 {
	if id.Scaled() {
		return raw / ScaleFactor
	}
	return raw
}

func fieldMax(width int) uint32 {
	if width >= 32 {
		return ^uint32(0)
	}
	return 1<<uint(width) - 1
}
