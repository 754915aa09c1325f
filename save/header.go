package save

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"

	"github.com/ShadwDrgn/d2skit/internal/format"
	"github.com/ShadwDrgn/d2skit/pkg/types"
)

// Class is the character class stored at offset 0x28.
type Class uint8

const (
	Amazon Class = iota
	Sorceress
	Necromancer
	Paladin
	Barbarian
	Druid
	Assassin
)

var classNames = [...]string{"Amazon", "Sorceress", "Necromancer", "Paladin", "Barbarian", "Druid", "Assassin"}

// Valid reports whether c is in the class table.
func (c Class) Valid() bool { return int(c) < len(classNames) }

func (c Class) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
	return classNames[c]
}

// ParseClass resolves a class name, ignoring case.
func ParseClass(name string) (Class, error) {
	for i, n := range classNames {
		if strings.EqualFold(n, name) {
			return Class(i), nil
		}
	}
	return 0, fmt.Errorf("save: class %q: %w", name, types.ErrUnknownClass)
}

// Name returns the character name. The field is 16 zero-padded bytes
// decoded as Windows-1252.
func (d *Document) Name() string {
	field := d.data[format.NameOffset : format.NameOffset+format.NameSize]
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(field)
	if err != nil {
		return string(field)
	}
	return string(decoded)
}

// SetName writes a new character name and makes it the save identity, so
// the document will be saved as Filename. The game keeps at most 15 bytes
// and a NUL terminator, so longer names are truncated. Names that could not
// be used as a file name (path separators, ".", "..", control or reserved
// characters) fail with types.ErrInvalidName.
func (d *Document) SetName(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte(name))
	if err != nil {
		return fmt.Errorf("save: name %q is not representable: %w", name, types.ErrInvalidName)
	}
	if len(encoded) > format.NameSize-1 {
		encoded = encoded[:format.NameSize-1]
	}
	field := d.data[format.NameOffset : format.NameOffset+format.NameSize]
	clear(field)
	copy(field, encoded)
	d.identity = d.Name()
	return nil
}

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("save: empty character name: %w", types.ErrInvalidName)
	}
	if name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\:*?"<>|`) {
		return fmt.Errorf("save: name %q is not a valid file name: %w", name, types.ErrInvalidName)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("save: name %q contains control character %U: %w", name, r, types.ErrInvalidName)
		}
	}
	return nil
}

// Identity returns the name the document is saved under.
func (d *Document) Identity() string { return d.identity }

// SetIdentity sets the expected save name without touching the header. Used
// when the file name, not the header, is authoritative.
func (d *Document) SetIdentity(identity string) { d.identity = identity }

// Filename returns the file name for the current identity.
func (d *Document) Filename() string { return d.identity + format.FileExt }

// Class returns the character class.
func (d *Document) Class() (Class, error) {
	c := Class(d.data[format.ClassOffset])
	if !c.Valid() {
		return c, fmt.Errorf("save: class id %d: %w", uint8(c), types.ErrUnknownClass)
	}
	return c, nil
}

// SetClass writes the character class.
func (d *Document) SetClass(c Class) error {
	if !c.Valid() {
		return fmt.Errorf("save: class id %d: %w", uint8(c), types.ErrUnknownClass)
	}
	d.data[format.ClassOffset] = byte(c)
	return nil
}

// Level returns the level byte from the header. The attribute stream keeps
// its own Level record.
func (d *Document) Level() uint8 { return d.data[format.LevelOffset] }

// SetLevel writes the header level byte.
func (d *Document) SetLevel(level uint8) { d.data[format.LevelOffset] = level }
