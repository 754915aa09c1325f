// Package testutil builds synthetic save files for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ShadwDrgn/d2skit/internal/bitio"
	"github.com/ShadwDrgn/d2skit/internal/format"
	"github.com/ShadwDrgn/d2skit/save/attr"
	"github.com/ShadwDrgn/d2skit/save/checksum"
)

// Signature is the first four bytes of a real save header.
var Signature = []byte{0x55, 0xAA, 0x55, 0xAA}

// SaveSpec describes a synthetic save. Zero fields get defaults.
type SaveSpec struct {
	Name   string
	Class  byte
	Level  byte
	Attrs  attr.Map
	Skills []byte // 32 bytes; default "if" + 30 ascending bytes
	Items  []byte // default "JM" item list header + a few bytes
}

// DefaultAttrs is a plausible level-1 Sorceress.
func DefaultAttrs() attr.Map {
	var m attr.Map
	m[attr.Strength] = 10
	m[attr.Energy] = 35
	m[attr.Dexterity] = 25
	m[attr.Vitality] = 10
	m[attr.CurrentHP] = 40
	m[attr.MaxHP] = 40
	m[attr.CurrentMana] = 35
	m[attr.MaxMana] = 35
	m[attr.CurrentStamina] = 74
	m[attr.MaxStamina] = 74
	m[attr.Level] = 1
	return m
}

// BuildSave assembles a complete file with a valid checksum.
func BuildSave(t testing.TB, s SaveSpec) []byte {
	t.Helper()
	if s.Name == "" {
		s.Name = "Hero"
	}
	if s.Level == 0 {
		s.Level = 1
	}
	if s.Skills == nil {
		s.Skills = make([]byte, format.SkillSectionSize)
		copy(s.Skills, "if")
		for i := format.SkillHeaderSize; i < len(s.Skills); i++ {
			s.Skills[i] = byte(i)
		}
	}
	require.Len(t, s.Skills, format.SkillSectionSize)
	if s.Items == nil {
		s.Items = []byte{'J', 'M', 0x00, 0x00, 'J', 'M', 0x10, 0x00, 0x80, 0x00}
	}

	header := make([]byte, format.HeaderSize)
	copy(header, Signature)
	header[4] = 0x60 // version 1.10+
	copy(header[format.NameOffset:format.NameOffset+format.NameSize], s.Name)
	header[format.ClassOffset] = s.Class
	header[format.LevelOffset] = s.Level

	natural, err := attr.Encode(s.Attrs)
	require.NoError(t, err)

	out := append(header, format.AttrMagic...)
	out = append(out, bitio.ToDisk(natural)...)
	out = append(out, s.Skills...)
	out = append(out, s.Items...)
	checksum.Stamp(out)
	return out
}

// WriteSave writes a synthetic save named s.Name into dir and returns its path.
func WriteSave(t testing.TB, dir string, s SaveSpec) string {
	t.Helper()
	data := BuildSave(t, s)
	name := s.Name
	if name == "" {
		name = "Hero"
	}
	path := filepath.Join(dir, name+format.FileExt)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}
