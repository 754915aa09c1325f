package save

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadwDrgn/d2skit/internal/format"
	"github.com/ShadwDrgn/d2skit/internal/testutil"
	"github.com/ShadwDrgn/d2skit/pkg/types"
	"github.com/ShadwDrgn/d2skit/save/attr"
	"github.com/ShadwDrgn/d2skit/save/checksum"
)

func parse(t *testing.T, s testutil.SaveSpec) (*Document, []byte) {
	t.Helper()
	raw := testutil.BuildSave(t, s)
	d, err := Parse(raw)
	require.NoError(t, err)
	return d, raw
}

func TestParseStrengthOnly(t *testing.T) {
	var m attr.Map
	m[attr.Strength] = 30
	d, raw := parse(t, testutil.SaveSpec{Attrs: m})

	v, err := d.Get("Strength")
	require.NoError(t, err)
	require.Equal(t, uint32(30), v)
	for _, name := range attr.Names() {
		if name == "Strength" {
			continue
		}
		v, err := d.Get(name)
		require.NoError(t, err)
		assert.Zero(t, v, name)
	}

	// 9 + 10 + 9 bits of records round up to 4 bytes.
	require.Equal(t, append([]byte("gf"), raw[format.AttrStreamOffset:format.AttrStreamOffset+4]...), d.AttributeSection())
	require.True(t, d.ChecksumOK())
}

func TestParseSentinelOnly(t *testing.T) {
	d, _ := parse(t, testutil.SaveSpec{})
	require.Equal(t, attr.Map{}, d.Attributes())
	require.Len(t, d.AttributeSection(), format.AttrMagicSize+2)
	require.Equal(t, []byte("if"), d.SkillSection()[:2])
}

func TestSectionsPartitionBuffer(t *testing.T) {
	items := bytes.Repeat([]byte{0xA5, 0x5A, 0x01}, 100)
	d, raw := parse(t, testutil.SaveSpec{Attrs: testutil.DefaultAttrs(), Items: items})

	joined := bytes.Join([][]byte{d.Header(), d.AttributeSection(), d.SkillSection(), d.ItemSection()}, nil)
	require.Equal(t, raw, joined)
	require.Equal(t, len(raw), d.Len())
	require.Len(t, d.Header(), format.HeaderSize)
	require.Len(t, d.SkillSection(), format.SkillSectionSize)
	require.Equal(t, items, d.ItemSection())
}

func TestParseCopiesInput(t *testing.T) {
	d, raw := parse(t, testutil.SaveSpec{Attrs: testutil.DefaultAttrs()})
	raw[format.NameOffset] = 'X'
	require.Equal(t, "Hero", d.Name())
}

func TestParseErrors(t *testing.T) {
	good := testutil.BuildSave(t, testutil.SaveSpec{Attrs: testutil.DefaultAttrs()})

	t.Run("bad magic", func(t *testing.T) {
		b := bytes.Clone(good)
		b[format.AttrMagicOffset] = 'x'
		_, err := Parse(b)
		require.ErrorIs(t, err, types.ErrBadMagic)
	})

	t.Run("short header", func(t *testing.T) {
		_, err := Parse(good[:format.HeaderSize])
		require.ErrorIs(t, err, types.ErrBadMagic)
	})

	t.Run("truncated records", func(t *testing.T) {
		_, err := Parse(good[:format.AttrStreamOffset+3])
		require.ErrorIs(t, err, types.ErrOutOfRange)
	})

	t.Run("truncated skills", func(t *testing.T) {
		d, err := Parse(good)
		require.NoError(t, err)
		cut := len(good) - len(d.ItemSection()) - 1
		_, err = Parse(good[:cut])
		require.ErrorIs(t, err, types.ErrOutOfRange)
	})

	t.Run("unknown id", func(t *testing.T) {
		b := bytes.Clone(good)
		// On disk the first id's low bits live in the low bits of the first
		// byte; id 16 sets bit 4.
		b[format.AttrStreamOffset] = 0x10
		b[format.AttrStreamOffset+1] &^= 0x01
		_, err := Parse(b)
		require.ErrorIs(t, err, types.ErrUnknownAttributeID)
	})
}

func TestSetScaledAttribute(t *testing.T) {
	var m attr.Map
	m[attr.CurrentHP] = 10 // stored as 2560
	d, _ := parse(t, testutil.SaveSpec{Attrs: m})

	recs, err := d.Records()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, uint32(2560), recs[0].Raw)

	v, err := d.Get("CurrentHP")
	require.NoError(t, err)
	require.Equal(t, uint32(10), v)

	require.NoError(t, d.Set("CurrentHP", 15))
	recs, err = d.Records()
	require.NoError(t, err)
	require.Equal(t, uint32(3840), recs[0].Raw)

	for _, x := range []uint32{0, 1, 255, 4096, 8191} {
		require.NoError(t, d.Set("CurrentHP", x))
		v, err := d.Get("currenthp")
		require.NoError(t, err)
		require.Equal(t, x, v)
	}

	reparsed, err := Parse(d.data)
	require.NoError(t, err)
	require.Equal(t, d.Attributes(), reparsed.Attributes())
}

func TestSetStrengthOnlyTouchesAttributeSection(t *testing.T) {
	d, raw := parse(t, testutil.SaveSpec{Attrs: testutil.DefaultAttrs()})
	attrStart := format.AttrMagicOffset
	attrEnd := attrStart + len(d.AttributeSection())

	require.NoError(t, d.Set("Strength", 99))
	v, err := d.Get("Strength")
	require.NoError(t, err)
	require.Equal(t, uint32(99), v)

	require.Equal(t, raw[:attrStart], d.data[:attrStart])
	require.Equal(t, raw[attrEnd:], d.data[attrEnd:])
	require.NotEqual(t, raw[attrStart:attrEnd], d.data[attrStart:attrEnd])

	// Every other attribute is unchanged.
	want := testutil.DefaultAttrs()
	want[attr.Strength] = 99
	require.Equal(t, want, d.Attributes())
}

func TestSetErrorsLeaveDocumentUnchanged(t *testing.T) {
	d, raw := parse(t, testutil.SaveSpec{Attrs: testutil.DefaultAttrs()})

	err := d.Set("Gold", 100) // no Gold record in the stream
	require.ErrorIs(t, err, types.ErrAttributeNotFound)

	err = d.Set("Charisma", 1)
	require.ErrorIs(t, err, types.ErrAttributeNotFound)

	err = d.Set("Level", 128)
	require.ErrorIs(t, err, types.ErrValueOutOfRange)

	err = d.Set("MaxHP", 1<<13)
	require.ErrorIs(t, err, types.ErrValueOutOfRange)

	require.Equal(t, raw, d.data)
	require.Equal(t, testutil.DefaultAttrs(), d.Attributes())
}

func TestFinalizeForSave(t *testing.T) {
	d, raw := parse(t, testutil.SaveSpec{Attrs: testutil.DefaultAttrs()})
	require.NoError(t, d.Set("Vitality", 60))
	require.False(t, d.ChecksumOK())

	out, err := d.FinalizeForSave()
	require.NoError(t, err)
	require.True(t, checksum.Valid(out))
	require.True(t, d.ChecksumOK())
	require.Equal(t, checksum.Of(out), d.StoredChecksum())
	require.Equal(t, d.ComputedChecksum(), d.StoredChecksum())
	require.NotEqual(t, checksum.Stored(raw), d.StoredChecksum())

	out[0] = 0
	require.Equal(t, testutil.Signature[0], d.Header()[0], "returned bytes are a copy")
}

func TestFinalizeForSaveNameMismatch(t *testing.T) {
	d, _ := parse(t, testutil.SaveSpec{Attrs: testutil.DefaultAttrs()})
	require.NoError(t, d.Set("Energy", 50))
	before := d.StoredChecksum()

	d.SetIdentity("Villain")
	_, err := d.FinalizeForSave()
	require.ErrorIs(t, err, types.ErrNameMismatch)
	require.Equal(t, before, d.StoredChecksum(), "checksum must not be stamped")

	d.SetIdentity("Hero")
	_, err = d.FinalizeForSave()
	require.NoError(t, err)
}
