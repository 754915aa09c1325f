package format

// Layout captures the fixed offsets of the character save file. Everything
// before the attribute section is a flat header; everything after the skill
// section is preserved verbatim.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x000   12   File signature / version (opaque)
//	 0x00C    4   Checksum (little-endian int32, zeroed while computing)
//	 0x014   16   Character name, zero-padded
//	 0x028    1   Class id (index into the class table)
//	 0x02B    1   Character level
//	 0x2FD    2   'g' 'f' attribute section magic
//	 0x2FF    -   Bit-packed attribute records, terminated by id 511
//	  end     2   Skill section header (opaque)
//	 end+2   30   Skill data (opaque)
//	 end+32   -   Items, corpse and stash data (opaque) to end of file
const (
	// HeaderSize is the length of the flat header preceding the attribute section.
	HeaderSize = 765

	ChecksumOffset = 0x0C
	ChecksumSize   = 4

	NameOffset = 0x14
	NameSize   = 16

	ClassOffset = 0x28
	LevelOffset = 0x2B

	// AttrMagicOffset is the absolute offset of the attribute section.
	AttrMagicOffset = HeaderSize
	AttrMagicSize   = 2
	// AttrStreamOffset is the absolute offset of the first record bit.
	AttrStreamOffset = AttrMagicOffset + AttrMagicSize

	SkillHeaderSize  = 2
	SkillSectionSize = 32

	// MinFileSize is the smallest buffer that can hold a header, the magic,
	// a sentinel-only record stream and a skill section.
	MinFileSize = AttrStreamOffset + 2 + SkillSectionSize

	// FileExt is the extension used for save files.
	FileExt = ".d2s"
)

// AttrMagic is the attribute section marker.
var AttrMagic = []byte{'g', 'f'}
