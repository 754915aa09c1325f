package attr

import (
	"strconv"
	"strings"
)

// ID identifies one of the sixteen known attribute kinds.
type ID uint16

const (
	Strength ID = iota
	Energy
	Dexterity
	Vitality
	StatPoints
	SkillPoints
	CurrentHP
	MaxHP
	CurrentMana
	MaxMana
	CurrentStamina
	MaxStamina
	Level
	Experience
	Gold
	StashedGold
)

const (
	// Count is the number of known attribute kinds.
	Count = 16

	// IDBits is the width of every record id.
	IDBits = 9

	// Sentinel is the all-ones id that terminates the record stream.
	Sentinel ID = 1<<IDBits - 1

	// ScaleFactor is the fixed-point factor applied to scaled attributes.
	ScaleFactor = 256
)

var widths = [Count]int{10, 10, 10, 10, 10, 8, 21, 21, 21, 21, 21, 21, 7, 32, 25, 25}

var names = [Count]string{
	"Strength", "Energy", "Dexterity", "Vitality", "StatPoints", "SkillPoints",
	"CurrentHP", "MaxHP", "CurrentMana", "MaxMana", "CurrentStamina", "MaxStamina",
	"Level", "Experience", "Gold", "StashedGold",
}

// Valid reports whether id indexes the attribute table. The sentinel is not valid.
func (id ID) Valid() bool { return id < Count }

// Name returns the attribute name, or "" for ids outside the table.
func (id ID) Name() string {
	if !id.Valid() {
		return ""
	}
	return names[id]
}

// Width returns the bit width of the value field, or 0 for ids outside the table.
func (id ID) Width() int {
	if !id.Valid() {
		return 0
	}
	return widths[id]
}

// Scaled reports whether the stored value is the displayed value times 256.
func (id ID) Scaled() bool { return id >= CurrentHP && id <= MaxStamina }

func (id ID) String() string {
	if id == Sentinel {
		return "Sentinel"
	}
	if n := id.Name(); n != "" {
		return n
	}
	return "ID(" + strconv.Itoa(int(id)) + ")"
}

// Lookup resolves a name to its id. Matching ignores case.
func Lookup(name string) (ID, bool) {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return ID(i), true
		}
	}
	return 0, false
}

// Names returns the attribute names in id order.
func Names() []string {
	out := make([]string, Count)
	copy(out, names[:])
	return out
}
