package save

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Edits is a batch of changes applied to a document in one pass. It is
// usually read from a YAML plan:
//
//	name: Hero
//	class: Sorceress
//	level: 42
//	attributes:
//	  Strength: 80
//	  MaxMana: 350
type Edits struct {
	Name       string            `yaml:"name,omitempty"`
	Class      string            `yaml:"class,omitempty"`
	Level      *uint8            `yaml:"level,omitempty"`
	Attributes map[string]uint32 `yaml:"attributes,omitempty"`
}

// ParseEdits decodes a YAML plan. Unknown keys are rejected.
func ParseEdits(r io.Reader) (Edits, error) {
	var e Edits
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&e); err != nil && !errors.Is(err, io.EOF) {
		return Edits{}, fmt.Errorf("save: edit plan: %w", err)
	}
	return e, nil
}

// Apply runs the edits against d. Attributes are applied in name order; the
// first failure stops the batch and is returned, leaving earlier edits applied.
func (e Edits) Apply(d *Document) error {
	if e.Class != "" {
		c, err := ParseClass(e.Class)
		if err != nil {
			return err
		}
		if err := d.SetClass(c); err != nil {
			return err
		}
	}
	if e.Level != nil {
		d.SetLevel(*e.Level)
	}
	for _, name := range slices.Sorted(maps.Keys(e.Attributes)) {
		if err := d.Set(name, e.Attributes[name]); err != nil {
			return err
		}
	}
	if e.Name != "" {
		if err := d.SetName(e.Name); err != nil {
			return err
		}
	}
	return nil
}
