// Package table holds the embedded rename table: the ordered list of UI
// scripts that move under the Crystal prefix.
package table

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultDir is the Unity UI scripts directory the table was written for.
const DefaultDir = `D:\GitProjects\CystalUnbolt\Assets\CrystalUnbolt\CrystalCrystalUnbolt/CrystalUnBoltGame\Game\Scripts\UI`

// MetaSuffix is appended to a script name to get its Unity metadata companion.
const MetaSuffix = ".meta"

//go:embed table.yaml
var defaultTable []byte

// ErrInvalidTable is returned for tables that fail validation.
var ErrInvalidTable = errors.New("invalid rename table")

// Entry is one old name -> new name pair.
type Entry struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// OldMeta returns the metadata filename paired with Old.
func (e Entry) OldMeta() string { return e.Old + MetaSuffix }

// NewMeta returns the metadata filename paired with New.
func (e Entry) NewMeta() string { return e.New + MetaSuffix }

// Table is an ordered rename table. Order decides processing and report order.
type Table []Entry

// Len returns the number of entries.
func (t Table) Len() int { return len(t) }

// Default returns the embedded table. It panics if the embedded file is
// malformed, which would be a build defect.
func Default() Table {
	t, err := Parse(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("embedded rename table: %v", err))
	}
	return t
}

// Parse reads a YAML mapping of old -> new names, keeping document order,
// and validates the result.
func Parse(data []byte) (Table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}

	// Empty document
	if len(doc.Content) == 0 {
		return Table{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping of old to new names", ErrInvalidTable, root.Line)
	}

	t := make(Table, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: names must be plain strings", ErrInvalidTable, key.Line)
		}
		t = append(t, Entry{Old: key.Value, New: val.Value})
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks that every name is non-empty, that no entry maps a name to
// itself, and that old and new names are each unique.
func (t Table) Validate() error {
	seenOld := make(map[string]bool, len(t))
	seenNew := make(map[string]bool, len(t))
	for i, e := range t {
		if e.Old == "" || e.New == "" {
			return fmt.Errorf("%w: entry %d has an empty name", ErrInvalidTable, i+1)
		}
		if e.Old == e.New {
			return fmt.Errorf("%w: entry %d renames %q to itself", ErrInvalidTable, i+1, e.Old)
		}
		if seenOld[e.Old] {
			return fmt.Errorf("%w: %q is listed more than once", ErrInvalidTable, e.Old)
		}
		if seenNew[e.New] {
			return fmt.Errorf("%w: more than one entry renames to %q", ErrInvalidTable, e.New)
		}
		seenOld[e.Old] = true
		seenNew[e.New] = true
	}
	return nil
}
