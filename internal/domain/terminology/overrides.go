package terminology

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Overrides is the on-disk shape of a site-specific vocabulary file.
// Entries with a token already present in the base vocabulary replace
// the base entry; new tokens are appended. Blocks are additive. With
// replace: true the base vocabulary is discarded entirely.
type Overrides struct {
	Replace bool    `yaml:"replace"`
	Entries []Entry `yaml:"entries"`
	Blocks  []Block `yaml:"blocks"`
}

// LoadOverrides reads and parses a vocabulary override file.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read terminology overrides: %w", err)
	}
	var ov Overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("parse terminology overrides %s: %w", path, err)
	}
	for i := range ov.Entries {
		if ov.Entries[i].Tag == "" {
			ov.Entries[i].Tag = TagGeneric
		}
	}
	return &ov, nil
}

// Apply merges the overrides into a base entry set and returns the
// merged entries and blocks.
func (ov *Overrides) Apply(base []Entry, baseBlocks []Block) ([]Entry, []Block) {
	if ov.Replace {
		return ov.Entries, ov.Blocks
	}
	replaced := make(map[string]Entry, len(ov.Entries))
	for _, e := range ov.Entries {
		replaced[strings.ToLower(e.Token)] = e
	}
	merged := make([]Entry, 0, len(base)+len(ov.Entries))
	seen := make(map[string]bool, len(base))
	for _, e := range base {
		key := strings.ToLower(e.Token)
		seen[key] = true
		if o, ok := replaced[key]; ok {
			merged = append(merged, o)
			continue
		}
		merged = append(merged, e)
	}
	for _, e := range ov.Entries {
		if !seen[strings.ToLower(e.Token)] {
			merged = append(merged, e)
		}
	}
	return merged, append(append([]Block(nil), baseBlocks...), ov.Blocks...)
}

// LoadTable builds the vocabulary table, merging the override file at
// path into the builtin vocabulary when path is non-empty.
func LoadTable(path string) (*Table, error) {
	entries, blocks := Builtin(), BuiltinBlocks()
	if path != "" {
		ov, err := LoadOverrides(path)
		if err != nil {
			return nil, err
		}
		entries, blocks = ov.Apply(entries, blocks)
	}
	return NewTable(entries, blocks)
}
