// internal/schema/overrides.go
//
// Optional YAML overrides for the field schema. Lets an operator retune
// labels and numeric closeness thresholds (and the attempt limit) without
// rebuilding. Only Delta-shaped tuning can be overridden from a file;
// predicate rules stay in code.

package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/imgdle/go-server/internal/compare"
)

// Overrides is the schema override file shape.
type Overrides struct {
	MaxTries int                      `yaml:"maxTries"`
	Fields   map[string]FieldOverride `yaml:"fields"`
}

// FieldOverride retunes one field, matched by key.
type FieldOverride struct {
	Label string   `yaml:"label"`
	Close *float64 `yaml:"close"`
}

// LoadOverrides reads an override file. An empty path yields nil overrides.
func LoadOverrides(path string) (*Overrides, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema overrides %s: %w", path, err)
	}
	var o Overrides
	if err := yaml.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("parse schema overrides %s: %w", path, err)
	}
	return &o, nil
}

// Apply returns a copy of fields with o applied. A Close override only
// lands on fields whose tuning is already numeric (or absent); group and
// overlap predicates are never replaced by a number from a file.
func Apply(fields []Field, o *Overrides) []Field {
	if o == nil {
		return fields
	}
	out := make([]Field, len(fields))
	copy(out, fields)
	for i := range out {
		fo, ok := o.Fields[out[i].Key]
		if !ok {
			continue
		}
		if fo.Label != "" {
			out[i].Label = fo.Label
		}
		if fo.Close != nil {
			switch out[i].Close.(type) {
			case compare.Delta, nil:
				out[i].Close = compare.Delta(*fo.Close)
			}
		}
	}
	return out
}

// MaxTriesOrDefault resolves the attempt limit from the overrides.
func (o *Overrides) MaxTriesOrDefault() int {
	if o == nil || o.MaxTries <= 0 {
		return DefaultMaxTries
	}
	return o.MaxTries
}
