// internal/schema/schema.go
//
// Declarative description of the comparable attributes.
//
// Defines:
//   - FieldType: closed enumeration of comparison semantics.
//   - Field: one descriptor (key, label, type, closeness tuning, formatter).
//   - Field.Compare: the dispatcher routing a field to its comparator.
//
// Descriptors are defined once at process start and never mutated. The
// declared type fully determines which comparator runs and what shape the
// tuning must have; an unknown type never silently matches.

package schema

import (
	"github.com/imgdle/go-server/internal/compare"
	"github.com/imgdle/go-server/internal/dataset"
)

// FieldType selects the comparison semantics for a field.
type FieldType string

const (
	// TypeNumber is a plain number where neither direction is better.
	TypeNumber FieldType = "number"
	// TypeRank is a ranking where a smaller number is better (1 = best).
	TypeRank FieldType = "rank"
	// TypeText is exact text with no close tier.
	TypeText FieldType = "text"
	// TypeEnum is text with caller-supplied group closeness.
	TypeEnum FieldType = "enum"
	// TypeSet is a string collection compared by membership overlap.
	TypeSet FieldType = "set"
	// TypeNumberOrText is numeric unless either side carries a sentinel string.
	TypeNumberOrText FieldType = "numberOrText"
)

// Field describes one comparable attribute.
type Field struct {
	Key    string                       // attribute key on a record
	Label  string                       // display label on the tile
	Type   FieldType                    // comparison semantics
	Close  compare.Closeness            // optional close-tier tuning
	Format func(compare.Value) string   // optional display formatter
}

// Compare extracts both records' values at the field's key and routes them
// to the comparator declared by the field's type. A type outside the closed
// enumeration yields wrong/"unknown type".
func (f Field) Compare(guess, target *dataset.Record) compare.Verdict {
	g := guess.Attr(f.Key)
	t := target.Attr(f.Key)
	switch f.Type {
	case TypeNumber:
		return compare.Number(g, t, f.Close)
	case TypeRank:
		return compare.Rank(g, t, f.Close)
	case TypeText:
		return compare.Text(g, t)
	case TypeEnum:
		return compare.Enum(g, t, f.Close)
	case TypeSet:
		return compare.Set(g, t, f.Close)
	case TypeNumberOrText:
		return compare.NumberOrText(g, t, f.Close)
	default:
		return compare.Verdict{Status: compare.StatusWrong, Sub: compare.SubUnknownType}
	}
}

// Display renders the guess's value for the tile: the formatter when the
// field declares one, otherwise the value's plain rendering, otherwise the
// placeholder for absent data.
func (f Field) Display(v compare.Value) string {
	if f.Format != nil {
		return f.Format(v)
	}
	if v.IsAbsent() {
		return Placeholder
	}
	return v.String()
}

// Placeholder is shown on a tile whose guess carries no datum.
const Placeholder = "-"
