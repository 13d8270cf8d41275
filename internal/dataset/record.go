// internal/dataset/record.go
//
// Record is one guessable entity. Dataset files are flat JSON objects:
// the reserved keys id/name/aliases/image describe the record itself and
// every other key is a comparable attribute, decoded into the four-state
// value model (absent / number / text / list).

package dataset

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/imgdle/go-server/internal/compare"
)

// Record is an entity in the dataset. Immutable once loaded.
type Record struct {
	ID      string                   // stable unique identifier
	Name    string                   // display name
	Aliases []string                 // alternate names accepted as guesses
	Image   string                   // optional artwork URL
	Attrs   map[string]compare.Value // comparable attributes keyed by field key
}

// Attr returns the attribute at key, or the absent value when the record
// carries no datum for it.
func (r *Record) Attr(key string) compare.Value {
	if v, ok := r.Attrs[key]; ok {
		return v
	}
	return compare.None()
}

// UnmarshalJSON decodes the flat object form described in the package doc.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Attrs = make(map[string]compare.Value, len(raw))
	for k, v := range raw {
		switch k {
		case "id":
			r.ID, _ = v.(string)
		case "name":
			r.Name, _ = v.(string)
		case "image":
			r.Image, _ = v.(string)
		case "aliases":
			r.Aliases = toStrings(v)
		default:
			r.Attrs[k] = compare.FromAny(v)
		}
	}
	if r.ID == "" {
		return fmt.Errorf("record %q has no id", r.Name)
	}
	return nil
}

// MarshalJSON writes the same flat object form, with attribute keys sorted
// so exported dataset files diff cleanly.
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Attrs)+4)
	out["id"] = r.ID
	out["name"] = r.Name
	if len(r.Aliases) > 0 {
		out["aliases"] = r.Aliases
	}
	if r.Image != "" {
		out["image"] = r.Image
	}
	keys := make([]string, 0, len(r.Attrs))
	for k := range r.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := r.Attrs[k]; !v.IsAbsent() {
			out[k] = v
		}
	}
	return json.Marshal(out)
}

func toStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
