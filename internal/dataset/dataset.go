// internal/dataset/dataset.go
//
// Dataset management for the game engine.
//
// Responsibilities:
//   - Load the record list from an environment-provided JSON file or fall
//     back to the embedded default dataset.
//   - Validate the dataset (must be a non-empty list, or startup fails).
//   - Build the text-resolution index: normalized name/alias → record,
//     so player input matches case/accent/whitespace-insensitively.
//
// Records are loaded once per session and immutable thereafter. Index
// iteration order follows the file order, which the daily selection
// depends on.

package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/imgdle/go-server/assets"
	"github.com/imgdle/go-server/internal/compare"
)

// Data is an immutable, ordered record collection plus its name index.
type Data struct {
	records []Record
	index   map[string]*Record
}

// Load reads the dataset from path, or from the embedded default dataset
// when path is empty. The dataset must decode to a non-empty list.
func Load(path string) (*Data, error) {
	var raw []byte
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read dataset %s: %w", path, err)
		}
		raw = b
	} else {
		b, err := assets.RecordsJSON()
		if err != nil {
			return nil, fmt.Errorf("embedded dataset: %w", err)
		}
		raw = b
	}
	return Parse(raw)
}

// Parse decodes and indexes a JSON record list.
func Parse(raw []byte) (*Data, error) {
	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("dataset is empty or not a list")
	}

	d := &Data{records: records, index: make(map[string]*Record, len(records)*2)}
	for i := range d.records {
		r := &d.records[i]
		d.index[compare.Normalize(r.Name)] = r
		for _, a := range r.Aliases {
			d.index[compare.Normalize(a)] = r
		}
	}
	return d, nil
}

// Len returns the number of records, in file order.
func (d *Data) Len() int { return len(d.records) }

// At returns the record at index i of the file ordering.
func (d *Data) At(i int) *Record { return &d.records[i] }

// Resolve maps free player input to a record via the normalized name/alias
// index. Returns nil when the input matches nothing.
func (d *Data) Resolve(input string) *Record {
	return d.index[compare.Normalize(input)]
}

// Names returns every display name in file order, for autocomplete.
func (d *Data) Names() []string {
	out := make([]string, len(d.records))
	for i := range d.records {
		out[i] = d.records[i].Name
	}
	return out
}
