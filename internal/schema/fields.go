// internal/schema/fields.go
//
// The default field set for the music-act dataset. Exercises every
// comparison type: debut year (number), popularity (rank), country (enum
// grouped by continent), genres (set), members (numberOrText, "Solo"
// sentinel), label (text).

package schema

import (
	"fmt"

	"github.com/imgdle/go-server/internal/compare"
)

// DefaultMaxTries is the attempt limit before the round is lost.
const DefaultMaxTries = 6

// Fields returns the default descriptor list, in tile display order.
func Fields() []Field {
	return []Field{
		{Key: "debut", Label: "Debut", Type: TypeNumber, Close: compare.Delta(5)},
		{Key: "popularity", Label: "Popularity", Type: TypeRank, Close: compare.Delta(15), Format: formatRank},
		{Key: "country", Label: "Country", Type: TypeEnum, Close: compare.GroupRule(SameContinent)},
		{Key: "genres", Label: "Genres", Type: TypeSet, Close: compare.Delta(1)},
		{Key: "members", Label: "Members", Type: TypeNumberOrText, Close: compare.Delta(2)},
		{Key: "label", Label: "Label", Type: TypeText},
	}
}

// formatRank renders a ranking as "#N"; non-numeric values fall back to the
// plain rendering or the placeholder.
func formatRank(v compare.Value) string {
	if v.Kind() == compare.KindNumber {
		return fmt.Sprintf("#%s", v.String())
	}
	if v.IsAbsent() {
		return Placeholder
	}
	return v.String()
}
