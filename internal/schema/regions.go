// internal/schema/regions.go
//
// Continent grouping used as the enum closeness rule for the country field.
// This is dataset-side domain knowledge; the comparison engine itself knows
// nothing about continents.

package schema

import "github.com/imgdle/go-server/internal/compare"

var continentOf = map[string]string{
	"united kingdom": "Europe",
	"ireland":        "Europe",
	"france":         "Europe",
	"germany":        "Europe",
	"spain":          "Europe",
	"italy":          "Europe",
	"sweden":         "Europe",
	"norway":         "Europe",
	"iceland":        "Europe",
	"united states":  "North America",
	"canada":         "North America",
	"mexico":         "North America",
	"colombia":       "South America",
	"brazil":         "South America",
	"argentina":      "South America",
	"chile":          "South America",
	"south korea":    "Asia",
	"japan":          "Asia",
	"china":          "Asia",
	"india":          "Asia",
	"nigeria":        "Africa",
	"south africa":   "Africa",
	"ghana":          "Africa",
	"australia":      "Oceania",
	"new zealand":    "Oceania",
}

// SameContinent reports whether both countries map to the same continent.
// Unknown countries never read close.
func SameContinent(guess, target string) bool {
	g, okG := continentOf[compare.Normalize(guess)]
	t, okT := continentOf[compare.Normalize(target)]
	return okG && okT && g == t
}
