// internal/compare/closeness.go
//
// Closeness is the per-field tuning that widens "wrong" into "close".
// It is a closed tagged variant rather than an untyped parameter: a field
// declares exactly one arm (or none), and each comparator reads only the
// arm it understands.

package compare

// Closeness is the closed set of tuning shapes a field descriptor may carry.
// A nil Closeness means the field has no close tier at all.
type Closeness interface {
	closeness()
}

// Delta is a numeric tolerance: |guess-target| <= Delta reads close for the
// number and rank comparators, and shared >= Delta for the set comparator.
type Delta float64

func (Delta) closeness() {}

// GroupRule is caller-supplied domain knowledge for enum fields: it reports
// whether two raw (non-normalized) values belong to the same group, e.g.
// countries on the same continent. The engine itself knows no groupings.
type GroupRule func(guess, target string) bool

func (GroupRule) closeness() {}

// OverlapRule is the predicate form of set closeness. It receives both
// normalized element lists and the computed intersection count and returns
// whether that overlap reads close.
type OverlapRule func(guess, target []string, shared int) bool

func (OverlapRule) closeness() {}
