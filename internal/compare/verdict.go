// internal/compare/verdict.go
//
// Result types shared by all comparators.
// Defines:
//   - Status: three-state outcome of one field comparison (match/close/wrong).
//   - Verdict: a Status plus a short human-readable sub-reason.

package compare

// Status is the outcome of comparing one field between a guess and the target.
// Possible values:
//   - "match": the values are equal under the field's semantics.
//   - "close": not equal, but within the field's declared tolerance.
//   - "wrong": neither equal nor close (includes missing data).
type Status string

const (
	StatusMatch Status = "match"
	StatusClose Status = "close"
	StatusWrong Status = "wrong"
)

// Verdict is the full result of one field comparison.
// Sub carries a short reason shown under the tile ("higher", "no data", ...).
type Verdict struct {
	Status Status `json:"status"`
	Sub    string `json:"sub"`
}

// Sub-reason strings. Missing data always reads "no data" and can never
// accompany a match or close status.
const (
	SubNoData      = "no data"
	SubEqual       = "equal"
	SubNear        = "near"
	SubLower       = "lower"
	SubHigher      = "higher"
	SubMorePopular = "more popular"
	SubLessPopular = "less popular"
	SubDifferent   = "different"
	SubUnknownType = "unknown type"
)
