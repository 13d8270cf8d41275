// internal/compare/value.go
//
// Value is the four-state datum a record carries for one comparable field:
// absent, number, text, or list of strings. Comparators are total over all
// four states; absence flows through as wrong/"no data".
//
// JSON mapping (dataset files are loose JSON):
//   null / missing → absent
//   number         → number
//   string         → text
//   array          → list (elements stringified)

package compare

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the states of a Value.
type Kind int

const (
	KindAbsent Kind = iota
	KindNumber
	KindText
	KindList
)

// Value is an immutable field datum. The zero Value is absent.
type Value struct {
	kind Kind
	num  float64
	str  string
	list []string
}

// None returns the absent Value.
func None() Value { return Value{} }

// Num returns a numeric Value.
func Num(f float64) Value { return Value{kind: KindNumber, num: f} }

// Str returns a text Value.
func Str(s string) Value { return Value{kind: KindText, str: s} }

// List returns a list Value.
func List(items ...string) Value { return Value{kind: KindList, list: items} }

// Kind reports which state the Value is in.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the Value carries no datum.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Number returns the numeric datum; only meaningful when Kind()==KindNumber.
func (v Value) Number() float64 { return v.num }

// Text returns the text datum; only meaningful when Kind()==KindText.
func (v Value) Text() string { return v.str }

// Items returns the list datum; only meaningful when Kind()==KindList.
func (v Value) Items() []string { return v.list }

// String renders the datum the way a tile would without a formatter.
// Absent renders empty; the Tile Builder substitutes its own placeholder.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.str
	case KindList:
		return strings.Join(v.list, ", ")
	default:
		return ""
	}
}

// text is the stringification used by the text-family comparators:
// a number compares by its printed form, a list by its comma join.
func (v Value) text() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.str
	case KindList:
		return strings.Join(v.list, ",")
	default:
		return ""
	}
}

// FromAny maps a loosely decoded JSON value into a Value.
// Unrecognized shapes (objects, booleans) collapse to absent.
func FromAny(raw any) Value {
	switch x := raw.(type) {
	case nil:
		return None()
	case float64:
		return Num(x)
	case int:
		return Num(float64(x))
	case string:
		return Str(x)
	case []string:
		return List(x...)
	case []any:
		items := make([]string, 0, len(x))
		for _, e := range x {
			switch s := e.(type) {
			case string:
				items = append(items, s)
			case float64:
				items = append(items, strconv.FormatFloat(s, 'f', -1, 64))
			default:
				items = append(items, fmt.Sprint(e))
			}
		}
		return List(items...)
	default:
		return None()
	}
}

// UnmarshalJSON decodes per the mapping documented above.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = FromAny(raw)
	return nil
}

// MarshalJSON is the inverse mapping; absent encodes as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindText:
		return json.Marshal(v.str)
	case KindList:
		return json.Marshal(v.list)
	default:
		return []byte("null"), nil
	}
}
