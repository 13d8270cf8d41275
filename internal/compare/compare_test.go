package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	cases := []struct {
		name   string
		guess  Value
		target Value
		close  Closeness
		want   Verdict
	}{
		{"equal", Num(40), Num(40), Delta(8), Verdict{StatusMatch, SubEqual}},
		{"within delta below", Num(35), Num(40), Delta(8), Verdict{StatusClose, SubNear}},
		{"within delta above", Num(48), Num(40), Delta(8), Verdict{StatusClose, SubNear}},
		{"delta boundary is inclusive", Num(32), Num(40), Delta(8), Verdict{StatusClose, SubNear}},
		// Boundary arithmetic: delta strictly greater than tuning reads wrong.
		{"just past delta", Num(30), Num(40), Delta(8), Verdict{StatusWrong, SubLower}},
		{"above without close tier", Num(49), Num(40), Delta(8), Verdict{StatusWrong, SubHigher}},
		{"no tuning means no close tier", Num(41), Num(40), nil, Verdict{StatusWrong, SubHigher}},
		{"guess missing", None(), Num(40), Delta(8), Verdict{StatusWrong, SubNoData}},
		{"target missing", Num(40), None(), Delta(8), Verdict{StatusWrong, SubNoData}},
		{"text is not a number", Str("40"), Num(40), Delta(8), Verdict{StatusWrong, SubNoData}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Number(tc.guess, tc.target, tc.close))
		})
	}
}

func TestRank(t *testing.T) {
	cases := []struct {
		name   string
		guess  Value
		target Value
		close  Closeness
		want   Verdict
	}{
		{"equal", Num(3), Num(3), Delta(15), Verdict{StatusMatch, SubEqual}},
		{"near", Num(10), Num(3), Delta(15), Verdict{StatusClose, SubNear}},
		{"smaller rank is more popular", Num(3), Num(50), Delta(15), Verdict{StatusWrong, SubMorePopular}},
		{"larger rank is less popular", Num(80), Num(3), Delta(15), Verdict{StatusWrong, SubLessPopular}},
		{"missing", None(), Num(3), Delta(15), Verdict{StatusWrong, SubNoData}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Rank(tc.guess, tc.target, tc.close))
		})
	}
}

func TestText(t *testing.T) {
	cases := []struct {
		name   string
		guess  Value
		target Value
		want   Verdict
	}{
		{"equal", Str("Sweden"), Str("Sweden"), Verdict{StatusMatch, SubEqual}},
		{"case and accents ignored", Str("björk"), Str("BJORK"), Verdict{StatusMatch, SubEqual}},
		{"different", Str("Sweden"), Str("Norway"), Verdict{StatusWrong, SubDifferent}},
		{"guess missing", None(), Str("Sweden"), Verdict{StatusWrong, SubNoData}},
		{"empty after normalization", Str("   "), Str("Sweden"), Verdict{StatusWrong, SubNoData}},
		{"number compares by printed form", Num(4), Str("4"), Verdict{StatusMatch, SubEqual}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Text(tc.guess, tc.target))
		})
	}
}

func TestTextSymmetricUnderNormalization(t *testing.T) {
	// Normalizing either input before comparing never changes the verdict.
	pairs := [][2]string{
		{"Björk", "bjork"},
		{"  Sigur   Rós", "sigur ros"},
		{"Sweden", "Norway"},
	}
	for _, p := range pairs {
		plain := Text(Str(p[0]), Str(p[1]))
		preNorm := Text(Str(Normalize(p[0])), Str(p[1]))
		assert.Equal(t, plain, preNorm, "verdict changed for %q vs %q", p[0], p[1])
	}
}

func TestEnum(t *testing.T) {
	sameGroup := GroupRule(func(g, tgt string) bool {
		europe := map[string]bool{"Sweden": true, "Norway": true}
		return europe[g] && europe[tgt]
	})

	cases := []struct {
		name   string
		guess  Value
		target Value
		close  Closeness
		want   Verdict
	}{
		{"exact match wins before grouping", Str("Sweden"), Str("sweden"), sameGroup, Verdict{StatusMatch, SubEqual}},
		{"same group reads close", Str("Sweden"), Str("Norway"), sameGroup, Verdict{StatusClose, SubNear}},
		{"different group", Str("Sweden"), Str("Japan"), sameGroup, Verdict{StatusWrong, SubDifferent}},
		{"no rule means no close tier", Str("Sweden"), Str("Norway"), nil, Verdict{StatusWrong, SubDifferent}},
		{"missing value never reaches the rule", None(), Str("Norway"), sameGroup, Verdict{StatusWrong, SubDifferent}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Enum(tc.guess, tc.target, tc.close))
		})
	}
}

func TestSet(t *testing.T) {
	cases := []struct {
		name   string
		guess  Value
		target Value
		close  Closeness
		want   Verdict
	}{
		{"full overlap", List("rock", "pop"), List("Pop", "Rock"), Delta(1), Verdict{StatusMatch, SubEqual}},
		{"partial overlap at threshold", List("a", "b"), List("b", "c", "d"), Delta(1), Verdict{StatusClose, "shares 1"}},
		{"partial overlap under threshold", List("a", "b"), List("b", "c", "d"), Delta(2), Verdict{StatusWrong, "shares 1"}},
		{"no tuning", List("a"), List("b"), nil, Verdict{StatusWrong, "shares 0"}},
		{"comma string coerces to list", Str("rock, pop"), List("pop", "rock"), Delta(1), Verdict{StatusMatch, SubEqual}},
		{"blank segments dropped", Str("rock,, "), List("rock"), nil, Verdict{StatusMatch, SubEqual}},
		{"empty guess list", List(), List("rock"), Delta(1), Verdict{StatusWrong, SubNoData}},
		{"number has no list form", Num(3), List("rock"), Delta(1), Verdict{StatusWrong, SubNoData}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Set(tc.guess, tc.target, tc.close))
		})
	}
}

func TestSetOverlapRule(t *testing.T) {
	majority := OverlapRule(func(g, tgt []string, shared int) bool {
		return shared*2 >= len(tgt)
	})
	v := Set(List("a", "b"), List("a", "b", "c", "d"), majority)
	assert.Equal(t, Verdict{StatusClose, "shares 2"}, v)

	v = Set(List("a"), List("a", "b", "c", "d"), majority)
	assert.Equal(t, Verdict{StatusWrong, "shares 1"}, v)
}

func TestSetDuplicateGuessInflatesCount(t *testing.T) {
	// Guess-side duplicates each count against target membership. A
	// duplicated guess can therefore reach match against a shorter target.
	v := Set(List("rock", "rock"), List("rock"), nil)
	assert.Equal(t, Verdict{StatusMatch, SubEqual}, v)

	v = Set(List("rock", "rock", "jazz"), List("rock", "pop"), Delta(2))
	assert.Equal(t, Verdict{StatusClose, "shares 2"}, v)
}

func TestNumberOrText(t *testing.T) {
	cases := []struct {
		name   string
		guess  Value
		target Value
		close  Closeness
		want   Verdict
	}{
		{"both numbers delegate to number", Num(2), Num(4), Delta(2), Verdict{StatusClose, SubNear}},
		{"sentinel text compares as text", Str("Solo"), Str("solo"), Delta(2), Verdict{StatusMatch, SubEqual}},
		{"mixed kinds compare as text", Num(4), Str("Solo"), Delta(2), Verdict{StatusWrong, SubDifferent}},
		{"both missing", None(), None(), Delta(2), Verdict{StatusWrong, SubNoData}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NumberOrText(tc.guess, tc.target, tc.close))
		})
	}
}
