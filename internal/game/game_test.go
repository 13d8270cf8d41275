package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imgdle/go-server/internal/compare"
	"github.com/imgdle/go-server/internal/dataset"
	"github.com/imgdle/go-server/internal/schema"
)

func testGame(t *testing.T) (*Game, *dataset.Data) {
	t.Helper()
	d, err := dataset.Parse([]byte(`[
	  {"id":"queen","name":"Queen","debut":1973,"popularity":3,"country":"United Kingdom","genres":["rock"],"members":4,"label":"EMI"},
	  {"id":"abba","name":"ABBA","debut":1972,"popularity":8,"country":"Sweden","genres":["pop","disco"],"members":4,"label":"Polar"},
	  {"id":"bjork","name":"Björk","debut":1993,"popularity":42,"country":"Iceland","genres":["art pop"],"members":"Solo"}
	]`))
	require.NoError(t, err)
	return New(d, schema.Fields(), 0), d
}

func TestTargetForIsDeterministic(t *testing.T) {
	g, d := testGame(t)
	a := g.TargetFor("2026-03-07")
	b := g.TargetFor("2026-03-07")
	assert.Same(t, a, b)
	assert.Contains(t, []string{d.At(0).ID, d.At(1).ID, d.At(2).ID}, a.ID)
}

func TestSessionFor(t *testing.T) {
	g, _ := testGame(t)
	target := g.Data().At(0)

	// No stored state starts fresh.
	s := g.SessionFor(nil, target)
	assert.Equal(t, target.ID, s.TargetID)
	assert.Empty(t, s.Attempts)
	assert.False(t, s.Done)

	// A session pinned to a stale target is discarded.
	stale := &Session{TargetID: "abba", Done: true, Attempts: []Attempt{{Name: "old"}}}
	s = g.SessionFor(stale, target)
	assert.Equal(t, target.ID, s.TargetID)
	assert.Empty(t, s.Attempts)
	assert.False(t, s.Done)

	// A session for today's target is kept as-is.
	current := &Session{TargetID: target.ID, Attempts: []Attempt{{Name: "ABBA"}}}
	assert.Same(t, current, g.SessionFor(current, target))
}

func TestSubmitRejections(t *testing.T) {
	g, d := testGame(t)
	target := d.At(0)
	sess := g.SessionFor(nil, target)

	_, err := g.Submit(sess, target, "")
	assert.ErrorIs(t, err, ErrEmptyGuess)

	_, err = g.Submit(sess, target, "   ")
	assert.ErrorIs(t, err, ErrEmptyGuess)

	_, err = g.Submit(sess, target, "Nobody Known")
	assert.ErrorIs(t, err, ErrUnknownName)

	// Rejections never mutate the session.
	assert.Empty(t, sess.Attempts)
	assert.False(t, sess.Done)
}

func TestSubmitWin(t *testing.T) {
	g, d := testGame(t)
	target := d.At(0) // Queen
	sess := g.SessionFor(nil, target)

	att, err := g.Submit(sess, target, "abba")
	require.NoError(t, err)
	assert.False(t, att.Correct)
	assert.False(t, sess.Done)

	att, err = g.Submit(sess, target, " queen ")
	require.NoError(t, err)
	assert.True(t, att.Correct)
	assert.True(t, sess.Done)
	assert.True(t, sess.Won())
	assert.Equal(t, "done", sess.State())

	// Done is sticky: further submissions are rejected without mutation.
	_, err = g.Submit(sess, target, "abba")
	assert.ErrorIs(t, err, ErrFinished)
	assert.Len(t, sess.Attempts, 2)
}

func TestSubmitLossAtAttemptCap(t *testing.T) {
	g, d := testGame(t)
	target := d.At(0) // Queen
	sess := g.SessionFor(nil, target)

	for i := 0; i < schema.DefaultMaxTries; i++ {
		wrong := "abba"
		if i%2 == 1 {
			wrong = "björk"
		}
		att, err := g.Submit(sess, target, wrong)
		require.NoError(t, err)
		assert.False(t, att.Correct)
	}

	assert.True(t, sess.Done)
	assert.False(t, sess.Won())
	assert.Len(t, sess.Attempts, schema.DefaultMaxTries)

	_, err := g.Submit(sess, target, "queen")
	assert.ErrorIs(t, err, ErrFinished)
}

func TestBuildTilesOrderAndContent(t *testing.T) {
	g, d := testGame(t)
	guess, target := d.At(1), d.At(0) // ABBA vs Queen

	tiles := BuildTiles(g.Fields(), guess, target)
	require.Len(t, tiles, len(g.Fields()))

	// Tile order is the schema order, never data-dependent.
	for i, f := range g.Fields() {
		assert.Equal(t, f.Key, tiles[i].Key)
		assert.Equal(t, f.Label, tiles[i].Label)
	}

	// debut 1972 vs 1973, delta 5 → close.
	assert.Equal(t, compare.StatusClose, tiles[0].Status)
	// popularity formatted through the field's formatter.
	assert.Equal(t, "#8", tiles[1].Value)
	// members 4 vs 4 → match.
	assert.Equal(t, compare.StatusMatch, tiles[4].Status)
}

func TestBuildTilesMissingValue(t *testing.T) {
	g, _ := testGame(t)
	d, err := dataset.Parse([]byte(`[
	  {"id":"x","name":"X","debut":1990},
	  {"id":"y","name":"Y","debut":1990,"label":"EMI"}
	]`))
	require.NoError(t, err)

	tiles := BuildTiles(g.Fields(), d.At(0), d.At(1))
	for _, tile := range tiles {
		if tile.Key == "label" {
			assert.Equal(t, schema.Placeholder, tile.Value)
			assert.Equal(t, compare.StatusWrong, tile.Status)
			assert.Equal(t, compare.SubNoData, tile.Sub)
		}
	}
}

func TestSessionSurvivesSerialization(t *testing.T) {
	g, d := testGame(t)
	target := d.At(0)
	sess := g.SessionFor(nil, target)
	_, err := g.Submit(sess, target, "abba")
	require.NoError(t, err)

	raw, err := json.Marshal(sess)
	require.NoError(t, err)
	var restored Session
	require.NoError(t, json.Unmarshal(raw, &restored))

	assert.Equal(t, *sess, restored)
	// Reconciling the restored state against the same target keeps it.
	assert.Equal(t, sess.Attempts, g.SessionFor(&restored, target).Attempts)
}
