package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imgdle/go-server/internal/game"
)

func TestMemoryStoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	got, err := st.Get(ctx, "anon1", "2026-03-07")
	require.NoError(t, err)
	assert.Nil(t, got, "absent state reads as nil")

	sess := &game.Session{
		TargetID: "queen",
		Attempts: []game.Attempt{{Name: "ABBA", ID: "abba"}},
	}
	require.NoError(t, st.Put(ctx, "anon1", "2026-03-07", sess))

	got, err = st.Get(ctx, "anon1", "2026-03-07")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *sess, *got)

	// Keys are scoped per owner and per date.
	got, err = st.Get(ctx, "anon2", "2026-03-07")
	require.NoError(t, err)
	assert.Nil(t, got)
	got, err = st.Get(ctx, "anon1", "2026-03-08")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	require.NoError(t, st.Put(ctx, "anon1", "2026-03-07", &game.Session{TargetID: "queen"}))
	require.NoError(t, st.Delete(ctx, "anon1", "2026-03-07"))

	got, err := st.Get(ctx, "anon1", "2026-03-07")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting a missing key is a no-op.
	assert.NoError(t, st.Delete(ctx, "anon1", "2026-03-07"))
}

func TestMemoryStoreCorruptStateReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore().(*memory)
	st.sessions[key("anon1", "2026-03-07")] = []byte(`{"targetId":`)

	got, err := st.Get(ctx, "anon1", "2026-03-07")
	require.NoError(t, err)
	assert.Nil(t, got, "unparsable stored state must read as absent")
}
