package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	at := time.Date(2026, 3, 7, 23, 59, 0, 0, time.FixedZone("CET", 3600))
	assert.Equal(t, "2026-03-07", DateKey(at))

	// The key follows the instant's own calendar, not UTC.
	utc := at.UTC()
	assert.Equal(t, "2026-03-07", DateKey(utc))
}

func TestHashKeyKnownValues(t *testing.T) {
	// abs(int32(FNV-1a offset basis)) for the empty string.
	assert.Equal(t, 2128831035, HashKey(""))
	// FNV-1a("a") = 0xe40c292c, negative as int32, absolute value kept:
	// abs(3826002220 - 2^32) = 468965076.
	assert.Equal(t, 468965076, HashKey("a"))
}

func TestHashKeyDeterministic(t *testing.T) {
	for _, key := range []string{"2026-01-01", "2026-01-02", "1999-12-31"} {
		assert.Equal(t, HashKey(key), HashKey(key), "hash of %q must be stable", key)
		assert.GreaterOrEqual(t, HashKey(key), 0)
	}
}

func TestIndex(t *testing.T) {
	key := "2026-03-07"

	// Same date + same dataset length always selects the same index.
	assert.Equal(t, Index(key, 10), Index(key, 10))
	assert.Equal(t, HashKey(key)%10, Index(key, 10))

	// Changing the dataset length moves the index via the modulus.
	assert.Equal(t, HashKey(key)%7, Index(key, 7))

	// Degenerate lengths never panic.
	assert.Equal(t, 0, Index(key, 0))
	assert.Equal(t, 0, Index(key, -3))
	assert.Equal(t, 0, Index(key, 1))
}
