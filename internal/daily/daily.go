// internal/daily/daily.go
//
// Deterministic daily puzzle selection. Every player hashes the same date
// key to the same dataset index, so everyone sees the same daily target
// without any server coordination.

package daily

import "time"

// DateKey returns YYYY-MM-DD for t in t's own location. The game day
// follows the player's calendar, so callers pass local time.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// HashKey is a 32-bit FNV-1a over the date key with wraparound multiply,
// reduced to a non-negative int by taking the absolute value of the signed
// 32-bit result. The signed-abs step is part of the selection contract and
// is why hash/fnv is not used here.
func HashKey(key string) int {
	h := uint32(2166136261)
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= 16777619
	}
	n := int(int32(h))
	if n < 0 {
		n = -n
	}
	return n
}

// Index returns the daily target index for a dataset of length n.
func Index(key string, n int) int {
	if n <= 0 {
		return 0
	}
	return HashKey(key) % n
}
