package artwork

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelSize(t *testing.T) {
	cases := []struct {
		attempts int
		want     int
	}{
		{0, 18},
		{1, 14},
		{2, 10},
		{3, 8},
		{4, 6},
		{5, 4},
		{6, 4},  // past the ladder stays at the sharpest level
		{99, 4},
		{-1, 18},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PixelSize(tc.attempts), "attempts=%d", tc.attempts)
	}
}

func TestFetcherCaches(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	f := NewFetcher(5 * time.Second)
	ctx := context.Background()

	img, err := f.Fetch(ctx, srv.URL+"/art.png")
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(img.Data))
	assert.Equal(t, "image/png", img.ContentType)

	_, err = f.Fetch(ctx, srv.URL+"/art.png")
	require.NoError(t, err)
	assert.Equal(t, 1, hits, "second fetch must come from cache")
}

func TestFetcherFailures(t *testing.T) {
	f := NewFetcher(time.Second)
	ctx := context.Background()

	_, err := f.Fetch(ctx, "")
	assert.Error(t, err, "missing artwork url degrades, it never matches")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err = f.Fetch(ctx, srv.URL+"/gone.png")
	assert.Error(t, err)
}
