// internal/artwork/artwork.go
//
// Optional artwork retrieval for the daily target. Artwork failure never
// blocks gameplay: the handler degrades to a placeholder response and the
// round continues. Fetched images are cached in-process with a TTL so one
// day's target is fetched once, not per request.
//
// The reveal ladder is server-side configuration only; pixelation itself is
// rendered client-side.

package artwork

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// revealLevels is the pixel-size ladder by attempt count: the image starts
// at 18px blocks and sharpens toward 4px as attempts are spent.
var revealLevels = []int{18, 14, 10, 8, 6, 4}

// PixelSize returns the pixel block size for the given number of attempts
// already made. Attempt counts past the ladder stay at the sharpest level.
func PixelSize(attempts int) int {
	if attempts < 0 {
		attempts = 0
	}
	if attempts >= len(revealLevels) {
		attempts = len(revealLevels) - 1
	}
	return revealLevels[attempts]
}

// Image is one fetched artwork payload.
type Image struct {
	Data        []byte
	ContentType string
}

// Fetcher retrieves artwork over HTTP with a TTL cache.
type Fetcher struct {
	client *http.Client
	cache  *gocache.Cache
}

// NewFetcher constructs a Fetcher. Cached entries live for an hour.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		cache:  gocache.New(1*time.Hour, 10*time.Minute),
	}
}

// Fetch returns the artwork at url, from cache when possible. An empty url
// or any retrieval failure returns an error; callers degrade to a
// placeholder and keep the round going.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Image, error) {
	if url == "" {
		return nil, fmt.Errorf("no artwork url")
	}
	if hit, ok := f.cache.Get(url); ok {
		return hit.(*Image), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	res, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("artwork fetch: status %d", res.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(res.Body, 8<<20))
	if err != nil {
		return nil, err
	}

	img := &Image{Data: data, ContentType: res.Header.Get("Content-Type")}
	f.cache.Set(url, img, gocache.DefaultExpiration)
	return img, nil
}
