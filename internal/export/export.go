// internal/export/export.go
//
// Pulls records from a remote API into a local dataset file. Pure I/O glue:
// fetch, decode into the dataset record shape, dedupe by id, write JSON.

package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/imgdle/go-server/internal/dataset"
)

// Config drives one export run.
type Config struct {
	APIBase string  // remote API base URL
	OutFile string  // destination dataset file
	Rate    float64 // requests per second against the remote API
	Timeout time.Duration
}

// Run fetches the remote record list and writes it to cfg.OutFile.
func Run(ctx context.Context, cfg Config) error {
	if cfg.APIBase == "" {
		return fmt.Errorf("api base url is required")
	}
	if cfg.OutFile == "" {
		cfg.OutFile = "records.json"
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.Rate), 1)
	client := &http.Client{Timeout: cfg.Timeout}

	records, err := fetchRecords(ctx, client, limiter, cfg.APIBase)
	if err != nil {
		return err
	}
	records = dedupe(records)
	if len(records) == 0 {
		return fmt.Errorf("remote export returned no usable records")
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.OutFile, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cfg.OutFile, err)
	}
	log.Info().Int("records", len(records)).Str("file", cfg.OutFile).Msg("export complete")
	return nil
}

// fetchRecords GETs the export endpoint and decodes either a bare array or
// an envelope with a "data" array.
func fetchRecords(ctx context.Context, client *http.Client, limiter *rate.Limiter, base string) ([]dataset.Record, error) {
	if err := limiter.Wait(ctx); err != nil {
		return nil, err
	}
	url := base + "/export/records?format=json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP %d", url, res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, 64<<20))
	if err != nil {
		return nil, err
	}

	var bare []dataset.Record
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}
	var envelope struct {
		Data []dataset.Record `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}
	return nil, fmt.Errorf("decode export payload: expected a record array or {\"data\":[...]}")
}

// dedupe keeps the first record per id, preserving order.
func dedupe(in []dataset.Record) []dataset.Record {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, r := range in {
		if r.ID == "" {
			continue
		}
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	return out
}
