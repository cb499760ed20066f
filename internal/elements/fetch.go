package elements

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// DefaultURL serves the Periodic-Table-JSON dataset by Bowserinator.
const DefaultURL = "https://raw.githubusercontent.com/Bowserinator/Periodic-Table-JSON/master/PeriodicTableJSON.json"

// DefaultTimeout bounds a single fetch.
const DefaultTimeout = 15 * time.Second

// Fetcher downloads the dataset. Failures are returned to the caller, which
// logs them; they are never retried.
type Fetcher struct {
	Client *http.Client
	Logger *slog.Logger
}

// NewFetcher returns a Fetcher using a client with the given timeout.
func NewFetcher(timeout time.Duration, logger *slog.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		Client: &http.Client{Timeout: timeout},
		Logger: logger,
	}
}

// Fetch performs one GET against url and parses the body.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("elements: build request: %w", err)
	}

	start := time.Now()
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elements: GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status, URL: url}
	}

	ds, err := Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("elements: parse %s: %w", url, err)
	}

	f.Logger.Debug("dataset fetched", "url", url, "elements", ds.Len(), "elapsed", time.Since(start))
	return ds, nil
}
