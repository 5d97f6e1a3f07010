package imagecache

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/randomusers/internal/logging"
)

// Loader fetches image bytes by URL. The core treats implementations as
// opaque collaborators.
type Loader interface {
	Load(ctx context.Context, url string) ([]byte, error)
}

// HTTPLoader loads image bytes over HTTP through an injected Cache.
type HTTPLoader struct {
	cache      *Cache
	httpClient *http.Client
	log        logging.Logger
}

// NewHTTPLoader returns an HTTPLoader backed by cache.
func NewHTTPLoader(cache *Cache, timeout time.Duration, log logging.Logger) *HTTPLoader {
	return &HTTPLoader{
		cache:      cache,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Load returns the bytes for url, from cache when possible. Failures are
// returned as-is; callers decide whether a missing image matters.
func (l *HTTPLoader) Load(ctx context.Context, url string) ([]byte, error) {
	if data, ok := l.cache.Get(url); ok {
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building image request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching image: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading image body: %w", err)
	}

	l.cache.Set(url, data)
	l.log.Debug(ctx, "image cached", "url", url, "bytes", len(data))
	return data, nil
}
