// Package remote fetches user pages from the randomuser-style HTTP API.
// It is a pure translation boundary: one request in, one decoded page or a
// classified error out. Retries belong to callers.
package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/randomusers/internal/logging"
	"github.com/dmitrijs2005/randomusers/internal/models"
)

// Source fetches one page of users. Implementations must not retry.
type Source interface {
	// FetchPage requests page `page` (1-based) with `results` users per page.
	// A non-empty seed is passed through so the remote source replays the
	// same random stream it used for the first page.
	FetchPage(ctx context.Context, page int, results int, seed string) (*models.Page, error)
}

const apiPath = "/api/"

// Client is the HTTP implementation of Source.
type Client struct {
	baseURL    string
	httpClient *http.Client
	headers    map[string]string
	log        logging.Logger
}

// NewClient returns a Client targeting baseURL (e.g. "https://randomuser.me")
// with the given transport timeout.
func NewClient(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		// Accept-Encoding is left to the transport: setting it by hand
		// would switch off net/http's transparent gzip decompression.
		headers: map[string]string{
			"Accept":     "application/json",
			"User-Agent": "randomusers-cli/1.0",
		},
		log: log,
	}
}

func (c *Client) buildURL(page, results int, seed string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidRequest
	}
	// keep any path prefix of the base URL (proxy mounts and the like)
	u.Path = strings.TrimSuffix(u.Path, "/") + apiPath

	q := url.Values{}
	q.Set("results", strconv.Itoa(results))
	q.Set("page", strconv.Itoa(page))
	if seed != "" {
		q.Set("seed", seed)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// FetchPage implements Source.
func (c *Client) FetchPage(ctx context.Context, page int, results int, seed string) (*models.Page, error) {
	target, err := c.buildURL(page, results, seed)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, ErrInvalidRequest
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}
	if len(body) == 0 {
		return nil, ErrEmptyResponse
	}

	var p models.Page
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, &DecodeError{Cause: err}
	}

	c.log.Info(ctx, "fetched user page", "page", page, "results", len(p.Results), "seed", p.Info.Seed)
	return &p, nil
}
