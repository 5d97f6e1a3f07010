package remote

import (
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/randomusers/internal/logging"
)

const pageBody = `{
	"results": [
		{
			"gender": "female",
			"name": {"title": "Ms", "first": "Jane", "last": "Doe"},
			"location": {
				"street": {"number": 42, "name": "Main St"},
				"city": "Springfield", "state": "Oregon", "country": "United States",
				"postcode": 97477,
				"coordinates": {"latitude": "44.05", "longitude": "-123.02"},
				"timezone": {"offset": "-8:00", "description": "Pacific Time"}
			},
			"email": "jane@example.com",
			"login": {"uuid": "u1", "username": "janed", "password": "", "salt": "", "md5": "", "sha1": "", "sha256": ""},
			"dob": {"date": "1990-01-02T03:04:05.000Z", "age": 35},
			"registered": {"date": "2015-01-01T00:00:00.000Z", "age": 10},
			"phone": "555-0100", "cell": "555-0101",
			"id": {"name": "SSN", "value": "000-00-0000"},
			"picture": {"large": "l", "medium": "m", "thumbnail": "t"},
			"nat": "US"
		}
	],
	"info": {"seed": "abc", "results": 1, "page": 3, "version": "1.4"}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, logging.NewNopLogger()), srv
}

func TestFetchPage_Success(t *testing.T) {
	var gotQuery map[string][]string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, "/api/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(pageBody))
	})

	p, err := c.FetchPage(context.Background(), 3, 25, "abc")
	require.NoError(t, err)

	assert.Equal(t, []string{"25"}, gotQuery["results"])
	assert.Equal(t, []string{"3"}, gotQuery["page"])
	assert.Equal(t, []string{"abc"}, gotQuery["seed"])

	require.Len(t, p.Results, 1)
	assert.Equal(t, "jane@example.com_janed", p.Results[0].Key())
	assert.Equal(t, "97477", p.Results[0].Location.Postcode.String())
	assert.Equal(t, "abc", p.Info.Seed)
	assert.Equal(t, 3, p.Info.Page)
}

func TestFetchPage_GzipEncodedResponse(t *testing.T) {
	// a compression-honoring server gzips when the request advertises it;
	// the transport must negotiate and decompress transparently
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			_, _ = w.Write([]byte(pageBody))
			return
		}
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		_, _ = gz.Write([]byte(pageBody))
		_ = gz.Close()
	})

	p, err := c.FetchPage(context.Background(), 3, 25, "abc")
	require.NoError(t, err)
	require.Len(t, p.Results, 1)
	assert.Equal(t, "jane@example.com_janed", p.Results[0].Key())
}

func TestFetchPage_KeepsBasePathPrefix(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(pageBody))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL+"/proxy/", 5*time.Second, logging.NewNopLogger())
	_, err := c.FetchPage(context.Background(), 1, 25, "")
	require.NoError(t, err)
	assert.Equal(t, "/proxy/api/", gotPath)
}

func TestFetchPage_OmitsEmptySeed(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("seed"))
		_, _ = w.Write([]byte(pageBody))
	})

	_, err := c.FetchPage(context.Background(), 1, 25, "")
	require.NoError(t, err)
}

func TestFetchPage_HTTPStatusFailure(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.FetchPage(context.Background(), 1, 25, "")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.Code)
}

func TestFetchPage_EmptyResponse(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := c.FetchPage(context.Background(), 1, 25, "")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestFetchPage_DecodeFailure(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": "not-an-array"`))
	})

	_, err := c.FetchPage(context.Background(), 1, 25, "")
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Error(t, de.Cause)
}

func TestFetchPage_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from now on

	c := NewClient(srv.URL, time.Second, logging.NewNopLogger())
	_, err := c.FetchPage(context.Background(), 1, 25, "")
	var te *TransportError
	require.ErrorAs(t, err, &te)
}

func TestFetchPage_InvalidBaseURL(t *testing.T) {
	c := NewClient("::not a url::", time.Second, logging.NewNopLogger())
	_, err := c.FetchPage(context.Background(), 1, 25, "")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestFetchPage_ContextCancelled(t *testing.T) {
	block := make(chan struct{})
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-block
	})
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchPage(ctx, 1, 25, "")
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.True(t, errors.Is(err, context.Canceled))
}
