// Package listing owns the growing collection of fetched users: sequential
// page loads with a single-flight guard, the live search projection over
// the collection, and the bookmark-aware view consumed by presentation
// code.
package listing

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/randomusers/internal/logging"
	"github.com/dmitrijs2005/randomusers/internal/models"
	"github.com/dmitrijs2005/randomusers/internal/remote"
)

// Listener receives engine events. All callbacks fire synchronously on the
// goroutine driving the engine call.
type Listener interface {
	// UsersUpdated fires when the unfiltered collection changed and no
	// search is active, and when a search is cleared.
	UsersUpdated()

	// SearchResultsUpdated fires when the filtered view was recomputed.
	SearchResultsUpdated()

	// ErrorOccurred fires when a page load failed. Pagination state is
	// untouched; a retry reattempts the same page.
	ErrorOccurred(err error)

	// LoadingStarted / LoadingFinished bracket every page load attempt.
	LoadingStarted()
	LoadingFinished()
}

// Options tune an Engine. Zero values fall back to the defaults below.
type Options struct {
	// PageSize is the number of users requested per page.
	PageSize int

	// PrefetchThreshold is how close to the end of the collection the
	// visible index may get before the next page is requested.
	PrefetchThreshold int

	// FreshSeedOnRefresh controls whether Refresh discards the captured
	// seed (a new random stream) or replays it (the same stream again).
	FreshSeedOnRefresh bool
}

const (
	defaultPageSize          = 25
	defaultPrefetchThreshold = 5
)

// Engine is the per-screen listing session. It is created when the screen
// appears and discarded on dismissal; bookmarks live elsewhere.
//
// All methods are safe for concurrent use, but the intended owner is a
// single presentation context. At most one fetch is in flight at any time:
// LoadNext while loading or exhausted is a no-op, never an error.
type Engine struct {
	source   remote.Source
	store    BookmarkQuerier
	listener Listener
	opts     Options
	log      logging.Logger

	mu        sync.Mutex
	users     []models.User
	filtered  []models.User
	query     string
	searching bool
	nextPage  int
	seed      string
	exhausted bool
	loading   bool
	closed    bool
	session   uint64
}

// BookmarkQuerier is the narrow slice of the bookmark store the view
// projection needs. Membership is never cached across calls.
type BookmarkQuerier interface {
	IsBookmarked(key string) bool
	Toggle(ctx context.Context, u models.User)
	Count() int
}

// NewEngine builds a listing session over source and store, reporting to
// listener. listener must not be nil; use a no-op implementation if the
// caller has nothing to observe.
func NewEngine(source remote.Source, store BookmarkQuerier, listener Listener, opts Options, log logging.Logger) *Engine {
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.PrefetchThreshold <= 0 {
		opts.PrefetchThreshold = defaultPrefetchThreshold
	}
	return &Engine{
		source:   source,
		store:    store,
		listener: listener,
		opts:     opts,
		log:      log,
		nextPage: 1,
	}
}

// LoadNext fetches the next page and merges it into the collection.
//
// The call is a no-op while a fetch is in flight or after the source is
// exhausted, so overlapping invocations (rapid scroll events) collapse to
// a single request. On failure no pagination state changes.
func (e *Engine) LoadNext(ctx context.Context) {
	e.mu.Lock()
	if e.loading || e.exhausted || e.closed {
		e.mu.Unlock()
		return
	}
	e.loading = true
	page, size, seed := e.nextPage, e.opts.PageSize, e.seed
	session := e.session
	e.mu.Unlock()

	e.listener.LoadingStarted()
	result, err := e.source.FetchPage(ctx, page, size, seed)

	e.mu.Lock()
	e.loading = false
	if e.closed || e.session != session {
		// the session this fetch belongs to ended (teardown or
		// refresh) while it was in flight; drop the result on the
		// floor so it cannot corrupt the fresh state
		e.mu.Unlock()
		e.listener.LoadingFinished()
		return
	}

	if err != nil {
		e.mu.Unlock()
		e.log.Warn(ctx, "page load failed", "page", page, "error", err)
		e.listener.ErrorOccurred(err)
		e.listener.LoadingFinished()
		return
	}

	if e.seed == "" {
		e.seed = result.Info.Seed
	}

	if page == 1 {
		// refresh-as-reload: the first page replaces the collection
		e.users = append([]models.User(nil), result.Results...)
	} else {
		e.users = append(e.users, result.Results...)
	}
	e.nextPage++
	if len(result.Results) < size {
		e.exhausted = true
	}

	searching := e.searching
	if searching {
		e.refilterLocked()
	}
	e.mu.Unlock()

	e.log.Debug(ctx, "page applied", "page", page, "added", len(result.Results), "total", e.Count())

	if searching {
		e.listener.SearchResultsUpdated()
	} else {
		e.listener.UsersUpdated()
	}
	e.listener.LoadingFinished()
}

// Refresh restarts the session: back to page 1, empty collection, search
// cleared, exhaustion reset. The captured seed is dropped or replayed
// per Options.FreshSeedOnRefresh. It then loads the first page. A fetch
// still in flight belongs to the old session and its completion is
// discarded.
func (e *Engine) Refresh(ctx context.Context) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.session++ // any fetch still in flight now belongs to a dead session
	e.nextPage = 1
	e.exhausted = false
	e.users = nil
	if e.opts.FreshSeedOnRefresh {
		e.seed = ""
	}
	cleared := e.searching
	e.query = ""
	e.searching = false
	e.filtered = nil
	e.mu.Unlock()

	if cleared {
		e.listener.UsersUpdated()
	}
	e.LoadNext(ctx)
}

// LoadMoreIfNeeded requests the next page when visibleIndex is within the
// prefetch threshold of the collection's end. It does nothing while a
// search is active.
func (e *Engine) LoadMoreIfNeeded(ctx context.Context, visibleIndex int) {
	e.mu.Lock()
	trigger := !e.searching &&
		visibleIndex >= len(e.users)-e.opts.PrefetchThreshold &&
		!e.loading && !e.exhausted && !e.closed
	e.mu.Unlock()

	if trigger {
		e.LoadNext(ctx)
	}
}

// Close marks the session torn down. A fetch still in flight will complete
// but its result is discarded instead of mutating state.
func (e *Engine) Close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
}

// Loading reports whether a fetch is in flight.
func (e *Engine) Loading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loading
}

// Exhausted reports whether a short page has been observed.
func (e *Engine) Exhausted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.exhausted
}

// NextPage returns the page index the next load will request.
func (e *Engine) NextPage() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.nextPage
}

// Seed returns the stability token captured from the first response, or ""
// before the first successful load.
func (e *Engine) Seed() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.seed
}
