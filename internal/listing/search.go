package listing

import (
	"strings"

	"github.com/dmitrijs2005/randomusers/internal/models"
)

// SetQuery stores the live search text and recomputes the filtered view.
// A non-empty query switches the active view to the filtered subsequence;
// an empty query reverts to the full collection.
func (e *Engine) SetQuery(text string) {
	e.mu.Lock()
	e.query = text
	e.searching = text != ""
	if e.searching {
		e.refilterLocked()
	} else {
		e.filtered = nil
	}
	searching := e.searching
	e.mu.Unlock()

	if searching {
		e.listener.SearchResultsUpdated()
	} else {
		e.listener.UsersUpdated()
	}
}

// ClearSearch drops the query and restores the unfiltered view.
func (e *Engine) ClearSearch() {
	e.SetQuery("")
}

// Searching reports whether a non-empty query is active.
func (e *Engine) Searching() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.searching
}

// Query returns the current search text.
func (e *Engine) Query() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.query
}

// refilterLocked recomputes the filtered view as the stable ordered
// subsequence of the collection matching the query. Callers must hold e.mu.
func (e *Engine) refilterLocked() {
	q := strings.ToLower(e.query)
	e.filtered = e.filtered[:0]
	for _, u := range e.users {
		if matches(u, q) {
			e.filtered = append(e.filtered, u)
		}
	}
}

// matches reports whether the lowercased query is a substring of the
// user's full name, email, city, or country.
func matches(u models.User, q string) bool {
	return strings.Contains(strings.ToLower(u.FullName()), q) ||
		strings.Contains(strings.ToLower(u.Email), q) ||
		strings.Contains(strings.ToLower(u.Location.City), q) ||
		strings.Contains(strings.ToLower(u.Location.Country), q)
}
