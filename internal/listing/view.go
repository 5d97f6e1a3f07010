package listing

import (
	"context"

	"github.com/dmitrijs2005/randomusers/internal/models"
)

// The active view is the filtered subsequence while a query is active and
// the full collection otherwise. Count, UserAt, and the bookmark
// projection below all resolve through this one rule.

// ActiveUsers returns a copy of the active view.
func (e *Engine) ActiveUsers() []models.User {
	e.mu.Lock()
	defer e.mu.Unlock()
	src := e.activeLocked()
	out := make([]models.User, len(src))
	copy(out, src)
	return out
}

// Count returns the size of the active view.
func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.activeLocked())
}

// Empty reports whether the active view has no users.
func (e *Engine) Empty() bool {
	return e.Count() == 0
}

// UserAt returns the user at index in the active view.
// The second result is false when index is out of range.
func (e *Engine) UserAt(index int) (models.User, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	src := e.activeLocked()
	if index < 0 || index >= len(src) {
		return models.User{}, false
	}
	return src[index], true
}

// IsBookmarkedAt reports bookmark membership for the user at index in the
// active view, delegating the lookup to the store. Out of range is false,
// not an error.
func (e *Engine) IsBookmarkedAt(index int) bool {
	u, ok := e.UserAt(index)
	if !ok {
		return false
	}
	return e.store.IsBookmarked(u.Key())
}

// ToggleBookmarkAt toggles the bookmark for the user at index in the
// active view. Out of range is a no-op.
func (e *Engine) ToggleBookmarkAt(ctx context.Context, index int) {
	u, ok := e.UserAt(index)
	if !ok {
		return
	}
	e.store.Toggle(ctx, u)
}

// BadgeCount is the global bookmark count, independent of the current
// list or search state.
func (e *Engine) BadgeCount() int {
	return e.store.Count()
}

// activeLocked resolves the active view. Callers must hold e.mu.
func (e *Engine) activeLocked() []models.User {
	if e.searching {
		return e.filtered
	}
	return e.users
}
