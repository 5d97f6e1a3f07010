// Package bookmarks persists the user's bookmarked profiles and notifies
// observers on every effective change.
//
// The persisted layout is a single named slot in a local key-value table
// holding the JSON-serialized array of full user objects. A missing or
// corrupt slot reads as an empty set, never as an error.
package bookmarks

import (
	"context"

	"github.com/dmitrijs2005/randomusers/internal/models"
)

// slotName is the key-value slot the bookmark array lives under.
const slotName = "bookmarked_users"

// Repository is the persistence boundary for the bookmark set.
// Implementations are typically backed by a local SQLite database.
type Repository interface {
	// Load returns the persisted bookmark list. A missing or undecodable
	// slot yields an empty list and a nil error.
	Load(ctx context.Context) ([]models.User, error)

	// Save replaces the persisted bookmark list with users.
	Save(ctx context.Context, users []models.User) error
}
