package bookmarks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/randomusers/internal/logging"
	"github.com/dmitrijs2005/randomusers/internal/models"
)

// Action classifies a bookmark change.
type Action string

const (
	ActionAdded   Action = "added"
	ActionRemoved Action = "removed"
	ActionCleared Action = "cleared"
)

// Change describes one bookmark mutation. User is zero-valued for
// ActionCleared. Observers should treat a Change as a hint to re-check
// current state rather than as a delta to replay: delivery is
// at-least-once.
type Change struct {
	Action Action
	User   models.User
}

// Observer receives bookmark change notifications.
type Observer func(Change)

// Store is the process-wide bookmark set. It is shared across screens, so
// every method is safe for concurrent use; the mutex makes each
// read/modify/write cycle atomic.
//
// The store keeps an in-memory ordered list as the working copy and writes
// it through to the Repository after every effective mutation. A failed
// save is logged and swallowed: the in-memory set stays authoritative and
// the divergence heals on the next successful save.
type Store struct {
	mu        sync.Mutex
	users     []models.User
	keys      map[string]struct{}
	observers map[string]Observer

	repo Repository
	log  logging.Logger
}

// NewStore builds a Store seeded from the repository. Load failures are
// logged and treated as an empty set.
func NewStore(ctx context.Context, repo Repository, log logging.Logger) *Store {
	s := &Store{
		keys:      make(map[string]struct{}),
		observers: make(map[string]Observer),
		repo:      repo,
		log:       log,
	}

	users, err := repo.Load(ctx)
	if err != nil {
		log.Warn(ctx, "loading bookmarks failed, starting empty", "error", err)
		users = nil
	}
	for _, u := range users {
		if _, ok := s.keys[u.Key()]; ok {
			continue
		}
		s.keys[u.Key()] = struct{}{}
		s.users = append(s.users, u)
	}

	return s
}

// Subscribe registers fn for change notifications and returns a token
// for Unsubscribe. Delivery is synchronous with the mutating call.
func (s *Store) Subscribe(fn Observer) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := uuid.NewString()
	s.observers[token] = fn
	return token
}

// Unsubscribe removes the observer registered under token.
func (s *Store) Unsubscribe(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.observers, token)
}

// IsBookmarked reports membership for the given identity key.
func (s *Store) IsBookmarked(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.keys[key]
	return ok
}

// Count returns the persisted-set size.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// All returns the bookmarked users in insertion order.
func (s *Store) All() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Add inserts u if absent. Present users are a silent no-op.
func (s *Store) Add(ctx context.Context, u models.User) {
	s.mu.Lock()
	if _, ok := s.keys[u.Key()]; ok {
		s.mu.Unlock()
		return
	}
	s.keys[u.Key()] = struct{}{}
	s.users = append(s.users, u)
	s.save(ctx)
	obs := s.snapshotObservers()
	s.mu.Unlock()

	s.log.Debug(ctx, "bookmark added", "key", u.Key())
	notify(obs, Change{Action: ActionAdded, User: u})
}

// Remove deletes u if present. Absent users are a silent no-op.
func (s *Store) Remove(ctx context.Context, u models.User) {
	s.mu.Lock()
	if _, ok := s.keys[u.Key()]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.keys, u.Key())
	for i := range s.users {
		if s.users[i].Key() == u.Key() {
			s.users = append(s.users[:i], s.users[i+1:]...)
			break
		}
	}
	s.save(ctx)
	obs := s.snapshotObservers()
	s.mu.Unlock()

	s.log.Debug(ctx, "bookmark removed", "key", u.Key())
	notify(obs, Change{Action: ActionRemoved, User: u})
}

// Toggle removes u if present, adds it otherwise. Exactly one of the two
// effects happens per call.
func (s *Store) Toggle(ctx context.Context, u models.User) {
	if s.IsBookmarked(u.Key()) {
		s.Remove(ctx, u)
	} else {
		s.Add(ctx, u)
	}
}

// ClearAll empties the set. It always emits a cleared notification, even
// when the set was already empty, so observers can distinguish an explicit
// clear from silence.
func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	s.users = nil
	s.keys = make(map[string]struct{})
	s.save(ctx)
	obs := s.snapshotObservers()
	s.mu.Unlock()

	s.log.Info(ctx, "bookmarks cleared")
	notify(obs, Change{Action: ActionCleared})
}

// save writes the working copy through to the repository.
// Callers must hold s.mu.
func (s *Store) save(ctx context.Context) {
	if err := s.repo.Save(ctx, s.users); err != nil {
		s.log.Error(ctx, "saving bookmarks failed", "error", err)
	}
}

// snapshotObservers copies the observer list so notifications run outside
// the lock and subscribers may mutate registrations during delivery.
// Callers must hold s.mu.
func (s *Store) snapshotObservers() []Observer {
	out := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		out = append(out, fn)
	}
	return out
}

func notify(obs []Observer, c Change) {
	for _, fn := range obs {
		fn(c)
	}
}
