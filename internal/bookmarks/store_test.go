package bookmarks

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/randomusers/internal/logging"
	"github.com/dmitrijs2005/randomusers/internal/models"
)

// memRepo is an in-memory Repository with optional fault injection.
type memRepo struct {
	mu      sync.Mutex
	users   []models.User
	loadErr error
	saveErr error
	saveCnt int
}

func (m *memRepo) Load(ctx context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]models.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *memRepo) Save(ctx context.Context, users []models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCnt++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.users = make([]models.User, len(users))
	copy(m.users, users)
	return nil
}

func newTestStore(t *testing.T, repo *memRepo) *Store {
	t.Helper()
	if repo == nil {
		repo = &memRepo{}
	}
	return NewStore(context.Background(), repo, logging.NewNopLogger())
}

func TestStore_AddRemoveQuery(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()
	u := testUser("jane@example.com", "janed")

	assert.False(t, s.IsBookmarked(u.Key()))
	s.Add(ctx, u)
	assert.True(t, s.IsBookmarked(u.Key()))
	assert.Equal(t, 1, s.Count())

	s.Remove(ctx, u)
	assert.False(t, s.IsBookmarked(u.Key()))
	assert.Equal(t, 0, s.Count())
}

func TestStore_AddDuplicateIsSilent(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	var changes []Change
	s.Subscribe(func(c Change) { changes = append(changes, c) })

	u1 := testUser("jane@example.com", "janed")
	u2 := testUser("jane@example.com", "janed")
	u2.DOB.Age = 99 // same identity despite data drift

	s.Add(ctx, u1)
	s.Add(ctx, u2)

	assert.Equal(t, 1, s.Count())
	require.Len(t, changes, 1)
	assert.Equal(t, ActionAdded, changes[0].Action)
}

func TestStore_RemoveAbsentIsSilent(t *testing.T) {
	s := newTestStore(t, nil)

	var changes []Change
	s.Subscribe(func(c Change) { changes = append(changes, c) })

	s.Remove(context.Background(), testUser("ghost@example.com", "ghost"))
	assert.Empty(t, changes)
}

func TestStore_ToggleTwiceRestoresAndNotifiesTwice(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()
	u := testUser("jane@example.com", "janed")

	var changes []Change
	s.Subscribe(func(c Change) { changes = append(changes, c) })

	s.Toggle(ctx, u)
	s.Toggle(ctx, u)

	assert.False(t, s.IsBookmarked(u.Key()))
	assert.Equal(t, 0, s.Count())
	require.Len(t, changes, 2)
	assert.Equal(t, ActionAdded, changes[0].Action)
	assert.Equal(t, ActionRemoved, changes[1].Action)
	assert.Equal(t, u.Key(), changes[0].User.Key())
}

func TestStore_ClearAllAlwaysNotifies(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	var changes []Change
	s.Subscribe(func(c Change) { changes = append(changes, c) })

	s.Add(ctx, testUser("x@example.com", "x"))
	s.ClearAll(ctx)

	assert.False(t, s.IsBookmarked("x@example.com_x"))
	assert.Equal(t, 0, s.Count())
	require.Len(t, changes, 2)
	assert.Equal(t, ActionCleared, changes[1].Action)

	// clearing an already-empty set still notifies
	s.ClearAll(ctx)
	require.Len(t, changes, 3)
	assert.Equal(t, ActionCleared, changes[2].Action)
}

func TestStore_Unsubscribe(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	var n int
	token := s.Subscribe(func(Change) { n++ })

	s.Add(ctx, testUser("a@example.com", "a"))
	s.Unsubscribe(token)
	s.Add(ctx, testUser("b@example.com", "b"))

	assert.Equal(t, 1, n)
}

func TestStore_LoadsPersistedSet(t *testing.T) {
	repo := &memRepo{users: []models.User{
		testUser("a@example.com", "a"),
		testUser("b@example.com", "b"),
		testUser("a@example.com", "a"), // persisted duplicate is collapsed
	}}
	s := newTestStore(t, repo)

	assert.Equal(t, 2, s.Count())
	assert.True(t, s.IsBookmarked("a@example.com_a"))
	assert.True(t, s.IsBookmarked("b@example.com_b"))
}

func TestStore_LoadFailureStartsEmpty(t *testing.T) {
	repo := &memRepo{loadErr: errors.New("disk on fire")}
	s := newTestStore(t, repo)
	assert.Equal(t, 0, s.Count())
}

func TestStore_SaveFailureKeepsMemoryAuthoritative(t *testing.T) {
	repo := &memRepo{saveErr: errors.New("readonly fs")}
	s := newTestStore(t, repo)
	ctx := context.Background()
	u := testUser("jane@example.com", "janed")

	s.Add(ctx, u)

	// the mutation itself must not fail or roll back
	assert.True(t, s.IsBookmarked(u.Key()))
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, 1, repo.saveCnt)
	assert.Empty(t, repo.users)
}

func TestStore_AllPreservesInsertionOrder(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	s.Add(ctx, testUser("c@example.com", "c"))
	s.Add(ctx, testUser("a@example.com", "a"))
	s.Add(ctx, testUser("b@example.com", "b"))

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "c@example.com_c", all[0].Key())
	assert.Equal(t, "a@example.com_a", all[1].Key())
	assert.Equal(t, "b@example.com_b", all[2].Key())
}

func TestStore_ConcurrentTogglesDifferentUsersBothLand(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()
	a := testUser("a@example.com", "a")
	b := testUser("b@example.com", "b")

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		u := []models.User{a, b}[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Toggle(ctx, u)
		}()
	}
	wg.Wait()

	assert.True(t, s.IsBookmarked(a.Key()))
	assert.True(t, s.IsBookmarked(b.Key()))
	assert.Equal(t, 2, s.Count())
}

func TestStore_ConcurrentTogglesSameUserNeverCorrupt(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()
	u := testUser("jane@example.com", "janed")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Toggle(ctx, u)
		}()
	}
	wg.Wait()

	// membership may end either way, but count and set must agree
	if s.IsBookmarked(u.Key()) {
		assert.Equal(t, 1, s.Count())
	} else {
		assert.Equal(t, 0, s.Count())
	}
}
