package cms

import (
	"sort"
	"sync"
	"time"
)

// Entity is anything a repository can hold: keyed by an immutable opaque
// id and stamped once at construction.
type Entity interface {
	Key() string
	Created() time.Time
}

// Repo holds every live instance of one entity kind behind a single
// reader/writer lock: many concurrent readers or one writer. Reads hand
// out value copies, never aliases into the map, so a caller can never
// observe a half-applied mutation or mutate the repository from outside.
type Repo[E Entity] struct {
	mu sync.RWMutex
	m  map[string]E
}

func NewRepo[E Entity]() *Repo[E] {
	return &Repo[E]{m: make(map[string]E)}
}

// Insert stores e under its own key. An existing entry with the same key
// is overwritten, last writer wins.
func (r *Repo[E]) Insert(e E) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[e.Key()] = e
}

func (r *Repo[E]) Get(id string) (E, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.m[id]
	return e, ok
}

// List returns a snapshot of all entries, in no particular order. Callers
// that display the result sort it themselves (see SortNewestFirst).
func (r *Repo[E]) List() []E {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]E, 0, len(r.m))
	for _, e := range r.m {
		out = append(out, e)
	}
	return out
}

// Update applies fn to the entry under id while holding the write lock.
// A missing id is a silent no-op. fn must be quick and must not call back
// into the repository.
func (r *Repo[E]) Update(id string, fn func(*E)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.m[id]
	if !ok {
		return
	}
	fn(&e)
	r.m[id] = e
}

// Delete removes the entry under id. Deleting an absent id is a no-op.
func (r *Repo[E]) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, id)
}

func (r *Repo[E]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m)
}

// Store is the process-wide dataset: one repository per entity kind.
//
// The repositories are synchronized independently and there is no
// cross-repository transaction. An operation touching two kinds, such as
// listing products with their category names, takes each lock separately
// and can race with a concurrent category deletion; the dangling
// reference that results is resolved by the render-time fallback label,
// never by locking both maps together.
type Store struct {
	Products       *Repo[Product]
	Categories     *Repo[Category]
	Posts          *Repo[Post]
	BlogCategories *Repo[BlogCategory]
}

// NewStore returns an empty store. Call Seed for demo fixture data.
func NewStore() *Store {
	return &Store{
		Products:       NewRepo[Product](),
		Categories:     NewRepo[Category](),
		Posts:          NewRepo[Post](),
		BlogCategories: NewRepo[BlogCategory](),
	}
}

// SortNewestFirst orders a snapshot for display: creation time
// descending, id as tie-break so entities created within the clock's
// resolution still get a stable total order.
func SortNewestFirst[E Entity](items []E) {
	sort.Slice(items, func(i, j int) bool {
		ti, tj := items[i].Created(), items[j].Created()
		if ti.Equal(tj) {
			return items[i].Key() < items[j].Key()
		}
		return ti.After(tj)
	})
}
