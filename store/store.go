// Package store provides generic key-indexed persistence for the commerce
// entities. The Store contract performs no validation; callers (the service
// layer) are expected to hand it pre-validated records.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Entity is the contract a persisted record satisfies: a table name, an
// integer surrogate key, and a way to produce a copy with a new key.
type Entity[E any] interface {
	Table() string
	Key() int
	WithKey(id int) E
}

// Store is the minimal CRUD capability set over one entity type.
//
// Concurrent calls on the same id are not coordinated here; Update is
// last-write-wins. Implementations must be safe for concurrent use.
type Store[E Entity[E]] interface {
	// GetByID returns the entity, or None when no record has that id.
	GetByID(ctx context.Context, id int) (mo.Option[E], error)
	// GetAll returns every record. Order is store-defined.
	GetAll(ctx context.Context) ([]E, error)
	// Add persists a new record and returns it with its assigned key.
	Add(ctx context.Context, e E) (E, error)
	// Update replaces the record with the given id. It reports whether a
	// record existed to be replaced.
	Update(ctx context.Context, id int, e E) (bool, error)
	// Delete removes the record with the given id. It reports whether a
	// record existed to be removed.
	Delete(ctx context.Context, id int) (bool, error)
}

// Memory is a map-backed Store used by tests and as the fallback when no
// datasource is configured.
type Memory[E Entity[E]] struct {
	mu   sync.RWMutex
	rows map[int]E
	next int
}

var _ Store[noopEntity] = (*Memory[noopEntity])(nil)

// NewMemory returns an empty in-memory store.
func NewMemory[E Entity[E]]() *Memory[E] {
	return &Memory[E]{rows: map[int]E{}, next: 1}
}

func (m *Memory[E]) GetByID(_ context.Context, id int) (mo.Option[E], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.rows[id]
	return lo.Ternary(ok, mo.Some(e), mo.None[E]()), nil
}

func (m *Memory[E]) GetAll(_ context.Context) ([]E, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := lo.Keys(m.rows)
	sort.Ints(keys)
	return lo.Map(keys, func(id int, _ int) E { return m.rows[id] }), nil
}

func (m *Memory[E]) Add(_ context.Context, e E) (E, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e = e.WithKey(m.next)
	m.rows[m.next] = e
	m.next++
	return e, nil
}

func (m *Memory[E]) Update(_ context.Context, id int, e E) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	m.rows[id] = e.WithKey(id)
	return true, nil
}

func (m *Memory[E]) Delete(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

// Len reports the number of stored records.
func (m *Memory[E]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rows)
}

// noopEntity exists only for the compile-time interface check above.
type noopEntity struct{ id int }

func (noopEntity) Table() string               { return "noop" }
func (e noopEntity) Key() int                  { return e.id }
func (e noopEntity) WithKey(id int) noopEntity { e.id = id; return e }
