package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/kcmvp/commerce/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_AddAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	m := NewMemory[model.Category]()

	first, err := m.Add(ctx, model.Category{Name: "Electronics", CreatedAt: time.Now()})
	require.NoError(t, err)
	second, err := m.Add(ctx, model.Category{Name: "Books", CreatedAt: time.Now()})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestMemory_GetByID(t *testing.T) {
	ctx := context.Background()
	m := NewMemory[model.Category]()
	created, err := m.Add(ctx, model.Category{Name: "Electronics"})
	require.NoError(t, err)

	opt, err := m.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, opt.IsPresent())
	assert.Equal(t, "Electronics", opt.MustGet().Name)

	absent, err := m.GetByID(ctx, 99)
	require.NoError(t, err)
	assert.True(t, absent.IsAbsent())
}

func TestMemory_GetAll_SortedByID(t *testing.T) {
	ctx := context.Background()
	m := NewMemory[model.Category]()
	for _, name := range []string{"C", "A", "B"} {
		_, err := m.Add(ctx, model.Category{Name: name})
		require.NoError(t, err)
	}
	all, err := m.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all[0].ID, all[1].ID, all[2].ID})
}

func TestMemory_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory[model.Category]()
	created, err := m.Add(ctx, model.Category{Name: "Electronics"})
	require.NoError(t, err)

	ok, err := m.Update(ctx, created.ID, model.Category{Name: "Gadgets"})
	require.NoError(t, err)
	assert.True(t, ok)
	opt, _ := m.GetByID(ctx, created.ID)
	assert.Equal(t, "Gadgets", opt.MustGet().Name)
	assert.Equal(t, created.ID, opt.MustGet().ID, "update keeps the key")

	ok, err = m.Update(ctx, 42, model.Category{Name: "Nope"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = m.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = m.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, m.Len())
}

func TestMemory_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	m := NewMemory[model.Category]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Add(ctx, model.Category{Name: "cat"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, m.Len())

	all, err := m.GetAll(ctx)
	require.NoError(t, err)
	seen := map[int]bool{}
	for _, c := range all {
		assert.False(t, seen[c.ID], "ids must be unique")
		seen[c.ID] = true
	}
}
