package service

import (
	"context"
	"strings"
	"testing"

	"github.com/kcmvp/commerce/fault"
	"github.com/kcmvp/commerce/model"
	"github.com/kcmvp/commerce/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_CreateValidates(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory[model.Category]()
	svc := NewCategory(mem)

	_, err := svc.Create(ctx, model.Category{Name: "   "})
	require.ErrorIs(t, err, fault.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "name is required")
	assert.Zero(t, mem.Len(), "failed create must not mutate the store")

	_, err = svc.Create(ctx, model.Category{Name: strings.Repeat("x", 101)})
	require.ErrorIs(t, err, fault.ErrInvalidArgument)
	assert.Zero(t, mem.Len())

	created, err := svc.Create(ctx, model.Category{Name: "Electronics"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.UpdatedAt)
}

func TestCategory_IDChecks(t *testing.T) {
	ctx := context.Background()
	svc := NewCategory(store.NewMemory[model.Category]())

	_, err := svc.GetByID(ctx, 0)
	assert.ErrorIs(t, err, fault.ErrInvalidArgument)
	_, err = svc.Update(ctx, -1, model.Category{Name: "x"})
	assert.ErrorIs(t, err, fault.ErrInvalidArgument)
	_, err = svc.Delete(ctx, 0)
	assert.ErrorIs(t, err, fault.ErrInvalidArgument)
}

func TestCategory_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory[model.Category]()
	svc := NewCategory(mem)

	_, err := svc.Update(ctx, 42, model.Category{Name: "Books"})
	require.ErrorIs(t, err, fault.ErrInvalidOperation)
	assert.Contains(t, err.Error(), "Category with ID 42 not found")
	assert.Zero(t, mem.Len())
}

func TestCategory_UpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	svc := NewCategory(store.NewMemory[model.Category]())

	created, err := svc.Create(ctx, model.Category{Name: "Electronics"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, model.Category{Name: "Gadgets"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.NotNil(t, updated.UpdatedAt)
}

func TestCategory_DeleteMissingReturnsFalse(t *testing.T) {
	svc := NewCategory(store.NewMemory[model.Category]())
	ok, err := svc.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSupplier_Rules(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory[model.Supplier]()
	svc := NewSupplier(mem)

	_, err := svc.Create(ctx, model.Supplier{Name: ""})
	require.ErrorIs(t, err, fault.ErrInvalidArgument)

	_, err = svc.Create(ctx, model.Supplier{Name: "Acme", ContactEmail: "not-an-email"})
	require.ErrorIs(t, err, fault.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "contactEmail")
	assert.Zero(t, mem.Len())

	created, err := svc.Create(ctx, model.Supplier{Name: "Acme", ContactEmail: "sales@acme.test"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestProduct_Rules(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory[model.Product]()
	svc := NewProduct(mem)

	valid := model.Product{Name: "Laptop", Price: 999.99, Quantity: 5, CategoryID: 1, SupplierID: 1}

	for name, mutate := range map[string]func(p model.Product) model.Product{
		"blank name":        func(p model.Product) model.Product { p.Name = ""; return p },
		"negative price":    func(p model.Product) model.Product { p.Price = -1; return p },
		"negative quantity": func(p model.Product) model.Product { p.Quantity = -1; return p },
		"zero categoryId":   func(p model.Product) model.Product { p.CategoryID = 0; return p },
		"zero supplierId":   func(p model.Product) model.Product { p.SupplierID = 0; return p },
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(ctx, mutate(valid))
			assert.ErrorIs(t, err, fault.ErrInvalidArgument)
		})
	}
	assert.Zero(t, mem.Len())

	created, err := svc.Create(ctx, valid)
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	// Reference existence is not checked here; a dangling categoryId passes
	// the range rule and is left to the storage engine's foreign keys.
	dangling := valid
	dangling.CategoryID = 999
	_, err = svc.Create(ctx, dangling)
	require.NoError(t, err)
}

func TestProduct_ZeroPriceAndQuantityAllowed(t *testing.T) {
	svc := NewProduct(store.NewMemory[model.Product]())
	_, err := svc.Create(context.Background(), model.Product{Name: "Freebie", Price: 0, Quantity: 0, CategoryID: 1, SupplierID: 2})
	require.NoError(t, err)
}
