// Package service implements the per-entity validation services. Every
// service follows the same shape: an id check, an existence check where the
// operation targets or references a record, field validation, then a store
// call. Nothing is persisted when any step fails.
package service

import (
	"context"

	"github.com/kcmvp/commerce/fault"
	"github.com/kcmvp/commerce/store"
	"github.com/samber/mo"
)

// checkID rejects non-positive identifiers before any store access.
func checkID(id int) error {
	if id <= 0 {
		return fault.InvalidArgf("id must be greater than 0")
	}
	return nil
}

func notFound(entity string, id int) error {
	return fault.InvalidOpf("%s with ID %d not found", entity, id)
}

// getByID is the shared read path: id ≤ 0 is an InvalidArgument, a missing
// record is simply absent.
func getByID[E store.Entity[E]](ctx context.Context, s store.Store[E], id int) (mo.Option[E], error) {
	if err := checkID(id); err != nil {
		return mo.None[E](), err
	}
	return s.GetByID(ctx, id)
}

// deleteByID is the shared delete path; a missing record yields false, not an
// error.
func deleteByID[E store.Entity[E]](ctx context.Context, s store.Store[E], id int) (bool, error) {
	if err := checkID(id); err != nil {
		return false, err
	}
	return s.Delete(ctx, id)
}

// mustExist fetches the record with id from s or fails with
// fault.ErrInvalidOperation naming the entity.
func mustExist[E store.Entity[E]](ctx context.Context, s store.Store[E], entity string, id int) (E, error) {
	var zero E
	opt, err := s.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if opt.IsAbsent() {
		return zero, notFound(entity, id)
	}
	return opt.MustGet(), nil
}

// target is the shared update precondition: positive id and an existing
// record. It returns the current record so callers can keep server-owned
// fields across a full-record replace.
func target[E store.Entity[E]](ctx context.Context, s store.Store[E], entity string, id int) (E, error) {
	if err := checkID(id); err != nil {
		var zero E
		return zero, err
	}
	return mustExist(ctx, s, entity, id)
}
