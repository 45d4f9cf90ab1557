package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// RowScanner abstracts *sql.Row and *sql.Rows for mapper Scan functions.
type RowScanner interface {
	Scan(dest ...any) error
}

// Mapper describes how one entity type maps onto its relational table.
// Columns excludes the id column; Values must align with Columns; Scan reads
// id followed by Columns in order.
type Mapper[E Entity[E]] struct {
	Columns []string
	Values  func(E) []any
	Scan    func(row RowScanner) (E, error)
}

// SQL is the relational Store adapter. It issues driver-agnostic statements
// with `?` placeholders (mysql/sqlite); identity retrieval relies on
// LastInsertId.
type SQL[E Entity[E]] struct {
	db     DB
	mapper Mapper[E]
	table  string
}

var _ Store[noopEntity] = (*SQL[noopEntity])(nil)

// NewSQL builds a SQL-backed store for E on db.
func NewSQL[E Entity[E]](db DB, mapper Mapper[E]) *SQL[E] {
	var zero E
	return &SQL[E]{db: db, mapper: mapper, table: zero.Table()}
}

func (s *SQL[E]) selectClause() string {
	return fmt.Sprintf("SELECT id, %s FROM %s", strings.Join(s.mapper.Columns, ", "), s.table)
}

func (s *SQL[E]) GetByID(ctx context.Context, id int) (mo.Option[E], error) {
	rows, err := s.db.QueryContext(ctx, s.selectClause()+" WHERE id = ?", id)
	if err != nil {
		return mo.None[E](), fmt.Errorf("query %s: %w", s.table, err)
	}
	defer rows.Close()
	if !rows.Next() {
		return mo.None[E](), rows.Err()
	}
	e, err := s.mapper.Scan(rows)
	if err != nil {
		return mo.None[E](), fmt.Errorf("scan %s: %w", s.table, err)
	}
	return mo.Some(e), nil
}

func (s *SQL[E]) GetAll(ctx context.Context) ([]E, error) {
	rows, err := s.db.QueryContext(ctx, s.selectClause()+" ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.table, err)
	}
	defer rows.Close()
	var all []E
	for rows.Next() {
		e, err := s.mapper.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.table, err)
		}
		all = append(all, e)
	}
	return all, rows.Err()
}

func (s *SQL[E]) Add(ctx context.Context, e E) (E, error) {
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		s.table, strings.Join(s.mapper.Columns, ", "), placeholders(len(s.mapper.Columns)))
	res, err := s.db.ExecContext(ctx, query, s.mapper.Values(e)...)
	if err != nil {
		return e, fmt.Errorf("insert %s: %w", s.table, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return e, fmt.Errorf("insert %s id: %w", s.table, err)
	}
	return e.WithKey(int(id)), nil
}

func (s *SQL[E]) Update(ctx context.Context, id int, e E) (bool, error) {
	sets := lo.Map(s.mapper.Columns, func(col string, _ int) string { return col + " = ?" })
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", s.table, strings.Join(sets, ", "))
	args := append(s.mapper.Values(e), id)
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update %s: %w", s.table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update %s affected: %w", s.table, err)
	}
	return n > 0, nil
}

func (s *SQL[E]) Delete(ctx context.Context, id int) (bool, error) {
	res, err := s.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", s.table), id)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", s.table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete %s affected: %w", s.table, err)
	}
	return n > 0, nil
}

func placeholders(n int) string {
	return strings.Join(lo.RepeatBy(n, func(_ int) string { return "?" }), ", ")
}
