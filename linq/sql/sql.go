// Package sql loads database/sql query results into min-linq containers so
// they can be filtered, projected and reduced like any other source.
package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lguimbarda/min-linq/linq/container"
	"github.com/lguimbarda/min-linq/linq/core"
)

// DefaultCapacity is the initial capacity of the List returned by Query.
const DefaultCapacity = 64

// Scanner is a function that scans a row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// RowScanner is a function that scans a single row into a value.
type RowScanner[T any] func(*sql.Row) (T, error)

// QueryConfig holds configuration options for Query.
type QueryConfig struct {
	Capacity int
}

// QueryOption is a functional option for configuring Query.
type QueryOption func(*QueryConfig)

// WithCapacity sets the initial capacity of the returned List. Use the
// expected row count to avoid growing the List while scanning.
func WithCapacity(n int) QueryOption {
	return func(c *QueryConfig) {
		c.Capacity = n
	}
}

func applyOptions(opts ...QueryOption) QueryConfig {
	cfg := QueryConfig{Capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Query executes query and scans every row into a List. The rows are fully
// read and closed before Query returns; the first scan or iteration error
// aborts the query.
func Query[T any](ctx context.Context, db *sql.DB, query string, scanner Scanner[T], args ...any) (*container.List[T], error) {
	return QueryWith(ctx, db, query, scanner, nil, args...)
}

// QueryWith is Query with options.
func QueryWith[T any](ctx context.Context, db *sql.DB, query string, scanner Scanner[T], opts []QueryOption, args ...any) (_ *container.List[T], err error) {
	cfg := applyOptions(opts...)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sql: query: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("sql: close rows: %w", cerr)
		}
	}()

	list := container.NewList[T](cfg.Capacity)
	for rows.Next() {
		value, err := scanner(rows)
		if err != nil {
			return nil, fmt.Errorf("sql: scan row %d: %w", list.Len(), err)
		}
		list.Add(value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sql: iterate rows: %w", err)
	}
	return list, nil
}

// QueryRow executes a query expected to return at most one row. No row
// yields None rather than an error.
func QueryRow[T any](ctx context.Context, db *sql.DB, query string, scanner RowScanner[T], args ...any) (core.Option[T], error) {
	value, err := scanner(db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return core.None[T](), nil
	case err != nil:
		return core.None[T](), fmt.Errorf("sql: query row: %w", err)
	default:
		return core.Some(value), nil
	}
}
