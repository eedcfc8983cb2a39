// Package document_repo provides PostgreSQL implementations for document repositories.
package document_repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"comercio/internal/core/apperror"
	"comercio/internal/infrastructure/storage/postgres"
)

// BaseDocumentRepo provides common header operations for document entities.
// Document numbers and dates are assigned by the store on insert, so
// Create always runs INSERT .. RETURNING doc_num, doc_date.
type BaseDocumentRepo[T any] struct {
	txm        *postgres.TxManager
	tableName  string
	selectCols []string
	newFn      func() T
}

// NewBaseDocumentRepo creates a new base document repository.
func NewBaseDocumentRepo[T any](
	txm *postgres.TxManager,
	tableName string,
	selectCols []string,
	newFn func() T,
) *BaseDocumentRepo[T] {
	return &BaseDocumentRepo[T]{
		txm:        txm,
		tableName:  tableName,
		selectCols: selectCols,
		newFn:      newFn,
	}
}

// Builder returns a new squirrel builder.
func (r *BaseDocumentRepo[T]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Querier returns the active transaction querier or the pool.
func (r *BaseDocumentRepo[T]) Querier(ctx context.Context) postgres.Querier {
	return r.txm.GetQuerier(ctx)
}

// insertHeader inserts header columns and returns the assigned
// document number and date.
func (r *BaseDocumentRepo[T]) insertHeader(ctx context.Context, data map[string]any) (int64, time.Time, error) {
	q := r.Builder().
		Insert(r.tableName).
		SetMap(data).
		Suffix("RETURNING doc_num, doc_date")

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("build insert: %w", err)
	}

	var docNum int64
	var docDate time.Time
	if err := r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&docNum, &docDate); err != nil {
		return 0, time.Time{}, fmt.Errorf("insert %s: %w", r.tableName, err)
	}

	return docNum, docDate, nil
}

// baseSelect creates a SELECT builder over header columns.
func (r *BaseDocumentRepo[T]) baseSelect() squirrel.SelectBuilder {
	return r.Builder().
		Select(r.selectCols...).
		From(r.tableName)
}

// GetByDocNum retrieves a header by document number.
func (r *BaseDocumentRepo[T]) GetByDocNum(ctx context.Context, docNum int64) (T, error) {
	entity := r.newFn()
	q := r.baseSelect().
		Where(squirrel.Eq{"doc_num": docNum})

	sql, args, err := q.ToSql()
	if err != nil {
		return entity, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.Querier(ctx), entity, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return entity, apperror.NewNotFound(r.tableName, docNum)
		}
		return entity, fmt.Errorf("get by doc num: %w", err)
	}

	return entity, nil
}

// parseOrderBy validates the requested ordering against a whitelist.
func parseOrderBy(orderBy string, allowed map[string]struct{}, fallback string) (string, error) {
	if strings.TrimSpace(orderBy) == "" {
		return fallback, nil
	}

	direction := "ASC"
	field := orderBy
	if strings.HasPrefix(orderBy, "-") {
		direction = "DESC"
		field = strings.TrimPrefix(orderBy, "-")
	} else if strings.HasPrefix(orderBy, "+") {
		field = strings.TrimPrefix(orderBy, "+")
	}

	field = strings.TrimSpace(field)
	if field == "" {
		return "", apperror.NewValidation("invalid orderBy").WithDetail("orderBy", orderBy)
	}

	if _, ok := allowed[field]; !ok {
		return "", apperror.NewValidation("invalid orderBy").WithDetail("orderBy", orderBy).WithDetail("field", field)
	}

	return field + " " + direction, nil
}
