package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"marketplace/infras/otel"
	"marketplace/infras/postgres"
	"marketplace/shared/constant"
	"marketplace/shared/dto"
	"marketplace/shared/event"
	"marketplace/shared/logger"
	"reflect"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	errRequiredFilter = errors.New("required filter")
)

const setArgPrefix = "set_"

// Expr is a raw SQL expression used as an update value, e.g. Expr("attempts + 1").
type Expr string

// IsUniqueViolation reports whether err was caused by a unique constraint.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}

// Repository maps T onto one table. Columns come from the db tags of T,
// embedded structs included.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	InsertColumns []string
	publisher     event.Publisher
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		InsertColumns: dbColumns(reflect.TypeOf(zero)),
		publisher:     event.Nop{},
	}
}

// WithPublisher makes the repository announce committed writes on publisher.
func (repo Repository[T]) WithPublisher(publisher event.Publisher) Repository[T] {
	if publisher != nil {
		repo.publisher = publisher
	}

	return repo
}

func (repo *Repository[T]) publish(ctx context.Context, op, id string, fields []string) {
	repo.publisher.Publish(ctx, event.Change{
		Entity: repo.entity,
		ID:     id,
		Op:     op,
		Fields: fields,
	})
}

func (repo *Repository[T]) newScope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, op))
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.newScope(ctx, "Insert")
	defer scope.End()

	query := repo.insertQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, model); err != nil {
		return repo.fail(scope, "insert data", err)
	}

	repo.publish(ctx, event.OpInsert, primaryValue(model, repo.primaryColumn), repo.InsertColumns)

	return nil
}

// InsertBulk writes all models in a single statement. Bulk writes are not announced.
func (repo *Repository[T]) InsertBulk(ctx context.Context, models []T) error {
	if len(models) == 0 {
		return nil
	}

	ctx, scope := repo.newScope(ctx, "InsertBulk")
	defer scope.End()

	query := repo.insertQuery()
	scope.SetAttributes(map[string]any{
		constant.OtelQueryAttributeKey: query,
		"db.rows":                      len(models),
	})

	if _, err := repo.db.Write.NamedExecContext(ctx, query, models); err != nil {
		return repo.fail(scope, "bulk insert data", err)
	}

	return nil
}

func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup) (T, error) {
	ctx, scope := repo.newScope(ctx, "Get")
	defer scope.End()

	where, args := buildWhere(filter)
	query := join("SELECT", repo.selectColumns(), "FROM", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var model T

	err := repo.read(ctx, query, args, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &model, args)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, error) {
	ctx, scope := repo.newScope(ctx, "GetAll")
	defer scope.End()

	where, args := buildWhere(filter)

	var ordering, pagination string

	if params.SortBy != "" && params.SortDir != "" {
		ordering = fmt.Sprintf("ORDER BY %s %s", params.SortBy, params.SortDir)
	}

	switch {
	case params.Page > 0 && params.Limit > 0:
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit
		pagination = "LIMIT :limit OFFSET :offset"
	case params.Limit > 0:
		args["limit"] = params.Limit
		pagination = "LIMIT :limit"
	}

	query := join("SELECT", repo.selectColumns(), "FROM", repo.table, where, ordering, pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var models []T

	err := repo.read(ctx, query, args, func(stmt *sqlx.NamedStmt) error {
		return stmt.SelectContext(ctx, &models, args)
	})
	if err != nil {
		return models, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.newScope(ctx, "Count")
	defer scope.End()

	where, args := buildWhere(filter)
	query := join(fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s", repo.table, repo.primaryColumn, repo.table), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	err := repo.read(ctx, query, args, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &count, args)
	})
	if err != nil {
		return 0, repo.fail(scope, "count data", err)
	}

	return count, nil
}

func (repo *Repository[T]) read(ctx context.Context, query string, args map[string]any, fn func(*sqlx.NamedStmt) error) error {
	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	return fn(stmt)
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	_, err := repo.DeleteCount(ctx, filter)

	return err
}

// DeleteCount deletes matching rows and returns how many were removed.
func (repo *Repository[T]) DeleteCount(ctx context.Context, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.newScope(ctx, "Delete")
	defer scope.End()

	where, args := buildWhere(filter)
	if where == "" {
		return 0, errRequiredFilter
	}

	query := join("DELETE FROM", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	affected, err := repo.exec(ctx, query, args)
	if err != nil {
		return 0, repo.fail(scope, "delete data", err)
	}

	if affected > 0 {
		repo.publish(ctx, event.OpDelete, argValue(args, repo.primaryColumn), nil)
	}

	return affected, nil
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	_, err := repo.UpdateCount(ctx, mod, filter)

	return err
}

// UpdateCount updates matching rows and returns how many changed.
func (repo *Repository[T]) UpdateCount(ctx context.Context, mod map[string]any, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.newScope(ctx, "Update")
	defer scope.End()

	query, args, fields, err := repo.buildUpdate(mod, filter)
	if err != nil {
		return 0, err
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	affected, err := repo.exec(ctx, query, args)
	if err != nil {
		return 0, repo.fail(scope, "update data", err)
	}

	if affected > 0 {
		repo.publish(ctx, event.OpUpdate, argValue(args, repo.primaryColumn), fields)
	}

	return affected, nil
}

// UpdateReturning applies mod to the single row matched by filter and returns
// the row as stored after the write. The boolean is false when nothing matched,
// which makes the filter act as a compare-and-set guard.
func (repo *Repository[T]) UpdateReturning(ctx context.Context, mod map[string]any, filter dto.FilterGroup) (T, bool, error) {
	ctx, scope := repo.newScope(ctx, "UpdateReturning")
	defer scope.End()

	var model T

	query, args, fields, err := repo.buildUpdate(mod, filter)
	if err != nil {
		return model, false, err
	}

	query = join(query, "RETURNING", strings.Join(repo.InsertColumns, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := sqlx.NamedQueryContext(ctx, repo.db.Write, query, args)
	if err != nil {
		return model, false, repo.fail(scope, "update data", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model, false, repo.fail(scope, "update data", err)
		}

		return model, false, nil
	}

	if err = rows.StructScan(&model); err != nil {
		return model, false, repo.fail(scope, "scan updated data", err)
	}

	repo.publish(ctx, event.OpUpdate, primaryValue(model, repo.primaryColumn), fields)

	return model, true, nil
}

func (repo *Repository[T]) exec(ctx context.Context, query string, args map[string]any) (int64, error) {
	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	return affected, nil
}

// buildUpdate renders an UPDATE statement. Set values are bound under a
// prefixed name so they never collide with filter arguments.
func (repo *Repository[T]) buildUpdate(mod map[string]any, filter dto.FilterGroup) (string, map[string]any, []string, error) {
	where, args := buildWhere(filter)
	if where == "" {
		return "", nil, nil, errRequiredFilter
	}

	fields := slices.Sorted(maps.Keys(mod))
	sets := make([]string, 0, len(fields))

	for _, col := range fields {
		if expr, ok := mod[col].(Expr); ok {
			sets = append(sets, fmt.Sprintf("%s = %s", col, expr))

			continue
		}

		sets = append(sets, fmt.Sprintf("%s = :%s%s", col, setArgPrefix, col))
		args[setArgPrefix+col] = mod[col]
	}

	return join("UPDATE", repo.table, "SET", strings.Join(sets, ", "), where), args, fields, nil
}

func (repo *Repository[T]) insertQuery() string {
	placeholders := make([]string, len(repo.InsertColumns))
	for i, col := range repo.InsertColumns {
		placeholders[i] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "))
}

func (repo *Repository[T]) selectColumns() string {
	columns := make([]string, len(repo.InsertColumns))
	for i, col := range repo.InsertColumns {
		columns[i] = repo.table + "." + col
	}

	return strings.Join(columns, ", ")
}

func buildWhere(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return "WHERE " + where, args
}

// join glues non-empty query fragments with single spaces.
func join(parts ...string) string {
	return strings.Join(slices.DeleteFunc(parts, func(part string) bool { return part == "" }), " ")
}

func dbColumns(typ reflect.Type) []string {
	var columns []string

	for i := range typ.NumField() {
		field := typ.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, dbColumns(field.Type)...)

			continue
		}

		if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
			columns = append(columns, tag)
		}
	}

	return columns
}

func argValue(args map[string]any, key string) string {
	value, ok := args[key]
	if !ok || value == nil {
		return ""
	}

	return fmt.Sprint(value)
}

func primaryValue(model any, primaryColumn string) string {
	val := reflect.ValueOf(model)
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return ""
		}

		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return ""
	}

	typ := val.Type()

	for i := range typ.NumField() {
		field := typ.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if id := primaryValue(val.Field(i).Interface(), primaryColumn); id != "" {
				return id
			}

			continue
		}

		if field.Tag.Get("db") == primaryColumn {
			return fmt.Sprint(val.Field(i).Interface())
		}
	}

	return ""
}
