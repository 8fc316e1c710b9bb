package postgres

import (
	"errors"
	"fmt"
	"strings"

	"househunt-service/internal/core/mapper"
	"househunt-service/internal/core/query"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgForeignKeyViolation = "23503"

// insertStatement собирает INSERT из фрагмента строки, suffix дописывается в конец
// ("RETURNING id", "ON CONFLICT ..."). Порядок колонок детерминирован (RowValues.Columns сортирует).
func insertStatement(table string, values mapper.RowValues, suffix string) (string, []interface{}) {
	cols := values.Columns()
	names := make([]string, 0, len(cols))
	placeholders := make([]string, 0, len(cols))
	args := make([]interface{}, 0, len(cols))
	for i, col := range cols {
		names = append(names, string(col))
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, sqlValue(values[col]))
	}
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) %s",
		table, strings.Join(names, ", "), strings.Join(placeholders, ", "), suffix)
	return sql, args
}

// updateStatement собирает UPDATE ... SET. updated_at всегда выставляет сама БД.
func updateStatement(table string, id uuid.UUID, values mapper.RowValues) (string, []interface{}) {
	cols := values.Columns()
	sets := make([]string, 0, len(cols)+1)
	args := make([]interface{}, 0, len(cols)+1)
	for _, col := range cols {
		if col == query.ColumnUpdatedAt || col == query.ColumnCreatedAt {
			continue
		}
		args = append(args, sqlValue(values[col]))
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id.String())
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING id",
		table, strings.Join(sets, ", "), len(args))
	return sql, args
}

// sqlValue приводит значения фрагмента к тому, что понимает pgx
func sqlValue(v interface{}) interface{} {
	switch typed := v.(type) {
	case uuid.UUID:
		return typed.String()
	default:
		return v
	}
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
