// Package mapper переводит строки хранилища в модели для UI и обратно.
package mapper

import (
	"sort"

	"househunt-service/internal/core/query"
)

// RowValues - фрагмент строки для записи. Содержит только переданные поля:
// отсутствие ключа значит "не трогать", nil-значение значит "записать NULL".
type RowValues map[query.Column]interface{}

func (v RowValues) Has(col query.Column) bool {
	_, ok := v[col]
	return ok
}

// Columns возвращает колонки в стабильном порядке, чтобы SQL был детерминированным
func (v RowValues) Columns() []query.Column {
	cols := make([]query.Column, 0, len(v))
	for col := range v {
		cols = append(cols, col)
	}
	sort.Slice(cols, func(i, j int) bool { return cols[i] < cols[j] })
	return cols
}

func (v RowValues) IsEmpty() bool {
	return len(v) == 0
}
