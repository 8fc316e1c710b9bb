package domain

import (
	"bytes"
	"encoding/json"
)

// Nullable хранит три состояния JSON-поля: отсутствует, явный null, значение.
// Для PATCH-запросов это важно: отсутствующее поле не должно затирать данные.
type Nullable[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: v}
}

func NullOf[T any]() Nullable[T] {
	return Nullable[T]{Set: true, Null: true}
}

// UnmarshalJSON вызывается только если ключ присутствует в документе.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Null = true
		var zero T
		n.Value = zero
		return nil
	}
	n.Null = false
	return json.Unmarshal(data, &n.Value)
}

// Ptr возвращает значение или nil для null/отсутствующего поля.
func (n Nullable[T]) Ptr() *T {
	if !n.Set || n.Null {
		return nil
	}
	v := n.Value
	return &v
}
