// Package query описывает условия выборки независимо от хранилища.
// Spec собирается компилятором фильтров, а исполняют его адаптеры postgres и memory.
package query

import (
	"fmt"
	"strings"
)

type Collection string

const (
	CollectionProperties Collection = "properties"
	CollectionInquiries  Collection = "inquiries"
)

type Op string

const (
	OpEq       Op = "eq"
	OpGte      Op = "gte"
	OpLte      Op = "lte"
	OpContains Op = "contains" // подстрока без учета регистра
	OpIn       Op = "in"
)

type Predicate struct {
	Column Column
	Op     Op
	Value  interface{}
}

func (p Predicate) String() string {
	return fmt.Sprintf("%s %s %v", p.Column, p.Op, p.Value)
}

func Eq(col Column, v interface{}) Predicate {
	return Predicate{Column: col, Op: OpEq, Value: v}
}

func Gte(col Column, v interface{}) Predicate {
	return Predicate{Column: col, Op: OpGte, Value: v}
}

func Lte(col Column, v interface{}) Predicate {
	return Predicate{Column: col, Op: OpLte, Value: v}
}

func Contains(col Column, s string) Predicate {
	return Predicate{Column: col, Op: OpContains, Value: s}
}

func In(col Column, values interface{}) Predicate {
	return Predicate{Column: col, Op: OpIn, Value: values}
}

// Condition - дизъюнкция предикатов. Условия в Spec объединяются через AND.
type Condition []Predicate

func (c Condition) String() string {
	parts := make([]string, 0, len(c))
	for _, p := range c {
		parts = append(parts, p.String())
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

type Order struct {
	Column Column
	Desc   bool
}

type Spec struct {
	Collection Collection
	Conditions []Condition
	Order      Order
}

func New(collection Collection) *Spec {
	return &Spec{Collection: collection}
}

// Where добавляет условие. Несколько предикатов в одном вызове объединяются через OR.
func (s *Spec) Where(anyOf ...Predicate) *Spec {
	if len(anyOf) == 0 {
		return s
	}
	s.Conditions = append(s.Conditions, Condition(anyOf))
	return s
}

func (s *Spec) OrderBy(col Column, desc bool) *Spec {
	s.Order = Order{Column: col, Desc: desc}
	return s
}

func (s Spec) String() string {
	parts := make([]string, 0, len(s.Conditions))
	for _, c := range s.Conditions {
		parts = append(parts, c.String())
	}
	dir := "ASC"
	if s.Order.Desc {
		dir = "DESC"
	}
	return fmt.Sprintf("%s WHERE %s ORDER BY %s %s", s.Collection, strings.Join(parts, " AND "), s.Order.Column, dir)
}
