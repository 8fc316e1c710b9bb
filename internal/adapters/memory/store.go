// Package memory - хранилище в памяти процесса. Исполняет те же query.Spec, что и postgres.
// Используется в тестах и при STORAGE_DRIVER=memory.
package memory

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/query"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// Store хранит все три таблицы. Репозитории ниже - его "представления" под разные порты.
type Store struct {
	mu         sync.RWMutex
	properties map[uuid.UUID]domain.PropertyRow
	inquiries  map[uuid.UUID]domain.InquiryRow
	profiles   map[uuid.UUID]domain.ProfileRow

	now  func() time.Time
	last time.Time
}

func NewStore() *Store {
	return &Store{
		properties: make(map[uuid.UUID]domain.PropertyRow),
		inquiries:  make(map[uuid.UUID]domain.InquiryRow),
		profiles:   make(map[uuid.UUID]domain.ProfileRow),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithClock подменяет часы (для тестов)
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// tick возвращает строго возрастающее время, чтобы сортировка по created_at была однозначной.
// Вызывается под s.mu.
func (s *Store) tick() time.Time {
	t := s.now()
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t
	return t
}

func (s *Store) ownerJoin(id uuid.UUID) *domain.ProfileJoin {
	profile, ok := s.profiles[id]
	if !ok {
		return nil
	}
	name, email := profile.Name, profile.Email
	return &domain.ProfileJoin{Name: &name, Email: &email}
}

type columnLookup func(col query.Column) (interface{}, error)

// matches проверяет строку на соответствие всем условиям (AND), внутри условия - OR
func matches(spec query.Spec, lookup columnLookup) (bool, error) {
	for _, cond := range spec.Conditions {
		ok := false
		for _, p := range cond {
			value, err := lookup(p.Column)
			if err != nil {
				return false, err
			}
			hit, err := evaluate(p, value)
			if err != nil {
				return false, err
			}
			if hit {
				ok = true
				break
			}
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func evaluate(p query.Predicate, value interface{}) (bool, error) {
	switch p.Op {
	case query.OpEq:
		return equal(value, p.Value), nil
	case query.OpGte, query.OpLte:
		left, lok := toFloat(value)
		right, rok := toFloat(p.Value)
		if !lok || !rok {
			return false, fmt.Errorf("column %q: %s needs numeric operands", p.Column, p.Op)
		}
		if p.Op == query.OpGte {
			return left >= right, nil
		}
		return left <= right, nil
	case query.OpContains:
		haystack, hok := value.(string)
		needle, nok := p.Value.(string)
		if !hok || !nok {
			return false, fmt.Errorf("column %q: contains needs string operands", p.Column)
		}
		// Caser хранит состояние, поэтому создаем его на каждый вызов
		fold := cases.Fold()
		return strings.Contains(fold.String(haystack), fold.String(needle)), nil
	case query.OpIn:
		list := reflect.ValueOf(p.Value)
		if list.Kind() != reflect.Slice {
			return false, fmt.Errorf("column %q: in needs a slice, got %T", p.Column, p.Value)
		}
		for i := 0; i < list.Len(); i++ {
			if equal(value, list.Index(i).Interface()) {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("unsupported operator %q", p.Op)
	}
}

func equal(a, b interface{}) bool {
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			return af == bf
		}
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// sortRows сортирует по колонке из spec.Order. Поддерживается только created_at:
// других сортировок компилятор не строит.
func sortRows[T any](rows []T, order query.Order, createdAt func(T) time.Time, id func(T) uuid.UUID) error {
	if order.Column == "" {
		return nil
	}
	if order.Column != query.ColumnCreatedAt {
		return fmt.Errorf("unsupported order column %q", order.Column)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		ti, tj := createdAt(rows[i]), createdAt(rows[j])
		if ti.Equal(tj) {
			return id(rows[i]).String() < id(rows[j]).String()
		}
		if order.Desc {
			return ti.After(tj)
		}
		return ti.Before(tj)
	})
	return nil
}
