package postgres

import (
	"fmt"
	"strings"

	"househunt-service/internal/core/query"

	"github.com/google/uuid"
)

// Колонки, по которым разрешено фильтровать и сортировать. Имена колонок попадают в SQL как есть,
// поэтому все, чего нет в списке, отклоняется.
var filterableColumns = map[query.Collection]map[query.Column]struct{}{
	query.CollectionProperties: columnSet(
		query.ColumnID, query.ColumnAvailable, query.ColumnCity, query.ColumnState, query.ColumnPrice,
		query.ColumnBedrooms, query.ColumnBathrooms, query.ColumnArea, query.ColumnType,
		query.ColumnFurnished, query.ColumnPetFriendly, query.ColumnParking, query.ColumnOwnerID,
		query.ColumnCreatedAt,
	),
	query.CollectionInquiries: columnSet(
		query.ColumnID, query.ColumnPropertyID, query.ColumnRenterID, query.ColumnStatus, query.ColumnCreatedAt,
	),
}

func columnSet(cols ...query.Column) map[query.Column]struct{} {
	set := make(map[query.Column]struct{}, len(cols))
	for _, c := range cols {
		set[c] = struct{}{}
	}
	return set
}

type queryBuilder struct {
	alias      string
	allowed    map[query.Column]struct{}
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder(collection query.Collection, alias string) *queryBuilder {
	return &queryBuilder{
		alias:      alias,
		allowed:    filterableColumns[collection],
		conditions: make([]string, 0),
		args:       make([]interface{}, 0),
		argId:      1,
	}
}

func (qb *queryBuilder) column(col query.Column) (string, error) {
	if _, ok := qb.allowed[col]; !ok {
		return "", fmt.Errorf("column %q is not filterable", col)
	}
	return qb.alias + "." + string(col), nil
}

func (qb *queryBuilder) bind(format string, field string, arg interface{}) string {
	s := fmt.Sprintf(format, field, qb.argId)
	qb.args = append(qb.args, sqlValue(arg))
	qb.argId++
	return s
}

func (qb *queryBuilder) predicate(p query.Predicate) (string, error) {
	field, err := qb.column(p.Column)
	if err != nil {
		return "", err
	}
	switch p.Op {
	case query.OpEq:
		return qb.bind("%s = $%d", field, p.Value), nil
	case query.OpGte:
		return qb.bind("%s >= $%d", field, p.Value), nil
	case query.OpLte:
		return qb.bind("%s <= $%d", field, p.Value), nil
	case query.OpContains:
		needle, ok := p.Value.(string)
		if !ok {
			return "", fmt.Errorf("column %q: contains needs a string, got %T", p.Column, p.Value)
		}
		return qb.bind("%s ILIKE $%d", field, "%"+escapeLike(needle)+"%"), nil
	case query.OpIn:
		switch values := p.Value.(type) {
		case []uuid.UUID:
			ids := make([]string, 0, len(values))
			for _, id := range values {
				ids = append(ids, id.String())
			}
			return qb.bind("%s = ANY($%d::uuid[])", field, ids), nil
		case []string:
			return qb.bind("%s = ANY($%d)", field, values), nil
		default:
			return "", fmt.Errorf("column %q: unsupported IN list %T", p.Column, p.Value)
		}
	default:
		return "", fmt.Errorf("unsupported operator %q", p.Op)
	}
}

// addCondition добавляет условие; несколько предикатов внутри объединяются через OR
func (qb *queryBuilder) addCondition(cond query.Condition) error {
	parts := make([]string, 0, len(cond))
	for _, p := range cond {
		s, err := qb.predicate(p)
		if err != nil {
			return err
		}
		parts = append(parts, s)
	}
	switch len(parts) {
	case 0:
		return nil
	case 1:
		qb.conditions = append(qb.conditions, parts[0])
	default:
		qb.conditions = append(qb.conditions, "("+strings.Join(parts, " OR ")+")")
	}
	return nil
}

func (qb *queryBuilder) orderBy(order query.Order) (string, error) {
	if order.Column == "" {
		return "", nil
	}
	field, err := qb.column(order.Column)
	if err != nil {
		return "", err
	}
	dir := "ASC"
	if order.Desc {
		dir = "DESC"
	}
	// id как второй ключ дает стабильный порядок при совпадающем времени
	return fmt.Sprintf("ORDER BY %s %s, %s.id ASC", field, dir, qb.alias), nil
}

func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applySpec переводит query.Spec в WHERE и ORDER BY для таблицы с алиасом alias
func applySpec(spec query.Spec, alias string) (string, string, []interface{}, error) {
	qb := newQueryBuilder(spec.Collection, alias)
	if qb.allowed == nil {
		return "", "", nil, fmt.Errorf("unknown collection %q", spec.Collection)
	}
	for _, cond := range spec.Conditions {
		if err := qb.addCondition(cond); err != nil {
			return "", "", nil, err
		}
	}
	orderClause, err := qb.orderBy(spec.Order)
	if err != nil {
		return "", "", nil, err
	}
	whereClause, args := qb.build()
	return whereClause, orderClause, args, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
