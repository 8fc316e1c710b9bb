package memory

import (
	"context"
	"fmt"
	"time"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/mapper"
	"househunt-service/internal/core/port"
	"househunt-service/internal/core/query"

	"github.com/google/uuid"
)

type InquiryRepository struct {
	store *Store
}

func NewInquiryRepository(store *Store) *InquiryRepository {
	return &InquiryRepository{store: store}
}

func inquiryColumn(row domain.InquiryRow) columnLookup {
	return func(col query.Column) (interface{}, error) {
		switch col {
		case query.ColumnID:
			return row.ID, nil
		case query.ColumnPropertyID:
			return row.PropertyID, nil
		case query.ColumnRenterID:
			return row.RenterID, nil
		case query.ColumnStatus:
			return row.Status, nil
		case query.ColumnCreatedAt:
			return row.CreatedAt, nil
		default:
			return nil, fmt.Errorf("column %q is not filterable in inquiries", col)
		}
	}
}

func (r *InquiryRepository) Query(ctx context.Context, spec query.Spec) ([]domain.InquiryRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "MemoryInquiryRepository",
		"method":    "Query",
		"spec":      spec.String(),
	})

	if spec.Collection != query.CollectionInquiries {
		return nil, fmt.Errorf("memory: unexpected collection %q", spec.Collection)
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows := make([]domain.InquiryRow, 0)
	for _, row := range r.store.inquiries {
		ok, err := matches(spec, inquiryColumn(row))
		if err != nil {
			repoLogger.Error("Failed to evaluate spec", err, nil)
			return nil, fmt.Errorf("failed to query inquiries: %w", err)
		}
		if ok {
			rows = append(rows, row)
		}
	}
	if err := sortRows(rows, spec.Order,
		func(row domain.InquiryRow) time.Time { return row.CreatedAt },
		func(row domain.InquiryRow) uuid.UUID { return row.ID },
	); err != nil {
		return nil, fmt.Errorf("failed to query inquiries: %w", err)
	}

	records := make([]domain.InquiryRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, r.record(row))
	}
	repoLogger.Debug("Query executed", port.Fields{"count": len(records)})
	return records, nil
}

func (r *InquiryRepository) Get(ctx context.Context, id uuid.UUID) (*domain.InquiryRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	row, ok := r.store.inquiries[id]
	if !ok {
		return nil, domain.ErrInquiryNotFound
	}
	rec := r.record(row)
	return &rec, nil
}

func (r *InquiryRepository) Insert(ctx context.Context, values mapper.RowValues) (*domain.InquiryRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	row := domain.InquiryRow{ID: uuid.New()}
	if err := mapper.ApplyInquiryValues(&row, mapper.WithTimestamps(values, r.store.tick())); err != nil {
		return nil, fmt.Errorf("failed to insert inquiry: %w", err)
	}
	// внешний ключ на properties
	if _, ok := r.store.properties[row.PropertyID]; !ok {
		return nil, fmt.Errorf("failed to insert inquiry: %w", domain.ErrPropertyNotFound)
	}
	r.store.inquiries[row.ID] = row

	rec := r.record(row)
	return &rec, nil
}

func (r *InquiryRepository) Update(ctx context.Context, id uuid.UUID, values mapper.RowValues) (*domain.InquiryRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	row, ok := r.store.inquiries[id]
	if !ok {
		return nil, domain.ErrInquiryNotFound
	}
	if err := mapper.ApplyInquiryValues(&row, mapper.Touched(values, r.store.tick())); err != nil {
		return nil, fmt.Errorf("failed to update inquiry %s: %w", id, err)
	}
	r.store.inquiries[id] = row

	rec := r.record(row)
	return &rec, nil
}

func (r *InquiryRepository) record(row domain.InquiryRow) domain.InquiryRecord {
	return domain.InquiryRecord{Row: row, Renter: r.store.ownerJoin(row.RenterID)}
}
