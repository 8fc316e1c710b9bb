package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/mapper"
	"househunt-service/internal/core/port"
	"househunt-service/internal/core/query"

	"github.com/google/uuid"
)

type PropertyRepository struct {
	store *Store
}

func NewPropertyRepository(store *Store) *PropertyRepository {
	return &PropertyRepository{store: store}
}

func propertyColumn(row domain.PropertyRow) columnLookup {
	return func(col query.Column) (interface{}, error) {
		switch col {
		case query.ColumnID:
			return row.ID, nil
		case query.ColumnAvailable:
			return row.Available, nil
		case query.ColumnCity:
			return row.City, nil
		case query.ColumnState:
			return row.State, nil
		case query.ColumnPrice:
			return row.Price, nil
		case query.ColumnBedrooms:
			return row.Bedrooms, nil
		case query.ColumnBathrooms:
			return row.Bathrooms, nil
		case query.ColumnArea:
			return row.Area, nil
		case query.ColumnType:
			return row.Type, nil
		case query.ColumnFurnished:
			return row.Furnished, nil
		case query.ColumnPetFriendly:
			return row.PetFriendly, nil
		case query.ColumnParking:
			return row.Parking, nil
		case query.ColumnOwnerID:
			return row.OwnerID, nil
		case query.ColumnCreatedAt:
			return row.CreatedAt, nil
		default:
			return nil, fmt.Errorf("column %q is not filterable in properties", col)
		}
	}
}

func (r *PropertyRepository) Query(ctx context.Context, spec query.Spec) ([]domain.PropertyRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "MemoryPropertyRepository",
		"method":    "Query",
		"spec":      spec.String(),
	})

	if spec.Collection != query.CollectionProperties {
		return nil, fmt.Errorf("memory: unexpected collection %q", spec.Collection)
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows := make([]domain.PropertyRow, 0)
	for _, row := range r.store.properties {
		ok, err := matches(spec, propertyColumn(row))
		if err != nil {
			repoLogger.Error("Failed to evaluate spec", err, nil)
			return nil, fmt.Errorf("failed to query properties: %w", err)
		}
		if ok {
			rows = append(rows, row)
		}
	}
	if err := sortRows(rows, spec.Order,
		func(row domain.PropertyRow) time.Time { return row.CreatedAt },
		func(row domain.PropertyRow) uuid.UUID { return row.ID },
	); err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}

	records := make([]domain.PropertyRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, r.record(row))
	}
	repoLogger.Debug("Query executed", port.Fields{"count": len(records)})
	return records, nil
}

func (r *PropertyRepository) QueryIDs(ctx context.Context, spec query.Spec) ([]uuid.UUID, error) {
	records, err := r.Query(ctx, spec)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.Row.ID)
	}
	return ids, nil
}

func (r *PropertyRepository) Get(ctx context.Context, id uuid.UUID) (*domain.PropertyRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	row, ok := r.store.properties[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	rec := r.record(row)
	return &rec, nil
}

func (r *PropertyRepository) Insert(ctx context.Context, values mapper.RowValues) (*domain.PropertyRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	row := domain.PropertyRow{ID: uuid.New()}
	if err := mapper.ApplyPropertyValues(&row, mapper.WithTimestamps(values, r.store.tick())); err != nil {
		return nil, fmt.Errorf("failed to insert property: %w", err)
	}
	row.Amenities = slices.Clone(row.Amenities)
	row.Images = slices.Clone(row.Images)
	r.store.properties[row.ID] = row

	rec := r.record(row)
	return &rec, nil
}

func (r *PropertyRepository) Update(ctx context.Context, id uuid.UUID, values mapper.RowValues) (*domain.PropertyRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	row, ok := r.store.properties[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	if err := mapper.ApplyPropertyValues(&row, mapper.Touched(values, r.store.tick())); err != nil {
		return nil, fmt.Errorf("failed to update property %s: %w", id, err)
	}
	row.Amenities = slices.Clone(row.Amenities)
	row.Images = slices.Clone(row.Images)
	r.store.properties[id] = row

	rec := r.record(row)
	return &rec, nil
}

// Delete удаляет объявление вместе с обращениями по нему (как ON DELETE CASCADE)
func (r *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.properties[id]; !ok {
		return domain.ErrPropertyNotFound
	}
	delete(r.store.properties, id)
	for inqID, inq := range r.store.inquiries {
		if inq.PropertyID == id {
			delete(r.store.inquiries, inqID)
		}
	}
	return nil
}

// record вызывается под блокировкой store.mu
func (r *PropertyRepository) record(row domain.PropertyRow) domain.PropertyRecord {
	row.Amenities = slices.Clone(row.Amenities)
	row.Images = slices.Clone(row.Images)
	return domain.PropertyRecord{Row: row, Owner: r.store.ownerJoin(row.OwnerID)}
}
