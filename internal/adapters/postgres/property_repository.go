package postgres

import (
	"context"
	"errors"
	"fmt"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/mapper"
	"househunt-service/internal/core/port"
	"househunt-service/internal/core/query"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const propertySelect = `
	SELECT
		p.id, p.title, p.description, p.type, p.price,
		p.address, p.city, p.state, p.zip_code, p.latitude, p.longitude,
		p.bedrooms, p.bathrooms, p.area, p.amenities, p.images, p.owner_id,
		p.available, p.furnished, p.pet_friendly, p.parking, p.created_at, p.updated_at,
		pr.name, pr.email
	FROM properties p
	LEFT JOIN profiles pr ON pr.id = p.owner_id`

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

func scanProperty(row pgx.Row) (domain.PropertyRecord, error) {
	var (
		r                     domain.PropertyRow
		ownerName, ownerEmail *string
	)
	err := row.Scan(
		&r.ID, &r.Title, &r.Description, &r.Type, &r.Price,
		&r.Address, &r.City, &r.State, &r.ZipCode, &r.Latitude, &r.Longitude,
		&r.Bedrooms, &r.Bathrooms, &r.Area, &r.Amenities, &r.Images, &r.OwnerID,
		&r.Available, &r.Furnished, &r.PetFriendly, &r.Parking, &r.CreatedAt, &r.UpdatedAt,
		&ownerName, &ownerEmail,
	)
	if err != nil {
		return domain.PropertyRecord{}, err
	}
	return domain.PropertyRecord{Row: r, Owner: profileJoin(ownerName, ownerEmail)}, nil
}

// profileJoin - nil, если LEFT JOIN ничего не нашел
func profileJoin(name, email *string) *domain.ProfileJoin {
	if name == nil && email == nil {
		return nil
	}
	return &domain.ProfileJoin{Name: name, Email: email}
}

func (r *PropertyRepository) Query(ctx context.Context, spec query.Spec) ([]domain.PropertyRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresPropertyRepository",
		"method":    "Query",
		"spec":      spec.String(),
	})

	if spec.Collection != query.CollectionProperties {
		return nil, fmt.Errorf("postgres: unexpected collection %q", spec.Collection)
	}
	whereClause, orderClause, args, err := applySpec(spec, "p")
	if err != nil {
		repoLogger.Error("Failed to build query", err, nil)
		return nil, fmt.Errorf("failed to build properties query: %w", err)
	}

	sql := fmt.Sprintf("%s %s %s", propertySelect, whereClause, orderClause)
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, port.Fields{"query": sql})
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	records := make([]domain.PropertyRecord, 0)
	for rows.Next() {
		rec, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate properties: %w", err)
	}

	repoLogger.Debug("Query executed", port.Fields{"count": len(records)})
	return records, nil
}

func (r *PropertyRepository) QueryIDs(ctx context.Context, spec query.Spec) ([]uuid.UUID, error) {
	if spec.Collection != query.CollectionProperties {
		return nil, fmt.Errorf("postgres: unexpected collection %q", spec.Collection)
	}
	whereClause, orderClause, args, err := applySpec(spec, "p")
	if err != nil {
		return nil, fmt.Errorf("failed to build properties query: %w", err)
	}

	rows, err := r.pool.Query(ctx, fmt.Sprintf("SELECT p.id FROM properties p %s %s", whereClause, orderClause), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query property ids: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan property id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PropertyRepository) Get(ctx context.Context, id uuid.UUID) (*domain.PropertyRecord, error) {
	rec, err := scanProperty(r.pool.QueryRow(ctx, propertySelect+" WHERE p.id = $1", id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property %s: %w", id, err)
	}
	return &rec, nil
}

func (r *PropertyRepository) Insert(ctx context.Context, values mapper.RowValues) (*domain.PropertyRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresPropertyRepository",
		"method":    "Insert",
	})

	sql, args := insertStatement("properties", values, "RETURNING id")
	var id uuid.UUID
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		repoLogger.Error("Failed to insert property", err, nil)
		return nil, fmt.Errorf("failed to insert property: %w", err)
	}
	repoLogger.Debug("Property inserted", port.Fields{"property_id": id.String()})
	return r.Get(ctx, id)
}

func (r *PropertyRepository) Update(ctx context.Context, id uuid.UUID, values mapper.RowValues) (*domain.PropertyRecord, error) {
	sql, args := updateStatement("properties", id, values)
	var updated uuid.UUID
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to update property %s: %w", id, err)
	}
	return r.Get(ctx, updated)
}

// Delete - обращения удаляются каскадом по внешнему ключу
func (r *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM properties WHERE id = $1", id.String())
	if err != nil {
		return fmt.Errorf("failed to delete property %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}
