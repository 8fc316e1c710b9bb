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

const inquirySelect = `
	SELECT
		i.id, i.property_id, i.renter_id, i.message, i.phone, i.status, i.created_at, i.updated_at,
		pr.name, pr.email
	FROM inquiries i
	LEFT JOIN profiles pr ON pr.id = i.renter_id`

type InquiryRepository struct {
	pool *pgxpool.Pool
}

func NewInquiryRepository(pool *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{pool: pool}
}

func scanInquiry(row pgx.Row) (domain.InquiryRecord, error) {
	var (
		r                       domain.InquiryRow
		renterName, renterEmail *string
	)
	err := row.Scan(
		&r.ID, &r.PropertyID, &r.RenterID, &r.Message, &r.Phone, &r.Status, &r.CreatedAt, &r.UpdatedAt,
		&renterName, &renterEmail,
	)
	if err != nil {
		return domain.InquiryRecord{}, err
	}
	return domain.InquiryRecord{Row: r, Renter: profileJoin(renterName, renterEmail)}, nil
}

func (r *InquiryRepository) Query(ctx context.Context, spec query.Spec) ([]domain.InquiryRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresInquiryRepository",
		"method":    "Query",
		"spec":      spec.String(),
	})

	if spec.Collection != query.CollectionInquiries {
		return nil, fmt.Errorf("postgres: unexpected collection %q", spec.Collection)
	}
	whereClause, orderClause, args, err := applySpec(spec, "i")
	if err != nil {
		repoLogger.Error("Failed to build query", err, nil)
		return nil, fmt.Errorf("failed to build inquiries query: %w", err)
	}

	sql := fmt.Sprintf("%s %s %s", inquirySelect, whereClause, orderClause)
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		repoLogger.Error("Failed to query inquiries", err, port.Fields{"query": sql})
		return nil, fmt.Errorf("failed to query inquiries: %w", err)
	}
	defer rows.Close()

	records := make([]domain.InquiryRecord, 0)
	for rows.Next() {
		rec, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inquiries: %w", err)
	}

	repoLogger.Debug("Query executed", port.Fields{"count": len(records)})
	return records, nil
}

func (r *InquiryRepository) Get(ctx context.Context, id uuid.UUID) (*domain.InquiryRecord, error) {
	rec, err := scanInquiry(r.pool.QueryRow(ctx, inquirySelect+" WHERE i.id = $1", id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("failed to get inquiry %s: %w", id, err)
	}
	return &rec, nil
}

func (r *InquiryRepository) Insert(ctx context.Context, values mapper.RowValues) (*domain.InquiryRecord, error) {
	sql, args := insertStatement("inquiries", values, "RETURNING id")
	var id uuid.UUID
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("failed to insert inquiry: %w", domain.ErrPropertyNotFound)
		}
		return nil, fmt.Errorf("failed to insert inquiry: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *InquiryRepository) Update(ctx context.Context, id uuid.UUID, values mapper.RowValues) (*domain.InquiryRecord, error) {
	sql, args := updateStatement("inquiries", id, values)
	var updated uuid.UUID
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("failed to update inquiry %s: %w", id, err)
	}
	return r.Get(ctx, updated)
}
