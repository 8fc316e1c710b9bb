package postgres

import (
	"context"
	"errors"
	"fmt"

	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/mapper"
	"househunt-service/internal/core/query"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileSelect = `
	SELECT id, name, email, role, phone, avatar_url, verified, created_at, updated_at
	FROM profiles
	WHERE id = $1`

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) Get(ctx context.Context, id uuid.UUID) (*domain.ProfileRow, error) {
	var p domain.ProfileRow
	err := r.pool.QueryRow(ctx, profileSelect, id.String()).Scan(
		&p.ID, &p.Name, &p.Email, &p.Role, &p.Phone, &p.AvatarURL, &p.Verified, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile %s: %w", id, err)
	}
	return &p, nil
}

// Upsert создает профиль, если его еще нет. Существующий профиль не меняется.
func (r *ProfileRepository) Upsert(ctx context.Context, values mapper.RowValues) (*domain.ProfileRow, error) {
	id, ok := values[query.ColumnID].(uuid.UUID)
	if !ok {
		return nil, fmt.Errorf("failed to upsert profile: id is required")
	}

	sql, args := insertStatement("profiles", values, "ON CONFLICT (id) DO NOTHING")
	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return nil, fmt.Errorf("failed to upsert profile %s: %w", id, err)
	}
	return r.Get(ctx, id)
}

func (r *ProfileRepository) Update(ctx context.Context, id uuid.UUID, values mapper.RowValues) (*domain.ProfileRow, error) {
	sql, args := updateStatement("profiles", id, values)
	var updated uuid.UUID
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to update profile %s: %w", id, err)
	}
	return r.Get(ctx, updated)
}
