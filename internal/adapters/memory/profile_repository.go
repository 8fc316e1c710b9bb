package memory

import (
	"context"
	"fmt"

	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/mapper"
	"househunt-service/internal/core/query"

	"github.com/google/uuid"
)

type ProfileRepository struct {
	store *Store
}

func NewProfileRepository(store *Store) *ProfileRepository {
	return &ProfileRepository{store: store}
}

func (r *ProfileRepository) Get(ctx context.Context, id uuid.UUID) (*domain.ProfileRow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	row, ok := r.store.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &row, nil
}

// Upsert не трогает уже существующий профиль
func (r *ProfileRepository) Upsert(ctx context.Context, values mapper.RowValues) (*domain.ProfileRow, error) {
	id, ok := values[query.ColumnID].(uuid.UUID)
	if !ok {
		return nil, fmt.Errorf("failed to upsert profile: id is required")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if row, exists := r.store.profiles[id]; exists {
		return &row, nil
	}
	var row domain.ProfileRow
	if err := mapper.ApplyProfileValues(&row, mapper.WithTimestamps(values, r.store.tick())); err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	r.store.profiles[id] = row
	return &row, nil
}

func (r *ProfileRepository) Update(ctx context.Context, id uuid.UUID, values mapper.RowValues) (*domain.ProfileRow, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	row, ok := r.store.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	if err := mapper.ApplyProfileValues(&row, mapper.Touched(values, r.store.tick())); err != nil {
		return nil, fmt.Errorf("failed to update profile %s: %w", id, err)
	}
	r.store.profiles[id] = row
	return &row, nil
}
