package port

import (
	"context"

	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/mapper"
	"househunt-service/internal/core/query"

	"github.com/google/uuid"
)

// PropertyStoragePort - внешнее хранилище объявлений. Исполняет query.Spec
// и возвращает сырые строки вместе с профилем владельца.
type PropertyStoragePort interface {
	Query(ctx context.Context, spec query.Spec) ([]domain.PropertyRecord, error)
	QueryIDs(ctx context.Context, spec query.Spec) ([]uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.PropertyRecord, error)
	Insert(ctx context.Context, values mapper.RowValues) (*domain.PropertyRecord, error)
	Update(ctx context.Context, id uuid.UUID, values mapper.RowValues) (*domain.PropertyRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type InquiryStoragePort interface {
	Query(ctx context.Context, spec query.Spec) ([]domain.InquiryRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.InquiryRecord, error)
	Insert(ctx context.Context, values mapper.RowValues) (*domain.InquiryRecord, error)
	Update(ctx context.Context, id uuid.UUID, values mapper.RowValues) (*domain.InquiryRecord, error)
}

type ProfileStoragePort interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.ProfileRow, error)
	// Upsert создает профиль при первом обращении пользователя. Существующая роль не перезаписывается.
	Upsert(ctx context.Context, values mapper.RowValues) (*domain.ProfileRow, error)
	Update(ctx context.Context, id uuid.UUID, values mapper.RowValues) (*domain.ProfileRow, error)
}
