package usecases_port

import (
	"context"

	"househunt-service/internal/core/domain"

	"github.com/google/uuid"
)

type FetchPropertiesUseCase interface {
	Execute(ctx context.Context, filters *domain.SearchFilters) ([]domain.Property, error)
}

type GetPropertyUseCase interface {
	Execute(ctx context.Context, propertyID uuid.UUID) (*domain.Property, error)
}

type FetchOwnerPropertiesUseCase interface {
	Execute(ctx context.Context, identity domain.Identity) ([]domain.Property, error)
}

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, identity domain.Identity, input domain.NewProperty) (*domain.Property, error)
}

type UpdatePropertyUseCase interface {
	Execute(ctx context.Context, identity domain.Identity, propertyID uuid.UUID, patch domain.PropertyPatch) (*domain.Property, error)
}

type DeletePropertyUseCase interface {
	Execute(ctx context.Context, identity domain.Identity, propertyID uuid.UUID) error
}
