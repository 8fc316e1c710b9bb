package usecases_port

import (
	"context"

	"househunt-service/internal/core/domain"
)

type GetProfileUseCase interface {
	Execute(ctx context.Context, identity domain.Identity) (*domain.User, error)
}

type UpdateProfileUseCase interface {
	Execute(ctx context.Context, identity domain.Identity, patch domain.ProfilePatch) (*domain.User, error)
}

type GetDictionariesUseCase interface {
	Execute(ctx context.Context) (*domain.Dictionaries, error)
}
