package port

import (
	"context"
	"time"

	"househunt-service/internal/core/domain"
)

// TokenServicePort - источник идентичности вызывающего
type TokenServicePort interface {
	ValidateToken(ctx context.Context, token string) (*domain.Identity, error)
	GenerateToken(ctx context.Context, identity domain.Identity, ttl time.Duration) (string, error)
}
