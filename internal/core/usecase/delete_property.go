package usecase

import (
	"context"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/port"

	"github.com/google/uuid"
)

type DeletePropertyUseCase struct {
	storage port.PropertyStoragePort
}

func NewDeletePropertyUseCase(storage port.PropertyStoragePort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{storage: storage}
}

// Execute - жесткое удаление. Для снятия с публикации есть available=false.
func (uc *DeletePropertyUseCase) Execute(ctx context.Context, identity domain.Identity, propertyID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"user_id":     identity.UserID.String(),
		"property_id": propertyID.String(),
	})

	if err := requireIdentity(identity); err != nil {
		return err
	}

	ucLogger.Info("Use case started", nil)

	if _, err := loadOwnedProperty(ctx, uc.storage, identity, propertyID); err != nil {
		ucLogger.Warn("Property cannot be deleted by caller", port.Fields{"reason": err.Error()})
		return err
	}

	if err := uc.storage.Delete(ctx, propertyID); err != nil {
		ucLogger.Error("Failed to delete property", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
