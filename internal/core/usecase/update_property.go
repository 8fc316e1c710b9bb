package usecase

import (
	"context"
	"fmt"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/mapper"
	"househunt-service/internal/core/port"

	"github.com/google/uuid"
)

type UpdatePropertyUseCase struct {
	storage port.PropertyStoragePort
}

func NewUpdatePropertyUseCase(storage port.PropertyStoragePort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{storage: storage}
}

// Execute применяет частичное обновление. Непереданные поля остаются как есть.
func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, identity domain.Identity, propertyID uuid.UUID, patch domain.PropertyPatch) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"user_id":     identity.UserID.String(),
		"property_id": propertyID.String(),
	})

	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	if err := patch.Validate(); err != nil {
		ucLogger.Warn("Invalid property patch", port.Fields{"reason": err.Error()})
		return nil, err
	}

	ucLogger.Info("Use case started", nil)

	current, err := loadOwnedProperty(ctx, uc.storage, identity, propertyID)
	if err != nil {
		ucLogger.Warn("Property cannot be modified by caller", port.Fields{"reason": err.Error()})
		return nil, err
	}

	values := mapper.PropertyPatchValues(patch)
	if values.IsEmpty() {
		ucLogger.Info("Empty patch, nothing to update", nil)
		property := mapper.PropertyFromRow(current.Row, current.Owner)
		return &property, nil
	}

	record, err := uc.storage.Update(ctx, propertyID, values)
	if err != nil {
		ucLogger.Error("Failed to update property", err, nil)
		return nil, err
	}

	property := mapper.PropertyFromRow(record.Row, record.Owner)
	ucLogger.Info("Use case finished successfully", port.Fields{"updated_columns": len(values)})
	return &property, nil
}

// loadOwnedProperty возвращает объявление, если вызывающий - его владелец
func loadOwnedProperty(ctx context.Context, storage port.PropertyStoragePort, identity domain.Identity, propertyID uuid.UUID) (*domain.PropertyRecord, error) {
	record, err := storage.Get(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if record.Row.OwnerID != identity.UserID {
		return nil, fmt.Errorf("%w: property %s belongs to another owner", domain.ErrForbidden, propertyID)
	}
	return record, nil
}
