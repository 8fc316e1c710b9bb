package usecase

import (
	"context"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/mapper"
	"househunt-service/internal/core/port"

	"github.com/google/uuid"
)

type GetPropertyUseCase struct {
	storage port.PropertyStoragePort
}

func NewGetPropertyUseCase(storage port.PropertyStoragePort) *GetPropertyUseCase {
	return &GetPropertyUseCase{storage: storage}
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, propertyID uuid.UUID) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetProperty",
		"property_id": propertyID.String(),
	})

	ucLogger.Info("Use case started", nil)

	record, err := uc.storage.Get(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Failed to get property", err, nil)
		return nil, err
	}

	property := mapper.PropertyFromRow(record.Row, record.Owner)
	ucLogger.Info("Use case finished successfully", nil)
	return &property, nil
}
