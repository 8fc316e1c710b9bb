package usecase

import (
	"context"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/mapper"
	"househunt-service/internal/core/port"
	"househunt-service/internal/core/query"
)

// FetchOwnerPropertiesUseCase - кабинет владельца: все его объявления, включая недоступные
type FetchOwnerPropertiesUseCase struct {
	storage port.PropertyStoragePort
}

func NewFetchOwnerPropertiesUseCase(storage port.PropertyStoragePort) *FetchOwnerPropertiesUseCase {
	return &FetchOwnerPropertiesUseCase{storage: storage}
}

func (uc *FetchOwnerPropertiesUseCase) Execute(ctx context.Context, identity domain.Identity) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FetchOwnerProperties",
		"user_id":  identity.UserID.String(),
	})

	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	ucLogger.Info("Use case started", nil)

	records, err := uc.storage.Query(ctx, query.OwnedPropertiesSpec(identity.UserID))
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	properties := mapper.PropertiesFromRecords(records)
	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(properties)})
	return properties, nil
}
