package usecase

import (
	"context"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/mapper"
	"househunt-service/internal/core/port"
	"househunt-service/internal/core/query"
)

type FetchPropertiesUseCase struct {
	storage port.PropertyStoragePort
}

func NewFetchPropertiesUseCase(storage port.PropertyStoragePort) *FetchPropertiesUseCase {
	return &FetchPropertiesUseCase{storage: storage}
}

// Execute возвращает доступные объявления, самые новые первыми. filters может быть nil.
func (uc *FetchPropertiesUseCase) Execute(ctx context.Context, filters *domain.SearchFilters) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FetchProperties",
		"filters":  filters,
	})

	ucLogger.Info("Use case started", nil)

	spec := query.CompilePropertyFilters(filters)
	records, err := uc.storage.Query(ctx, spec)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	properties := mapper.PropertiesFromRecords(records)
	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(properties)})
	return properties, nil
}
