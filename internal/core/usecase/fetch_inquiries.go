package usecase

import (
	"context"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/mapper"
	"househunt-service/internal/core/port"
	"househunt-service/internal/core/query"
)

type FetchInquiriesUseCase struct {
	properties port.PropertyStoragePort
	inquiries  port.InquiryStoragePort
}

func NewFetchInquiriesUseCase(properties port.PropertyStoragePort, inquiries port.InquiryStoragePort) *FetchInquiriesUseCase {
	return &FetchInquiriesUseCase{properties: properties, inquiries: inquiries}
}

// Execute - чтение в два шага: сначала id объявлений пользователя, потом обращения
// (созданные им самим или по его объявлениям).
func (uc *FetchInquiriesUseCase) Execute(ctx context.Context, identity domain.Identity) ([]domain.Inquiry, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FetchInquiries",
		"user_id":  identity.UserID.String(),
	})

	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	ucLogger.Info("Use case started", nil)

	ownedIDs, err := uc.properties.QueryIDs(ctx, query.OwnedPropertiesSpec(identity.UserID))
	if err != nil {
		ucLogger.Error("Failed to resolve owned properties", err, nil)
		return nil, err
	}
	ucLogger.Debug("Owned properties resolved", port.Fields{"owned_count": len(ownedIDs)})

	records, err := uc.inquiries.Query(ctx, query.CompileInquiryVisibility(identity.UserID, ownedIDs))
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	inquiries := mapper.InquiriesFromRecords(records)
	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(inquiries)})
	return inquiries, nil
}
