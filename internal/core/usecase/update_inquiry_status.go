package usecase

import (
	"context"
	"fmt"
	"time"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/mapper"
	"househunt-service/internal/core/port"

	"github.com/google/uuid"
)

type UpdateInquiryStatusUseCase struct {
	properties port.PropertyStoragePort
	inquiries  port.InquiryStoragePort
	events     port.InquiryEventsPort
}

func NewUpdateInquiryStatusUseCase(properties port.PropertyStoragePort, inquiries port.InquiryStoragePort,
	events port.InquiryEventsPort) *UpdateInquiryStatusUseCase {
	return &UpdateInquiryStatusUseCase{properties: properties, inquiries: inquiries, events: events}
}

// Execute меняет статус обращения. Разрешено владельцу объявления и администратору.
func (uc *UpdateInquiryStatusUseCase) Execute(ctx context.Context, identity domain.Identity, inquiryID uuid.UUID, status domain.InquiryStatus) (*domain.Inquiry, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateInquiryStatus",
		"user_id":    identity.UserID.String(),
		"inquiry_id": inquiryID.String(),
		"status":     status,
	})

	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		ucLogger.Warn("Unknown inquiry status requested", nil)
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	ucLogger.Info("Use case started", nil)

	current, err := uc.inquiries.Get(ctx, inquiryID)
	if err != nil {
		ucLogger.Warn("Inquiry not found", port.Fields{"reason": err.Error()})
		return nil, err
	}

	if !identity.Is(domain.RoleAdmin) {
		if _, err := loadOwnedProperty(ctx, uc.properties, identity, current.Row.PropertyID); err != nil {
			ucLogger.Warn("Caller does not own the inquired property", port.Fields{"reason": err.Error()})
			return nil, err
		}
	}

	record, err := uc.inquiries.Update(ctx, inquiryID, mapper.InquiryStatusValues(status))
	if err != nil {
		ucLogger.Error("Failed to update inquiry status", err, nil)
		return nil, err
	}
	inquiry := mapper.InquiryFromRow(record.Row, record.Renter)

	event := domain.InquiryStatusChangedEvent{
		InquiryID:  inquiry.ID,
		PropertyID: inquiry.PropertyID,
		ChangedBy:  identity.UserID,
		Status:     inquiry.Status,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.events.PublishInquiryStatusChanged(ctx, event); err != nil {
		ucLogger.Error("Failed to publish inquiry status event", err, nil)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return &inquiry, nil
}
