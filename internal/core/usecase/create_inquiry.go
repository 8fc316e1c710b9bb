package usecase

import (
	"context"
	"time"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/mapper"
	"househunt-service/internal/core/port"
)

type CreateInquiryUseCase struct {
	properties port.PropertyStoragePort
	inquiries  port.InquiryStoragePort
	profiles   port.ProfileStoragePort
	events     port.InquiryEventsPort
}

func NewCreateInquiryUseCase(properties port.PropertyStoragePort, inquiries port.InquiryStoragePort,
	profiles port.ProfileStoragePort, events port.InquiryEventsPort) *CreateInquiryUseCase {
	return &CreateInquiryUseCase{
		properties: properties,
		inquiries:  inquiries,
		profiles:   profiles,
		events:     events,
	}
}

// Execute создает обращение от арендатора. Статус всегда pending.
func (uc *CreateInquiryUseCase) Execute(ctx context.Context, identity domain.Identity, input domain.NewInquiry) (*domain.Inquiry, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "CreateInquiry",
		"user_id":     identity.UserID.String(),
		"property_id": input.PropertyID.String(),
	})

	if err := requireRole(identity, domain.RoleRenter); err != nil {
		ucLogger.Warn("Caller is not allowed to create inquiries", port.Fields{"role": identity.Role})
		return nil, err
	}
	if err := input.Validate(); err != nil {
		ucLogger.Warn("Invalid inquiry input", port.Fields{"reason": err.Error()})
		return nil, err
	}

	ucLogger.Info("Use case started", nil)

	if _, err := uc.properties.Get(ctx, input.PropertyID); err != nil {
		ucLogger.Warn("Inquiry references an unknown property", port.Fields{"reason": err.Error()})
		return nil, err
	}
	profile, err := ensureProfile(ctx, uc.profiles, identity)
	if err != nil {
		ucLogger.Error("Failed to ensure renter profile", err, nil)
		return nil, err
	}
	if err := requireStoredRole(profile, domain.RoleRenter); err != nil {
		ucLogger.Warn("Stored profile is not a renter", port.Fields{"profile_role": profile.Role})
		return nil, err
	}

	record, err := uc.inquiries.Insert(ctx, mapper.InquiryInsertValues(input, identity.UserID))
	if err != nil {
		ucLogger.Error("Failed to insert inquiry", err, nil)
		return nil, err
	}
	inquiry := mapper.InquiryFromRow(record.Row, record.Renter)

	// Запись уже состоялась: ошибку публикации только логируем
	event := domain.InquiryCreatedEvent{
		InquiryID:  inquiry.ID,
		PropertyID: inquiry.PropertyID,
		RenterID:   inquiry.RenterID,
		Status:     inquiry.Status,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.events.PublishInquiryCreated(ctx, event); err != nil {
		ucLogger.Error("Failed to publish inquiry created event", err, nil)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"inquiry_id": inquiry.ID.String()})
	return &inquiry, nil
}
