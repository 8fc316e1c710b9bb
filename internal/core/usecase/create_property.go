package usecase

import (
	"context"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/mapper"
	"househunt-service/internal/core/port"
)

type CreatePropertyUseCase struct {
	properties port.PropertyStoragePort
	profiles   port.ProfileStoragePort
}

func NewCreatePropertyUseCase(properties port.PropertyStoragePort, profiles port.ProfileStoragePort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{properties: properties, profiles: profiles}
}

// Execute создает объявление от имени владельца. ownerId берется из identity.
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, identity domain.Identity, input domain.NewProperty) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateProperty",
		"user_id":  identity.UserID.String(),
	})

	if err := requireRole(identity, domain.RoleOwner); err != nil {
		ucLogger.Warn("Caller is not allowed to create properties", port.Fields{"role": identity.Role})
		return nil, err
	}
	if err := input.Validate(); err != nil {
		ucLogger.Warn("Invalid property input", port.Fields{"reason": err.Error()})
		return nil, err
	}

	ucLogger.Info("Use case started", nil)

	profile, err := ensureProfile(ctx, uc.profiles, identity)
	if err != nil {
		ucLogger.Error("Failed to ensure owner profile", err, nil)
		return nil, err
	}
	if err := requireStoredRole(profile, domain.RoleOwner); err != nil {
		ucLogger.Warn("Stored profile is not an owner", port.Fields{"profile_role": profile.Role})
		return nil, err
	}

	record, err := uc.properties.Insert(ctx, mapper.PropertyInsertValues(input, identity.UserID))
	if err != nil {
		ucLogger.Error("Failed to insert property", err, nil)
		return nil, err
	}

	property := mapper.PropertyFromRow(record.Row, record.Owner)
	ucLogger.Info("Use case finished successfully", port.Fields{"property_id": property.ID.String()})
	return &property, nil
}
