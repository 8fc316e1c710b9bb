package usecase

import (
	"context"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/mapper"
	"househunt-service/internal/core/port"
)

type GetProfileUseCase struct {
	profiles port.ProfileStoragePort
}

func NewGetProfileUseCase(profiles port.ProfileStoragePort) *GetProfileUseCase {
	return &GetProfileUseCase{profiles: profiles}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetProfile",
		"user_id":  identity.UserID.String(),
	})

	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	ucLogger.Info("Use case started", nil)

	row, err := uc.profiles.Get(ctx, identity.UserID)
	if err != nil {
		ucLogger.Warn("Failed to get profile", port.Fields{"reason": err.Error()})
		return nil, err
	}

	user := mapper.UserFromProfileRow(*row)
	ucLogger.Info("Use case finished successfully", nil)
	return &user, nil
}

// UpdateProfileUseCase меняет имя, телефон и аватар. Роль не меняется никогда.
type UpdateProfileUseCase struct {
	profiles port.ProfileStoragePort
}

func NewUpdateProfileUseCase(profiles port.ProfileStoragePort) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{profiles: profiles}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, identity domain.Identity, patch domain.ProfilePatch) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateProfile",
		"user_id":  identity.UserID.String(),
	})

	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	if err := patch.Validate(); err != nil {
		ucLogger.Warn("Invalid profile patch", port.Fields{"reason": err.Error()})
		return nil, err
	}

	ucLogger.Info("Use case started", nil)

	if _, err := ensureProfile(ctx, uc.profiles, identity); err != nil {
		ucLogger.Error("Failed to ensure profile", err, nil)
		return nil, err
	}

	var (
		row *domain.ProfileRow
		err error
	)
	values := mapper.ProfilePatchValues(patch)
	if values.IsEmpty() {
		row, err = uc.profiles.Get(ctx, identity.UserID)
	} else {
		row, err = uc.profiles.Update(ctx, identity.UserID, values)
	}
	if err != nil {
		ucLogger.Error("Failed to update profile", err, nil)
		return nil, err
	}

	user := mapper.UserFromProfileRow(*row)
	ucLogger.Info("Use case finished successfully", nil)
	return &user, nil
}
