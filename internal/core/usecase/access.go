package usecase

import (
	"context"
	"fmt"
	"strings"

	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/mapper"
	"househunt-service/internal/core/port"
)

func requireIdentity(identity domain.Identity) error {
	if identity.IsZero() {
		return domain.ErrUnauthenticated
	}
	return nil
}

func requireRole(identity domain.Identity, roles ...domain.Role) error {
	if err := requireIdentity(identity); err != nil {
		return err
	}
	for _, role := range roles {
		if identity.Is(role) {
			return nil
		}
	}
	return fmt.Errorf("%w: role %q", domain.ErrForbidden, identity.Role)
}

// ensureProfile заводит профиль пользователя при первой записи, чтобы владелец и
// арендатор находились в join'ах. Имя по умолчанию - часть email до "@".
// Возвращает сохраненный профиль: его роль может отличаться от роли в токене.
func ensureProfile(ctx context.Context, profiles port.ProfileStoragePort, identity domain.Identity) (*domain.ProfileRow, error) {
	name := identity.Email
	if at := strings.Index(name, "@"); at > 0 {
		name = name[:at]
	}
	if name == "" {
		name = mapper.UnknownDisplayName
	}
	row, err := profiles.Upsert(ctx, mapper.ProfileInsertValues(domain.User{
		ID:    identity.UserID,
		Name:  name,
		Email: identity.Email,
		Role:  identity.Role,
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to ensure profile: %w", err)
	}
	return row, nil
}

// requireStoredRole сверяет роль сохраненного профиля. Роль профиля неизменна,
// поэтому токен с другой ролью не дает ее прав.
func requireStoredRole(row *domain.ProfileRow, role domain.Role) error {
	if domain.Role(row.Role) != role {
		return fmt.Errorf("%w: stored profile role is %q", domain.ErrForbidden, row.Role)
	}
	return nil
}
