package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleRenter Role = "renter"
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
)

var Roles = []Role{RoleRenter, RoleOwner, RoleAdmin}

func (r Role) IsValid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// User - профиль пользователя. Роль задается при создании и дальше не меняется.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Phone     *string   `json:"phone,omitempty"`
	Avatar    *string   `json:"avatar,omitempty"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfilePatch - то, что пользователь может поменять в своем профиле. Роли здесь нет.
type ProfilePatch struct {
	Name   *string          `json:"name"`
	Phone  Nullable[string] `json:"phone"`
	Avatar Nullable[string] `json:"avatar"`
}

func (p ProfilePatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	return nil
}

// Identity - текущий вызывающий, как его видит слой идентификации
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

func (i Identity) IsZero() bool {
	return i.UserID == uuid.Nil
}

func (i Identity) Is(role Role) bool {
	return i.Role == role
}
