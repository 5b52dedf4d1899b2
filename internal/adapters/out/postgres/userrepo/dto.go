// Package userrepo reads accounts from the users table shared with the auth
// collaborator.
package userrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username    string    `gorm:"type:varchar(150);not null;uniqueIndex"`
	DisplayName string    `gorm:"type:varchar(150)"`
	Phone       string    `gorm:"type:varchar(32)"`
	Role        string    `gorm:"type:varchar(16);not null;index"`
	Active      bool      `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

// FromDomain is exported for the seed loader, which writes accounts directly.
func FromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:          u.ID().Bytes(),
		Username:    u.Username(),
		DisplayName: u.DisplayName(),
		Phone:       u.Phone(),
		Role:        u.Role().String(),
		Active:      u.IsActive(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(id, dto.Username, dto.DisplayName, dto.Phone, role, dto.Active)
}
