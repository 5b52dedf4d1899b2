// Package catalogrepo reads the service catalog. Categories and services are
// written by the catalog collaborator or the seed loader, never by commands.
package catalogrepo

import (
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CategoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(128);not null"`
	Description string    `gorm:"type:text"`
	Active      bool      `gorm:"not null"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

type ServiceDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(128);not null"`
	Description    string    `gorm:"type:text"`
	BasePriceCents int64     `gorm:"not null"`
	Active         bool      `gorm:"not null"`
}

func (ServiceDTO) TableName() string {
	return "services"
}

func toDomain(dto ServiceDTO) (*catalog.Service, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	categoryID, err := kernel.UUIDFromGoogle(dto.CategoryID)
	if err != nil {
		return nil, err
	}
	base, err := kernel.PriceFromCents(dto.BasePriceCents)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreService(id, categoryID, dto.Name, base, dto.Active)
}
