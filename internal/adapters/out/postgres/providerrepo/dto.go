// Package providerrepo persists provider profiles together with their offered
// services and price entries.
package providerrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/provider"

	"github.com/google/uuid"
)

type ProfileDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	City    string    `gorm:"type:varchar(128);not null;default:''"`
	Version int64     `gorm:"not null;default:1"`

	Services []ServiceDTO `gorm:"foreignKey:ProfileID;references:ID"`
	Prices   []PriceDTO   `gorm:"foreignKey:ProfileID;references:ID"`
}

func (ProfileDTO) TableName() string {
	return "provider_profiles"
}

// ServiceDTO links a profile to one offered catalog service.
type ServiceDTO struct {
	ProfileID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position  int       `gorm:"not null"`
}

func (ServiceDTO) TableName() string {
	return "provider_services"
}

// PriceDTO is the provider-specific price of one offered service.
type PriceDTO struct {
	ProfileID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	PriceCents int64     `gorm:"not null"`
}

func (PriceDTO) TableName() string {
	return "provider_prices"
}

func fromDomain(p *provider.Profile) ProfileDTO {
	profileID := p.ID().Bytes()

	services := make([]ServiceDTO, 0, len(p.Services()))
	for i, id := range p.Services() {
		services = append(services, ServiceDTO{
			ProfileID: profileID,
			ServiceID: id.Bytes(),
			Position:  i,
		})
	}

	prices := make([]PriceDTO, 0, len(p.Prices()))
	for _, entry := range p.Prices() {
		prices = append(prices, PriceDTO{
			ProfileID:  profileID,
			ServiceID:  entry.ServiceID().Bytes(),
			PriceCents: entry.Price().Cents(),
		})
	}

	return ProfileDTO{
		ID:       profileID,
		UserID:   p.UserID().Bytes(),
		City:     p.City().String(),
		Version:  p.Version(),
		Services: services,
		Prices:   prices,
	}
}

func toDomain(dto ProfileDTO) (*provider.Profile, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromGoogle(dto.UserID)
	if err != nil {
		return nil, err
	}

	services := make([]kernel.UUID, 0, len(dto.Services))
	for _, s := range dto.Services {
		serviceID, idErr := kernel.UUIDFromGoogle(s.ServiceID)
		if idErr != nil {
			return nil, idErr
		}
		services = append(services, serviceID)
	}

	prices := make([]*provider.PriceEntry, 0, len(dto.Prices))
	for _, p := range dto.Prices {
		serviceID, idErr := kernel.UUIDFromGoogle(p.ServiceID)
		if idErr != nil {
			return nil, idErr
		}
		price, priceErr := kernel.PriceFromCents(p.PriceCents)
		if priceErr != nil {
			return nil, priceErr
		}
		entry, entryErr := provider.NewPriceEntry(serviceID, price)
		if entryErr != nil {
			return nil, entryErr
		}
		prices = append(prices, entry)
	}

	return provider.RestoreProfile(id, userID, kernel.NewCity(dto.City), services, prices, dto.Version)
}
