package providerrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/provider"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProviderRepository implements ports.ProviderRepository using GORM.
// Offered services and prices are child rows rewritten on every save.
type GormProviderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormProviderRepository(db *gorm.DB, tracker aggregateTracker) *GormProviderRepository {
	return &GormProviderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormProviderRepository) Add(ctx context.Context, aggregate *provider.Profile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	services, prices := dto.Services, dto.Prices
	dto.Services, dto.Prices = nil, nil

	db := r.db.WithContext(ctx)
	if err := db.Create(&dto).Error; err != nil {
		return err
	}
	if err := r.writeChildren(db, services, prices); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update is version-guarded like bookings so two concurrent edits of one
// provider's offering cannot interleave their child rows.
func (r *GormProviderRepository) Update(ctx context.Context, aggregate *provider.Profile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&ProfileDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"city":    dto.City,
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("provider")
	}

	if err := db.Where("profile_id = ?", dto.ID).Delete(&ServiceDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("profile_id = ?", dto.ID).Delete(&PriceDTO{}).Error; err != nil {
		return err
	}
	if err := r.writeChildren(db, dto.Services, dto.Prices); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProviderRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*provider.Profile, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto ProfileDTO
	err := r.db.WithContext(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Prices").
		First(&dto, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("provider", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormProviderRepository) writeChildren(db *gorm.DB, services []ServiceDTO, prices []PriceDTO) error {
	if len(services) > 0 {
		if err := db.Create(&services).Error; err != nil {
			return err
		}
	}
	if len(prices) > 0 {
		if err := db.Create(&prices).Error; err != nil {
			return err
		}
	}
	return nil
}
