package catalogrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) GetService(ctx context.Context, id kernel.UUID) (*catalog.Service, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetServices returns the services in the order of their first occurrence in ids.
func (r *GormCatalogRepository) GetServices(ctx context.Context, ids []kernel.UUID) ([]*catalog.Service, error) {
	if len(ids) == 0 {
		return []*catalog.Service{}, nil
	}

	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw := id.Bytes()
		if _, ok := seen[raw]; ok {
			continue
		}
		seen[raw] = struct{}{}
		unique = append(unique, raw)
	}

	var dtos []ServiceDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", unique).Find(&dtos).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]ServiceDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	services := make([]*catalog.Service, 0, len(unique))
	for _, raw := range unique {
		dto, ok := byID[raw]
		if !ok {
			return nil, errs.NewObjectNotFoundError("service", raw.String())
		}
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}

	return services, nil
}
