package queries

import (
	"context"
	"database/sql"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetCatalogQueryHandler struct {
	db       *gorm.DB
	resolver services.PriceResolver
}

func NewGetCatalogQueryHandler(db *gorm.DB) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{
		db:       db,
		resolver: services.NewPriceResolver(),
	}
}

// Handle returns categories ordered by name, each with its services ordered
// by name. Categories without active services are still listed.
func (h GetCatalogQueryHandler) Handle(ctx context.Context, query GetCatalogQuery) ([]CatalogCategory, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.description,
			s.id,
			s.name,
			s.description,
			s.base_price_cents,
			(
				SELECT MIN(pp.price_cents)
				FROM provider_prices pp
				JOIN provider_profiles p ON p.id = pp.profile_id
				JOIN users u ON u.id = p.user_id
				WHERE pp.service_id = s.id
					AND u.active = ?
					AND u.role = ?
			)
		FROM categories c
		LEFT JOIN services s ON s.category_id = c.id AND s.active = ?
		WHERE c.active = ?
		ORDER BY c.name, c.id, s.name
	`, true, user.Provider.String(), true, true).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]CatalogCategory, 0)
	for rows.Next() {
		var (
			categoryID          uuid.UUID
			category            CatalogCategory
			serviceID           nullableUUID
			serviceName, desc   sql.NullString
			baseCents, minCents sql.NullInt64
		)

		if err = rows.Scan(
			&categoryID,
			&category.Name,
			&category.Description,
			&serviceID,
			&serviceName,
			&desc,
			&baseCents,
			&minCents,
		); err != nil {
			return nil, err
		}

		if category.ID, err = kernel.UUIDFromGoogle(categoryID); err != nil {
			return nil, err
		}
		if n := len(categories); n == 0 || !categories[n-1].ID.IsEqual(category.ID) {
			category.Services = make([]CatalogService, 0)
			categories = append(categories, category)
		}

		id, idErr := serviceID.toKernel()
		if idErr != nil {
			return nil, idErr
		}
		if id == nil {
			continue
		}

		service, svcErr := h.catalogService(*id, serviceName.String, desc.String, baseCents.Int64, minCents)
		if svcErr != nil {
			return nil, svcErr
		}
		last := &categories[len(categories)-1]
		last.Services = append(last.Services, service)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (h GetCatalogQueryHandler) catalogService(
	id kernel.UUID,
	name, description string,
	baseCents int64,
	minCents sql.NullInt64,
) (CatalogService, error) {
	base, err := kernel.PriceFromCents(baseCents)
	if err != nil {
		return CatalogService{}, err
	}

	var providerPrices []kernel.Price
	cheapest, err := priceOrNil(minCents)
	if err != nil {
		return CatalogService{}, err
	}
	if cheapest != nil {
		providerPrices = append(providerPrices, *cheapest)
	}

	return CatalogService{
		ID:          id,
		Name:        name,
		Description: description,
		BasePrice:   base,
		StartsFrom:  h.resolver.StartsFrom(base, providerPrices),
	}, nil
}
