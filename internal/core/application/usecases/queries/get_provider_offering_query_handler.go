package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetProviderOfferingQueryHandler struct {
	db       *gorm.DB
	resolver services.PriceResolver
}

func NewGetProviderOfferingQueryHandler(db *gorm.DB) GetProviderOfferingQueryHandler {
	return GetProviderOfferingQueryHandler{
		db:       db,
		resolver: services.NewPriceResolver(),
	}
}

// Handle returns the offered services in the order the provider listed them.
// A user who is not a provider is reported as not found.
func (h GetProviderOfferingQueryHandler) Handle(
	ctx context.Context,
	query GetProviderOfferingQuery,
) (ProviderOffering, error) {
	if err := query.Validate(); err != nil {
		return ProviderOffering{}, err
	}

	db := h.db.WithContext(ctx)
	userID := query.ProviderUserID()

	var role string
	err := db.Raw(`SELECT role FROM users WHERE id = ?`, userID.Bytes()).Row().Scan(&role)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && role != user.Provider.String()) {
		return ProviderOffering{}, errs.NewObjectNotFoundError("provider", userID.String())
	}
	if err != nil {
		return ProviderOffering{}, err
	}

	offering := ProviderOffering{Services: make([]OfferedService, 0)}

	var city sql.NullString
	err = db.Raw(`SELECT city FROM provider_profiles WHERE user_id = ?`, userID.Bytes()).Row().Scan(&city)
	if errors.Is(err, sql.ErrNoRows) {
		return offering, nil
	}
	if err != nil {
		return ProviderOffering{}, err
	}
	offering.City = city.String

	rows, err := db.Raw(`
		SELECT
			s.id,
			s.name,
			s.base_price_cents,
			pp.price_cents
		FROM provider_profiles p
		JOIN provider_services ps ON ps.profile_id = p.id
		JOIN services s ON s.id = ps.service_id
		LEFT JOIN provider_prices pp ON pp.profile_id = p.id AND pp.service_id = ps.service_id
		WHERE p.user_id = ?
		ORDER BY ps.position
	`, userID.Bytes()).Rows()
	if err != nil {
		return ProviderOffering{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item      OfferedService
			id        uuid.UUID
			baseCents int64
			override  sql.NullInt64
		)

		if err = rows.Scan(&id, &item.ServiceName, &baseCents, &override); err != nil {
			return ProviderOffering{}, err
		}

		if item.ServiceID, err = kernel.UUIDFromGoogle(id); err != nil {
			return ProviderOffering{}, err
		}
		if item.BasePrice, err = kernel.PriceFromCents(baseCents); err != nil {
			return ProviderOffering{}, err
		}
		own, priceErr := priceOrNil(override)
		if priceErr != nil {
			return ProviderOffering{}, priceErr
		}
		item.Price = h.resolver.ResolveOverride(own, item.BasePrice)

		offering.Services = append(offering.Services, item)
	}

	if err = rows.Err(); err != nil {
		return ProviderOffering{}, err
	}

	return offering, nil
}
