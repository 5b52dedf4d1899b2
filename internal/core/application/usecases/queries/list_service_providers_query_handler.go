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

type ListServiceProvidersQueryHandler struct {
	db         *gorm.DB
	resolver   services.PriceResolver
	aggregator services.RatingAggregator
	ranker     services.ProviderRanker
}

func NewListServiceProvidersQueryHandler(db *gorm.DB) ListServiceProvidersQueryHandler {
	return ListServiceProvidersQueryHandler{
		db:         db,
		resolver:   services.NewPriceResolver(),
		aggregator: services.NewRatingAggregator(),
		ranker:     services.NewProviderRanker(),
	}
}

// Handle returns providers ordered by rating, best first, then display name.
// An unknown service is reported as not found.
func (h ListServiceProvidersQueryHandler) Handle(
	ctx context.Context,
	query ListServiceProvidersQuery,
) ([]ServiceProvider, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var baseCents int64
	err := db.Raw(`SELECT base_price_cents FROM services WHERE id = ?`, query.ServiceID().Bytes()).
		Row().Scan(&baseCents)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("service", query.ServiceID().String())
		}
		return nil, err
	}
	base, err := kernel.PriceFromCents(baseCents)
	if err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			u.id,
			u.username,
			u.display_name,
			u.phone,
			p.city,
			pp.price_cents,
			COALESCE(r.rating_sum, 0),
			COALESCE(r.rating_count, 0)
		FROM provider_services ps
		JOIN provider_profiles p ON p.id = ps.profile_id
		JOIN users u ON u.id = p.user_id
		LEFT JOIN provider_prices pp ON pp.profile_id = p.id AND pp.service_id = ps.service_id
		LEFT JOIN (
			SELECT b.provider_id, SUM(rv.rating) AS rating_sum, COUNT(*) AS rating_count
			FROM reviews rv
			JOIN bookings b ON b.id = rv.booking_id
			GROUP BY b.provider_id
		) r ON r.provider_id = u.id
		WHERE ps.service_id = ?
			AND u.active = ?
			AND u.role = ?`
	args := []any{query.ServiceID().Bytes(), true, user.Provider.String()}
	if !query.City().IsEmpty() {
		sqlText += ` AND LOWER(p.city) = LOWER(?)`
		args = append(args, query.City().String())
	}

	rows, err := db.Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	providers := make([]ServiceProvider, 0)
	for rows.Next() {
		var (
			id                   uuid.UUID
			item                 ServiceProvider
			displayName          sql.NullString
			phone                sql.NullString
			override             sql.NullInt64
			ratingSum, ratingCnt int64
		)

		if err = rows.Scan(
			&id,
			&item.Username,
			&displayName,
			&phone,
			&item.City,
			&override,
			&ratingSum,
			&ratingCnt,
		); err != nil {
			return nil, err
		}

		if item.UserID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		item.DisplayName = displayName.String
		if item.DisplayName == "" {
			item.DisplayName = item.Username
		}
		item.Phone = phone.String

		own, priceErr := priceOrNil(override)
		if priceErr != nil {
			return nil, priceErr
		}
		item.Price = h.resolver.ResolveOverride(own, base)
		item.Rating = h.aggregator.AverageOfTotals(ratingSum, ratingCnt)

		providers = append(providers, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	services.Rank(h.ranker, providers, func(p ServiceProvider) services.RankKey {
		return services.RankKey{Rating: p.Rating, Name: p.DisplayName}
	})

	return providers, nil
}
