package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"

	"gorm.io/gorm"
)

type GetProviderDashboardQueryHandler struct {
	db         *gorm.DB
	aggregator services.RatingAggregator
}

func NewGetProviderDashboardQueryHandler(db *gorm.DB) GetProviderDashboardQueryHandler {
	return GetProviderDashboardQueryHandler{
		db:         db,
		aggregator: services.NewRatingAggregator(),
	}
}

func (h GetProviderDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetProviderDashboardQuery,
) (ProviderDashboard, error) {
	if err := query.Validate(); err != nil {
		return ProviderDashboard{}, err
	}

	rating, err := providerRating(ctx, h.db, h.aggregator, query.ProviderID())
	if err != nil {
		return ProviderDashboard{}, err
	}

	bookings, err := loadBookingViews(ctx, h.db, "b.provider_id = ?", query.ProviderID().Bytes())
	if err != nil {
		return ProviderDashboard{}, err
	}

	return ProviderDashboard{Rating: rating, Bookings: bookings}, nil
}

// providerRating averages the reviews of bookings the user provided.
func providerRating(
	ctx context.Context,
	db *gorm.DB,
	aggregator services.RatingAggregator,
	providerID kernel.UUID,
) (float64, error) {
	var sum, count int64
	err := db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(rv.rating), 0), COUNT(rv.id)
		FROM reviews rv
		JOIN bookings b ON b.id = rv.booking_id
		WHERE b.provider_id = ?
	`, providerID.Bytes()).Row().Scan(&sum, &count)
	if err != nil {
		return 0, err
	}
	return aggregator.AverageOfTotals(sum, count), nil
}
