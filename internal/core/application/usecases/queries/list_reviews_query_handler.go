package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListReviewsQueryHandler struct {
	db *gorm.DB
}

func NewListReviewsQueryHandler(db *gorm.DB) ListReviewsQueryHandler {
	return ListReviewsQueryHandler{db: db}
}

func (h ListReviewsQueryHandler) Handle(ctx context.Context, query ListReviewsQuery) ([]ReviewView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			rv.id,
			rv.booking_id,
			COALESCE(s.name, ''),
			COALESCE(pu.username, ''),
			COALESCE(au.username, ''),
			rv.rating,
			COALESCE(rv.comment, ''),
			rv.created_at
		FROM reviews rv
		JOIN bookings b ON b.id = rv.booking_id
		LEFT JOIN services s ON s.id = b.service_id
		LEFT JOIN users pu ON pu.id = b.provider_id
		LEFT JOIN users au ON au.id = rv.author_id
		ORDER BY rv.created_at DESC, rv.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]ReviewView, 0)
	for rows.Next() {
		var (
			review        ReviewView
			id, bookingID uuid.UUID
		)

		if err = rows.Scan(
			&id,
			&bookingID,
			&review.ServiceName,
			&review.ProviderUsername,
			&review.AuthorUsername,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		); err != nil {
			return nil, err
		}

		if review.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if review.BookingID, err = kernel.UUIDFromGoogle(bookingID); err != nil {
			return nil, err
		}
		review.CreatedAt = review.CreatedAt.UTC()
		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
