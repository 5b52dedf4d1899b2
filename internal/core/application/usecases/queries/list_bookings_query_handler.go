package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListBookingsQueryHandler struct {
	db *gorm.DB
}

func NewListBookingsQueryHandler(db *gorm.DB) ListBookingsQueryHandler {
	return ListBookingsQueryHandler{db: db}
}

func (h ListBookingsQueryHandler) Handle(ctx context.Context, query ListBookingsQuery) ([]BookingView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if id := query.CustomerID(); id != nil {
		return loadBookingViews(ctx, h.db, "b.customer_id = ?", id.Bytes())
	}
	return loadBookingViews(ctx, h.db, "")
}
