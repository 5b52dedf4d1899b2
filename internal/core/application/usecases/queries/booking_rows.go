package queries

import (
	"context"
	"database/sql"
	"time"

	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const bookingViewSelect = `
	SELECT
		b.id,
		b.service_id,
		COALESCE(s.name, ''),
		COALESCE(c.name, ''),
		b.customer_id,
		COALESCE(cu.username, ''),
		b.provider_id,
		COALESCE(pu.username, ''),
		COALESCE(pu.display_name, ''),
		b.address,
		b.scheduled_date,
		b.time_slot,
		b.status,
		b.created_at,
		rv.rating,
		rv.comment
	FROM bookings b
	LEFT JOIN services s ON s.id = b.service_id
	LEFT JOIN categories c ON c.id = s.category_id
	LEFT JOIN users cu ON cu.id = b.customer_id
	LEFT JOIN users pu ON pu.id = b.provider_id
	LEFT JOIN reviews rv ON rv.booking_id = b.id`

// loadBookingViews runs bookingViewSelect with the given filter and returns
// the rows newest first.
func loadBookingViews(ctx context.Context, db *gorm.DB, where string, args ...any) ([]BookingView, error) {
	sqlText := bookingViewSelect
	if where != "" {
		sqlText += " WHERE " + where
	}
	sqlText += " ORDER BY b.created_at DESC, b.id"

	rows, err := db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]BookingView, 0)
	for rows.Next() {
		var (
			view                  BookingView
			id, serviceID, custID uuid.UUID
			providerID            nullableUUID
			slot, status          string
			scheduled, created    time.Time
			rating                sql.NullInt64
			comment               sql.NullString
		)

		if err = rows.Scan(
			&id,
			&serviceID,
			&view.ServiceName,
			&view.Category,
			&custID,
			&view.CustomerUsername,
			&providerID,
			&view.ProviderUsername,
			&view.ProviderName,
			&view.Address,
			&scheduled,
			&slot,
			&status,
			&created,
			&rating,
			&comment,
		); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if view.ServiceID, err = kernel.UUIDFromGoogle(serviceID); err != nil {
			return nil, err
		}
		if view.CustomerID, err = kernel.UUIDFromGoogle(custID); err != nil {
			return nil, err
		}
		if view.ProviderID, err = providerID.toKernel(); err != nil {
			return nil, err
		}
		if view.TimeSlot, err = booking.ParseTimeSlot(slot); err != nil {
			return nil, err
		}
		if view.Status, err = booking.ParseStatus(status); err != nil {
			return nil, err
		}
		view.ScheduledDate = scheduled.UTC()
		view.CreatedAt = created.UTC()
		if rating.Valid {
			view.Review = &BookingReview{Rating: int(rating.Int64), Comment: comment.String}
		}

		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
