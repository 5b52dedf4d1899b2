// Package ports defines the contracts between the marketplace core and its
// adapters: repositories for the aggregates, the unit of work that binds them
// to one transaction, and the outbound collaborators (notification fan-out,
// token resolution).
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"
)

// BookingRepository persists booking aggregates including their review.
type BookingRepository interface {
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update stores the aggregate only if the stored version still equals
	// aggregate.Version(); otherwise it returns errs.ErrVersionIsInvalid and
	// changes nothing.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get returns errs.ErrObjectNotFound when no booking has the id.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)
}
