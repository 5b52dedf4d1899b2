package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrListBookingsQueryIsNotConstructed = errors.New(
	"ListBookingsQuery must be created via NewListCustomerBookingsQuery or NewListAllBookingsQuery",
)

// ListBookingsQuery lists bookings newest first, either one customer's or all
// of them for admins.
type ListBookingsQuery struct {
	customerID *kernel.UUID
	guard      guard.ConstructorGuard
}

func NewListCustomerBookingsQuery(customerID kernel.UUID) (ListBookingsQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListBookingsQuery{}, err
	}
	return ListBookingsQuery{customerID: &customerID, guard: guard.NewConstructorGuard()}, nil
}

func NewListAllBookingsQuery() ListBookingsQuery {
	return ListBookingsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListBookingsQuery) Validate() error {
	return q.guard.Validate(ErrListBookingsQueryIsNotConstructed)
}

// CustomerID is nil for the admin listing.
func (q ListBookingsQuery) CustomerID() *kernel.UUID { return q.customerID }

// BookingView is a booking joined with the names a listing shows. Provider
// fields are empty while the booking is unassigned; Review is nil until the
// customer leaves one.
type BookingView struct {
	ID               kernel.UUID
	ServiceID        kernel.UUID
	ServiceName      string
	Category         string
	CustomerID       kernel.UUID
	CustomerUsername string
	ProviderID       *kernel.UUID
	ProviderUsername string
	ProviderName     string
	Address          string
	ScheduledDate    time.Time
	TimeSlot         booking.TimeSlot
	Status           booking.Status
	CreatedAt        time.Time
	Review           *BookingReview
}

type BookingReview struct {
	Rating  int
	Comment string
}
