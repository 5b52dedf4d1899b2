package commands

import (
	"context"

	"marketplace/internal/core/domain/model/booking"
)

type UpdateBookingStatusCommandHandler struct {
	uowFactory BookingUoWFactory
}

func NewUpdateBookingStatusCommandHandler(uowFactory BookingUoWFactory) UpdateBookingStatusCommandHandler {
	return UpdateBookingStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle rejects any target other than the single state reachable from the
// booking's current status.
func (h UpdateBookingStatusCommandHandler) Handle(ctx context.Context, cmd UpdateBookingStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateBooking(ctx, h.uowFactory, cmd.BookingID(), func(_ BookingUoW, b *booking.Booking) error {
		return b.AdvanceTo(cmd.ProviderID(), cmd.Target())
	})
}
