package commands

import (
	"context"

	"marketplace/internal/core/domain/model/booking"
)

// ProviderActionCommandHandler applies accept or reject on behalf of the
// assigned provider. Bookings of other providers are reported as not found.
type ProviderActionCommandHandler struct {
	uowFactory BookingUoWFactory
}

func NewProviderActionCommandHandler(uowFactory BookingUoWFactory) ProviderActionCommandHandler {
	return ProviderActionCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ProviderActionCommandHandler) Handle(ctx context.Context, cmd ProviderActionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateBooking(ctx, h.uowFactory, cmd.BookingID(), func(_ BookingUoW, b *booking.Booking) error {
		if cmd.Action() == ActionAccept {
			return b.Accept(cmd.ProviderID())
		}
		return b.Reject(cmd.ProviderID())
	})
}
