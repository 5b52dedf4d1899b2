package commands

import (
	"context"

	"marketplace/internal/core/domain/model/booking"
)

// AssignProviderCommandHandler assigns (or reassigns) a booking after checking
// the target account is a provider. The provider is notified after commit.
type AssignProviderCommandHandler struct {
	uowFactory BookingUoWFactory
}

func NewAssignProviderCommandHandler(uowFactory BookingUoWFactory) AssignProviderCommandHandler {
	return AssignProviderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AssignProviderCommandHandler) Handle(ctx context.Context, cmd AssignProviderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateBooking(ctx, h.uowFactory, cmd.BookingID(), func(uow BookingUoW, b *booking.Booking) error {
		if err := validateProvider(ctx, uow.UserRepository(), cmd.ProviderID(), "provider_id"); err != nil {
			return err
		}
		return b.Assign(cmd.ProviderID())
	})
}
