package commands

import (
	"context"

	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"
)

// mutateBooking runs change against the stored booking inside one unit of
// work and persists it with the version observed at load. Nothing is
// committed when change fails.
func mutateBooking(
	ctx context.Context,
	uowFactory BookingUoWFactory,
	bookingID kernel.UUID,
	change func(uow BookingUoW, b *booking.Booking) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookingRepo := uow.BookingRepository()
	aggregate, err := bookingRepo.Get(ctx, bookingID)
	if err != nil {
		return err
	}

	if err = change(uow, aggregate); err != nil {
		return err
	}

	if err = bookingRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
