package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/pkg/errs"
)

var ErrServiceIsInactive = errors.New("service is not available")

// CreateBookingCommandHandler validates the referenced service and provider,
// then stores a new booking. A pre-selected provider is assigned at once.
// Handle reports the status the booking was stored with.
type CreateBookingCommandHandler struct {
	uowFactory BookingUoWFactory
	now        func() time.Time
}

func NewCreateBookingCommandHandler(uowFactory BookingUoWFactory) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (booking.Status, error) {
	if err := cmd.Validate(); err != nil {
		return booking.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return booking.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	service, err := uow.CatalogRepository().GetService(ctx, cmd.ServiceID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return booking.Unknown, errs.NewValueIsInvalidErrorWithCause("service", err)
	}
	if err != nil {
		return booking.Unknown, err
	}
	if !service.IsActive() {
		return booking.Unknown, errs.NewValueIsInvalidErrorWithCause("service", ErrServiceIsInactive)
	}

	if cmd.ProviderID() != nil {
		if err = validateProvider(ctx, uow.UserRepository(), *cmd.ProviderID(), "provider"); err != nil {
			return booking.Unknown, err
		}
	}

	aggregate, err := booking.NewBooking(
		cmd.BookingID(),
		cmd.CustomerID(),
		cmd.ServiceID(),
		cmd.ProviderID(),
		cmd.Address(),
		cmd.ScheduledDate(),
		cmd.TimeSlot(),
		h.now(),
	)
	if err != nil {
		return booking.Unknown, err
	}

	if err = uow.BookingRepository().Add(ctx, aggregate); err != nil {
		return booking.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return booking.Unknown, err
	}
	return aggregate.Status(), nil
}
