package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateBookingStatusCommandIsNotConstructed = errors.New(
	"UpdateBookingStatusCommand must be created via NewUpdateBookingStatusCommand constructor",
)

// UpdateBookingStatusCommand moves a confirmed booking forward
// (IN_PROGRESS, then COMPLETED).
type UpdateBookingStatusCommand struct { //nolint:recvcheck //using for validation
	bookingID  kernel.UUID
	providerID kernel.UUID
	target     booking.Status

	guard guard.ConstructorGuard
}

func NewUpdateBookingStatusCommand(bookingID, providerID kernel.UUID, status string) (UpdateBookingStatusCommand, error) {
	var target booking.Status
	var statusErr error
	if strings.TrimSpace(status) == "" {
		statusErr = errs.NewValueIsRequiredError("status")
	} else {
		target, statusErr = booking.ParseStatus(status)
	}

	if err := errors.Join(
		requiredID("booking", bookingID),
		providerID.Validate(),
		statusErr,
	); err != nil {
		return UpdateBookingStatusCommand{}, err
	}

	return UpdateBookingStatusCommand{
		bookingID:  bookingID,
		providerID: providerID,
		target:     target,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateBookingStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBookingStatusCommandIsNotConstructed)
}

func (c UpdateBookingStatusCommand) BookingID() kernel.UUID  { return c.bookingID }
func (c UpdateBookingStatusCommand) ProviderID() kernel.UUID { return c.providerID }
func (c UpdateBookingStatusCommand) Target() booking.Status  { return c.target }
