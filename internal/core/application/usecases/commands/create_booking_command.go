package commands

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateBookingCommandIsNotConstructed = errors.New(
	"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
)

// CreateBookingCommand is a customer's request for a service, optionally
// naming the provider they want.
//
// Example:
//
//	cmd, err := NewCreateBookingCommand(kernel.NewUUID(), customerID, serviceID, nil,
//	    "12 MG Road", date, booking.Morning)
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID     kernel.UUID
	customerID    kernel.UUID
	serviceID     kernel.UUID
	providerID    *kernel.UUID
	address       string
	scheduledDate time.Time
	timeSlot      booking.TimeSlot

	guard guard.ConstructorGuard
}

func NewCreateBookingCommand(
	bookingID, customerID, serviceID kernel.UUID,
	providerID *kernel.UUID,
	address string,
	scheduledDate time.Time,
	timeSlot booking.TimeSlot,
) (CreateBookingCommand, error) {
	cmd := CreateBookingCommand{
		bookingID:     bookingID,
		customerID:    customerID,
		serviceID:     serviceID,
		providerID:    providerID,
		address:       strings.TrimSpace(address),
		scheduledDate: scheduledDate,
		timeSlot:      timeSlot,
		guard:         guard.NewConstructorGuard(),
	}

	var providerErr, addressErr, dateErr error
	if providerID != nil {
		if err := providerID.Validate(); err != nil {
			providerErr = errs.NewValueIsInvalidErrorWithCause("provider", err)
		}
	}
	if cmd.address == "" {
		addressErr = booking.ErrAddressIsRequired
	}
	if scheduledDate.IsZero() {
		dateErr = booking.ErrScheduledDateIsRequired
	}

	if err := errors.Join(
		bookingID.Validate(),
		customerID.Validate(),
		requiredID("service", serviceID),
		providerErr,
		addressErr,
		dateErr,
		timeSlot.Validate(),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	return cmd, nil
}

func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

func (c CreateBookingCommand) BookingID() kernel.UUID     { return c.bookingID }
func (c CreateBookingCommand) CustomerID() kernel.UUID    { return c.customerID }
func (c CreateBookingCommand) ServiceID() kernel.UUID     { return c.serviceID }
func (c CreateBookingCommand) ProviderID() *kernel.UUID   { return c.providerID }
func (c CreateBookingCommand) Address() string            { return c.address }
func (c CreateBookingCommand) ScheduledDate() time.Time   { return c.scheduledDate }
func (c CreateBookingCommand) TimeSlot() booking.TimeSlot { return c.timeSlot }

// requiredID reports a missing identifier as a required field.
func requiredID(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}
