package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAssignProviderCommandIsNotConstructed = errors.New(
	"AssignProviderCommand must be created via NewAssignProviderCommand constructor",
)

// AssignProviderCommand is an admin handing a booking to a provider.
type AssignProviderCommand struct { //nolint:recvcheck //using for validation
	bookingID  kernel.UUID
	providerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignProviderCommand(bookingID, providerID kernel.UUID) (AssignProviderCommand, error) {
	if err := errors.Join(
		requiredID("booking", bookingID),
		requiredID("provider_id", providerID),
	); err != nil {
		return AssignProviderCommand{}, err
	}

	return AssignProviderCommand{
		bookingID:  bookingID,
		providerID: providerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignProviderCommand) Validate() error {
	return c.guard.Validate(ErrAssignProviderCommandIsNotConstructed)
}

func (c AssignProviderCommand) BookingID() kernel.UUID  { return c.bookingID }
func (c AssignProviderCommand) ProviderID() kernel.UUID { return c.providerID }
