package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrSetProviderServicesCommandIsNotConstructed = errors.New(
	"SetProviderServicesCommand must be created via NewSetProviderServicesCommand constructor",
)

// SetProviderServicesCommand replaces the services a provider offers. It is
// issued by the provider for themselves, by an admin, and by the seed loader
// (which also sets the city).
type SetProviderServicesCommand struct { //nolint:recvcheck //using for validation
	providerUserID kernel.UUID
	serviceIDs     []kernel.UUID
	city           *string

	guard guard.ConstructorGuard
}

func NewSetProviderServicesCommand(
	providerUserID kernel.UUID,
	serviceIDs []kernel.UUID,
	city *string,
) (SetProviderServicesCommand, error) {
	errList := []error{providerUserID.Validate()}
	for _, id := range serviceIDs {
		errList = append(errList, requiredID("services", id))
	}
	if err := errors.Join(errList...); err != nil {
		return SetProviderServicesCommand{}, err
	}

	ids := make([]kernel.UUID, len(serviceIDs))
	copy(ids, serviceIDs)

	return SetProviderServicesCommand{
		providerUserID: providerUserID,
		serviceIDs:     ids,
		city:           city,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c SetProviderServicesCommand) Validate() error {
	return c.guard.Validate(ErrSetProviderServicesCommandIsNotConstructed)
}

func (c SetProviderServicesCommand) ProviderUserID() kernel.UUID { return c.providerUserID }
func (c SetProviderServicesCommand) ServiceIDs() []kernel.UUID   { return c.serviceIDs }

// City is nil when the city should stay as it is.
func (c SetProviderServicesCommand) City() *string { return c.city }
