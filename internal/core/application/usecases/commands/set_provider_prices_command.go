package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/provider"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrSetProviderPricesCommandIsNotConstructed = errors.New(
	"SetProviderPricesCommand must be created via NewSetProviderPricesCommand constructor",
)

// SetProviderPricesCommand is a batch of price overrides for one provider.
type SetProviderPricesCommand struct { //nolint:recvcheck //using for validation
	providerUserID kernel.UUID
	items          []provider.PriceItem

	guard guard.ConstructorGuard
}

func NewSetProviderPricesCommand(providerUserID kernel.UUID, items []provider.PriceItem) (SetProviderPricesCommand, error) {
	errList := []error{providerUserID.Validate()}
	for _, item := range items {
		errList = append(errList, requiredID("service_id", item.ServiceID))
		if err := item.Price.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("price", err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return SetProviderPricesCommand{}, err
	}

	copied := make([]provider.PriceItem, len(items))
	copy(copied, items)

	return SetProviderPricesCommand{
		providerUserID: providerUserID,
		items:          copied,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c SetProviderPricesCommand) Validate() error {
	return c.guard.Validate(ErrSetProviderPricesCommandIsNotConstructed)
}

func (c SetProviderPricesCommand) ProviderUserID() kernel.UUID { return c.providerUserID }
func (c SetProviderPricesCommand) Items() []provider.PriceItem { return c.items }
