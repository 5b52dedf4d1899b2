package services

import (
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/provider"
	"marketplace/internal/pkg/errs"
)

// PriceResolver decides which price a customer sees.
type PriceResolver struct{}

func NewPriceResolver() PriceResolver {
	return PriceResolver{}
}

// Resolve returns the provider's own price for the service, else its base price.
func (r PriceResolver) Resolve(profile *provider.Profile, service *catalog.Service) (kernel.Price, error) {
	if err := service.Validate(); err != nil {
		return kernel.Price{}, err
	}
	if err := profile.Validate(); err != nil {
		return kernel.Price{}, err
	}
	if !profile.Offers(service.ID()) {
		return kernel.Price{}, errs.NewValueIsInvalidErrorWithCause("service_id", provider.ErrServiceNotOffered)
	}

	if own, ok := profile.PriceFor(service.ID()); ok {
		return own, nil
	}
	return service.BasePrice(), nil
}

// ResolveOverride is Resolve for read models that load the override column directly.
func (PriceResolver) ResolveOverride(override *kernel.Price, base kernel.Price) kernel.Price {
	if override != nil {
		return *override
	}
	return base
}

// StartsFrom returns the lowest of the active providers' prices, or base when
// there are none.
func (PriceResolver) StartsFrom(base kernel.Price, providerPrices []kernel.Price) kernel.Price {
	if len(providerPrices) == 0 {
		return base
	}
	lowest := providerPrices[0]
	for _, p := range providerPrices[1:] {
		if p.Less(lowest) {
			lowest = p
		}
	}
	return lowest
}
