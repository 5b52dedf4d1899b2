package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetProviderOfferingQueryIsNotConstructed = errors.New(
	"GetProviderOfferingQuery must be created via NewGetProviderOfferingQuery constructor",
)

// GetProviderOfferingQuery reads what a provider offers and at which price.
// It backs both the provider's own pages and the admin's view of a provider.
type GetProviderOfferingQuery struct {
	providerUserID kernel.UUID
	guard          guard.ConstructorGuard
}

func NewGetProviderOfferingQuery(providerUserID kernel.UUID) (GetProviderOfferingQuery, error) {
	if err := providerUserID.Validate(); err != nil {
		return GetProviderOfferingQuery{}, err
	}
	return GetProviderOfferingQuery{providerUserID: providerUserID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProviderOfferingQuery) Validate() error {
	return q.guard.Validate(ErrGetProviderOfferingQueryIsNotConstructed)
}

func (q GetProviderOfferingQuery) ProviderUserID() kernel.UUID { return q.providerUserID }

// ProviderOffering is empty for a provider who never set up a profile.
type ProviderOffering struct {
	City     string
	Services []OfferedService
}

type OfferedService struct {
	ServiceID   kernel.UUID
	ServiceName string
	BasePrice   kernel.Price
	Price       kernel.Price
}
