package queries

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrListServiceProvidersQueryIsNotConstructed = errors.New(
	"ListServiceProvidersQuery must be created via NewListServiceProvidersQuery constructor",
)

// ListServiceProvidersQuery finds the active providers offering a service,
// optionally only those in one city.
type ListServiceProvidersQuery struct {
	serviceID kernel.UUID
	city      kernel.City
	guard     guard.ConstructorGuard
}

// NewListServiceProvidersQuery builds the query. An empty city lists every city.
func NewListServiceProvidersQuery(serviceID kernel.UUID, city string) (ListServiceProvidersQuery, error) {
	if err := serviceID.Validate(); err != nil {
		return ListServiceProvidersQuery{}, errs.NewValueIsRequiredErrorWithCause("service_id", err)
	}
	return ListServiceProvidersQuery{
		serviceID: serviceID,
		city:      kernel.NewCity(strings.TrimSpace(city)),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListServiceProvidersQuery) Validate() error {
	return q.guard.Validate(ErrListServiceProvidersQueryIsNotConstructed)
}

func (q ListServiceProvidersQuery) ServiceID() kernel.UUID { return q.serviceID }
func (q ListServiceProvidersQuery) City() kernel.City      { return q.city }

// ServiceProvider is one row of the provider listing. Price is the provider's
// own price when set, else the service base price.
type ServiceProvider struct {
	UserID      kernel.UUID
	Username    string
	DisplayName string
	Phone       string
	City        string
	Rating      float64
	Price       kernel.Price
}
