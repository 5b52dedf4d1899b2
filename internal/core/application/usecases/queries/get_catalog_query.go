package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery lists active categories with their active services.
type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

type CatalogCategory struct {
	ID          kernel.UUID
	Name        string
	Description string
	Services    []CatalogService
}

// CatalogService carries StartsFrom, the cheapest price any active provider
// asks for the service, or the base price when nobody has one.
type CatalogService struct {
	ID          kernel.UUID
	Name        string
	Description string
	BasePrice   kernel.Price
	StartsFrom  kernel.Price
}
