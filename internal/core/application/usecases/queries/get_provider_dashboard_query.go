package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetProviderDashboardQueryIsNotConstructed = errors.New(
	"GetProviderDashboardQuery must be created via NewGetProviderDashboardQuery constructor",
)

type GetProviderDashboardQuery struct {
	providerID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetProviderDashboardQuery(providerID kernel.UUID) (GetProviderDashboardQuery, error) {
	if err := providerID.Validate(); err != nil {
		return GetProviderDashboardQuery{}, err
	}
	return GetProviderDashboardQuery{providerID: providerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProviderDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetProviderDashboardQueryIsNotConstructed)
}

func (q GetProviderDashboardQuery) ProviderID() kernel.UUID { return q.providerID }

// ProviderDashboard is the provider's own rating and every booking currently
// assigned to them, newest first.
type ProviderDashboard struct {
	Rating   float64
	Bookings []BookingView
}
