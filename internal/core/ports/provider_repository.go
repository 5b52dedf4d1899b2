package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/provider"
)

// ProviderRepository persists provider profiles with their offered services
// and price entries.
type ProviderRepository interface {
	Add(ctx context.Context, aggregate *provider.Profile) error

	// Update replaces the offered set and price entries, guarded by the
	// profile version like BookingRepository.Update.
	Update(ctx context.Context, aggregate *provider.Profile) error

	// GetByUserID returns errs.ErrObjectNotFound when the user has no profile yet.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*provider.Profile, error)
}
