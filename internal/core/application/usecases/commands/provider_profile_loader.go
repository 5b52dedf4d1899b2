package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/provider"
	"marketplace/internal/pkg/errs"
)

// loadOrCreateProfile returns the provider's profile, creating an empty one
// on first use. isNew tells the caller to Add instead of Update.
func loadOrCreateProfile(
	ctx context.Context,
	uow ProviderUoW,
	providerUserID kernel.UUID,
) (profile *provider.Profile, isNew bool, err error) {
	if _, err = loadProviderAccount(ctx, uow.UserRepository(), providerUserID); err != nil {
		return nil, false, err
	}

	profile, err = uow.ProviderRepository().GetByUserID(ctx, providerUserID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		profile, err = provider.NewProfile(kernel.NewUUID(), providerUserID, kernel.NewCity(""))
		return profile, true, err
	}
	if err != nil {
		return nil, false, err
	}
	return profile, false, nil
}

func saveProfile(ctx context.Context, uow ProviderUoW, profile *provider.Profile, isNew bool) error {
	if isNew {
		return uow.ProviderRepository().Add(ctx, profile)
	}
	return uow.ProviderRepository().Update(ctx, profile)
}
