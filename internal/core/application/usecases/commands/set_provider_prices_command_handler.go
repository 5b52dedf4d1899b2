package commands

import (
	"context"
)

// SetProviderPricesCommandHandler applies a price batch all-or-nothing.
type SetProviderPricesCommandHandler struct {
	uowFactory ProviderUoWFactory
}

func NewSetProviderPricesCommandHandler(uowFactory ProviderUoWFactory) SetProviderPricesCommandHandler {
	return SetProviderPricesCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SetProviderPricesCommandHandler) Handle(ctx context.Context, cmd SetProviderPricesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	profile, isNew, err := loadOrCreateProfile(ctx, uow, cmd.ProviderUserID())
	if err != nil {
		return err
	}

	if err = profile.SetPrices(cmd.Items()); err != nil {
		return err
	}

	if err = saveProfile(ctx, uow, profile, isNew); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
