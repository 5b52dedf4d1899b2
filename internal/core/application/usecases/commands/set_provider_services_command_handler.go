package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrInvalidServiceIDs = errors.New("invalid service id(s)")

// SetProviderServicesCommandHandler replaces the offered set and reconciles
// price entries in the same transaction: new services start at base price,
// dropped services lose their entry.
type SetProviderServicesCommandHandler struct {
	uowFactory ProviderUoWFactory
}

func NewSetProviderServicesCommandHandler(uowFactory ProviderUoWFactory) SetProviderServicesCommandHandler {
	return SetProviderServicesCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SetProviderServicesCommandHandler) Handle(ctx context.Context, cmd SetProviderServicesCommand) error {
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

	services, err := uow.CatalogRepository().GetServices(ctx, cmd.ServiceIDs())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewValueIsInvalidErrorWithCause("services", ErrInvalidServiceIDs)
	}
	if err != nil {
		return err
	}

	if err = profile.SetServices(services); err != nil {
		return err
	}
	if cmd.City() != nil {
		profile.SetCity(kernel.NewCity(*cmd.City()))
	}

	if err = saveProfile(ctx, uow, profile, isNew); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
