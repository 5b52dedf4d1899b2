package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

var ErrInvalidProvider = errors.New("invalid provider")

// validateProvider checks that id names an existing PROVIDER account. A
// missing account is an invalid field of the request, not a missing resource.
func validateProvider(ctx context.Context, users ports.UserRepository, id kernel.UUID, param string) error {
	account, err := users.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewValueIsInvalidErrorWithCause(param, ErrInvalidProvider)
	}
	if err != nil {
		return err
	}
	if account.ValidateProvider() != nil {
		return errs.NewValueIsInvalidErrorWithCause(param, ErrInvalidProvider)
	}
	return nil
}

// loadProviderAccount is validateProvider for endpoints addressed by the
// provider's id: anything but a PROVIDER account is not found.
func loadProviderAccount(ctx context.Context, users ports.UserRepository, id kernel.UUID) (*user.User, error) {
	account, err := users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if account.ValidateProvider() != nil {
		return nil, errs.NewObjectNotFoundError("provider", id)
	}
	return account, nil
}
