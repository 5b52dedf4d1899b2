// Package catalog models the services customers can book. Category and service
// CRUD is owned elsewhere; the booking core reads services to validate
// bookings and to seed provider price entries at base price.
package catalog

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrNameIsRequired          = errs.NewValueIsRequiredError("name")
	ErrServiceIsNotConstructed = errors.New("Service must be created via NewService or RestoreService")
)

// Service is a bookable offering with a base price.
type Service struct {
	id         kernel.UUID
	categoryID kernel.UUID
	name       string
	basePrice  kernel.Price
	active     bool
	guard      guard.ConstructorGuard
}

func NewService(id, categoryID kernel.UUID, name string, basePrice kernel.Price) (*Service, error) {
	return RestoreService(id, categoryID, name, basePrice, true)
}

func RestoreService(
	id, categoryID kernel.UUID,
	name string,
	basePrice kernel.Price,
	active bool,
) (*Service, error) {
	s := &Service{
		id:         id,
		categoryID: categoryID,
		name:       strings.TrimSpace(name),
		basePrice:  basePrice,
		active:     active,
		guard:      guard.NewConstructorGuard(),
	}

	var nameErr error
	if s.name == "" {
		nameErr = ErrNameIsRequired
	}
	if err := errors.Join(
		id.Validate(),
		categoryID.Validate(),
		nameErr,
		basePrice.Validate(),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Service) Validate() error {
	if s == nil {
		return ErrServiceIsNotConstructed
	}
	return s.guard.Validate(ErrServiceIsNotConstructed)
}

func (s *Service) ID() kernel.UUID         { return s.id }
func (s *Service) CategoryID() kernel.UUID { return s.categoryID }
func (s *Service) Name() string            { return s.name }
func (s *Service) BasePrice() kernel.Price { return s.basePrice }
func (s *Service) IsActive() bool          { return s.active }
