package provider

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile or RestoreProfile")
	ErrServiceNotOffered       = errors.New("invalid service for this provider")
	ErrPriceNotPositive        = errors.New("price must be greater than 0")
)

// PriceItem is one requested price change.
type PriceItem struct {
	ServiceID kernel.UUID
	Price     kernel.Price
}

// Profile is the provider's public face in the marketplace: where they work,
// what they offer and what they charge.
type Profile struct {
	id       kernel.UUID
	userID   kernel.UUID
	city     kernel.City
	services []kernel.UUID
	prices   map[kernel.UUID]*PriceEntry
	version  int64
	guard    guard.ConstructorGuard
}

// NewProfile creates an empty profile for a provider user. Offered services
// are added with SetServices.
func NewProfile(id, userID kernel.UUID, city kernel.City) (*Profile, error) {
	return RestoreProfile(id, userID, city, nil, nil, 0)
}

// RestoreProfile rebuilds a profile from storage without reconciling prices;
// callers that change the offered set run SyncPrices.
func RestoreProfile(
	id, userID kernel.UUID,
	city kernel.City,
	services []kernel.UUID,
	prices []*PriceEntry,
	version int64,
) (*Profile, error) {
	p := &Profile{
		city:    city,
		prices:  make(map[kernel.UUID]*PriceEntry, len(prices)),
		version: version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setUserID(userID),
		p.setServiceIDs(services),
		p.setPriceEntries(prices),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

func (p *Profile) ID() kernel.UUID     { return p.id }
func (p *Profile) UserID() kernel.UUID { return p.userID }
func (p *Profile) City() kernel.City   { return p.city }
func (p *Profile) Version() int64      { return p.version }

// Services returns the offered service ids in the order they were set.
func (p *Profile) Services() []kernel.UUID {
	out := make([]kernel.UUID, len(p.services))
	copy(out, p.services)
	return out
}

// Prices returns the price entries ordered like Services.
func (p *Profile) Prices() []*PriceEntry {
	out := make([]*PriceEntry, 0, len(p.prices))
	for _, id := range p.services {
		if e, ok := p.prices[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

func (p *Profile) Offers(serviceID kernel.UUID) bool {
	for _, id := range p.services {
		if id.IsEqual(serviceID) {
			return true
		}
	}
	return false
}

// PriceFor returns the provider's own price for an offered service.
func (p *Profile) PriceFor(serviceID kernel.UUID) (kernel.Price, bool) {
	if !p.Offers(serviceID) {
		return kernel.Price{}, false
	}
	e, ok := p.prices[serviceID]
	if !ok {
		return kernel.Price{}, false
	}
	return e.price, true
}

func (p *Profile) SetCity(city kernel.City) {
	p.city = city
}

// SetServices replaces the offered set and reconciles price entries: prices
// of services that stay offered are kept, new services start at base price.
func (p *Profile) SetServices(services []*catalog.Service) error {
	ids := make([]kernel.UUID, 0, len(services))
	seen := make(map[kernel.UUID]struct{}, len(services))
	for _, s := range services {
		if err := s.Validate(); err != nil {
			return err
		}
		if _, dup := seen[s.ID()]; dup {
			continue
		}
		seen[s.ID()] = struct{}{}
		ids = append(ids, s.ID())
	}

	p.services = ids
	return p.SyncPrices(services)
}

// SyncPrices drops entries of services no longer offered and adds base-price
// entries for offered services that lack one. known must contain every
// offered service lacking an entry. Running it twice changes nothing.
func (p *Profile) SyncPrices(known []*catalog.Service) error {
	offered := make(map[kernel.UUID]struct{}, len(p.services))
	for _, id := range p.services {
		offered[id] = struct{}{}
	}
	for id := range p.prices {
		if _, ok := offered[id]; !ok {
			delete(p.prices, id)
		}
	}

	bases := make(map[kernel.UUID]kernel.Price, len(known))
	for _, s := range known {
		if s != nil {
			bases[s.ID()] = s.BasePrice()
		}
	}
	for _, id := range p.services {
		if _, ok := p.prices[id]; ok {
			continue
		}
		base, ok := bases[id]
		if !ok {
			return errs.NewValueIsRequiredErrorWithCause("basePrice", fmt.Errorf("service %s is not in the catalog", id))
		}
		entry, err := NewPriceEntry(id, base)
		if err != nil {
			return err
		}
		p.prices[id] = entry
	}

	return nil
}

// SetPrices upserts prices for offered services. Nothing is applied unless
// every item is valid.
func (p *Profile) SetPrices(items []PriceItem) error {
	var problems []error
	for _, item := range items {
		if !p.Offers(item.ServiceID) {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("service_id", ErrServiceNotOffered))
		}
		if item.Price.Validate() != nil || !item.Price.IsPositive() {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("price", ErrPriceNotPositive))
		}
	}
	if len(problems) > 0 {
		return errors.Join(problems...)
	}

	for _, item := range items {
		p.prices[item.ServiceID] = &PriceEntry{serviceID: item.ServiceID, price: item.Price}
	}
	return nil
}

func (p *Profile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Profile) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	p.userID = userID
	return nil
}

func (p *Profile) setServiceIDs(services []kernel.UUID) error {
	p.services = make([]kernel.UUID, 0, len(services))
	for _, id := range services {
		if err := id.Validate(); err != nil {
			return err
		}
		if !p.Offers(id) {
			p.services = append(p.services, id)
		}
	}
	return nil
}

func (p *Profile) setPriceEntries(prices []*PriceEntry) error {
	for _, e := range prices {
		if e == nil {
			return errs.NewValueIsRequiredError("priceEntry")
		}
		p.prices[e.serviceID] = e
	}
	return nil
}
