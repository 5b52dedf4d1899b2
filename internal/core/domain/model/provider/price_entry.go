package provider

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

// PriceEntry is a provider's price for one offered service. Entries are
// immutable; changing a price replaces the entry.
type PriceEntry struct {
	serviceID kernel.UUID
	price     kernel.Price
}

func NewPriceEntry(serviceID kernel.UUID, price kernel.Price) (*PriceEntry, error) {
	if err := errors.Join(serviceID.Validate(), price.Validate()); err != nil {
		return nil, err
	}
	return &PriceEntry{serviceID: serviceID, price: price}, nil
}

func (e *PriceEntry) ServiceID() kernel.UUID { return e.serviceID }
func (e *PriceEntry) Price() kernel.Price    { return e.price }
