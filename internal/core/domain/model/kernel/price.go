package kernel

import (
	"errors"
	"fmt"
	"math"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrPriceIsNotConstructed is returned when validating a zero-value Price.
var ErrPriceIsNotConstructed = errors.New("Price must be created via NewPrice or PriceFromCents")

// maxPriceCents bounds prices so amounts survive a float64 round trip in JSON.
const maxPriceCents int64 = 1 << 50

// Price is a non-negative money amount in minor units (cents).
// Base prices and provider overrides are both Prices; comparison and
// minimum search work on cents so no float rounding leaks into ordering.
type Price struct {
	cents int64
	guard guard.ConstructorGuard
}

// NewPrice converts a decimal amount (as received over JSON) into a Price,
// rounding half away from zero to whole cents.
func NewPrice(amount float64) (Price, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not a number", amount))
	}
	return PriceFromCents(int64(math.Round(amount * 100)))
}

// PriceFromCents builds a Price from minor units, e.g. a persisted column.
func PriceFromCents(cents int64) (Price, error) {
	if cents < 0 || cents > maxPriceCents {
		return Price{}, errs.NewValueIsOutOfRangeError("price", cents, 0, maxPriceCents)
	}
	return Price{cents: cents, guard: guard.NewConstructorGuard()}, nil
}

func (p Price) Cents() int64 {
	return p.cents
}

// Amount returns the price in major units for presentation.
func (p Price) Amount() float64 {
	return float64(p.cents) / 100
}

// IsPositive reports whether the price is strictly greater than zero.
func (p Price) IsPositive() bool {
	return p.cents > 0
}

func (p Price) Less(other Price) bool {
	return p.cents < other.cents
}

func (p Price) IsEqual(other Price) bool {
	return p.cents == other.cents
}

func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", p.cents/100, p.cents%100)
}
