package kernel

import (
	"fmt"

	"matching/internal/pkg/errs"
	"matching/internal/pkg/guard"
)

// ErrPriceIsNotConstructed is returned when attempting to use an improperly
// initialized Price. Prices must be created via the NewPrice constructor.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice constructor")

// Price is an immutable value object representing a monetary amount in the
// smallest currency unit (cents). Offer prices must be strictly positive;
// the zero value is invalid and fails validation.
//
// Example:
//
//	price, err := kernel.NewPrice(4500) // 45.00
//	if err != nil {
//	    // Handle validation error
//	}
type Price struct { //nolint:recvcheck //using for validation
	cents int64
	guard guard.ConstructorGuard
}

// NewPrice creates a Price from an amount in cents.
// Returns an error if the amount is not strictly positive.
func NewPrice(cents int64) (Price, error) {
	if cents <= 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is not greater than 0", cents))
	}

	return Price{
		cents: cents,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Price was created through NewPrice.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Cents returns the amount in the smallest currency unit.
func (p Price) Cents() int64 {
	return p.cents
}

// IsEqual compares two prices by amount.
func (p Price) IsEqual(other Price) bool {
	return p.cents == other.cents
}

// IsLowerThan reports whether this price undercuts the other one.
func (p Price) IsLowerThan(other Price) bool {
	return p.cents < other.cents
}

// String formats the price with two decimal places, e.g. "45.00".
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", p.cents/100, p.cents%100)
}
