package kernel

import (
	"fmt"

	"appraise/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed is returned when a Price was not created through
// NewPrice or PriceFromString. The zero value of Price is invalid.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice or PriceFromString")

// Price is a value object holding an exact-precision, non-negative money amount.
// It wraps shopspring/decimal so prices never go through floating point.
//
// Price is immutable and safe to copy. The zero value fails Validate; construct
// it through NewPrice or PriceFromString.
type Price struct {
	amount        decimal.Decimal
	isConstructed bool
}

// NewPrice creates a Price from a decimal amount.
// Returns an error if the amount is negative.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", amount.String()))
	}

	return Price{amount: amount, isConstructed: true}, nil
}

// PriceFromString parses a decimal string such as "50000.00" into a Price.
// Returns an error if the string is not a valid decimal or is negative.
func PriceFromString(s string) (Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}

	return NewPrice(amount)
}

// Amount returns the underlying decimal amount.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// String returns the canonical decimal representation of the price.
func (p Price) String() string {
	return p.amount.String()
}

// IsEqual compares two prices by numeric value, ignoring exponent representation.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// Validate checks that the Price was created through a constructor.
func (p Price) Validate() error {
	if !p.isConstructed {
		return ErrPriceIsNotConstructed
	}
	return nil
}
