package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// inclusiveTaxRateString is the wire and persistence marker for the
// tax-inclusive treatment.
const inclusiveTaxRateString = "inclusive"

// ErrTaxRateIsNotConstructed is returned when validating a zero-value TaxRate.
var ErrTaxRateIsNotConstructed = errs.NewValueIsRequiredError(
	"tax rate must be created via NewTaxRate, InclusiveTaxRate, or TaxRateFromString")

// TaxRate is the tax treatment of a single order line: either a numeric
// percentage added on top of the line base, or the inclusive marker meaning
// the unit price already embeds tax and nothing is added.
type TaxRate struct { //nolint:recvcheck //using for validation
	percent   decimal.Decimal
	inclusive bool
	guard     guard.ConstructorGuard
}

// NewTaxRate creates a numeric percentage tax rate.
// Negative percentages are rejected.
func NewTaxRate(percent decimal.Decimal) (TaxRate, error) {
	r := TaxRate{
		guard: guard.NewConstructorGuard(),
	}

	if err := r.setPercent(percent); err != nil {
		return TaxRate{}, err
	}

	return r, nil
}

// InclusiveTaxRate returns the tax-inclusive treatment: the unit price
// already contains tax, so the line amount is exactly qty * unitPrice.
func InclusiveTaxRate() TaxRate {
	return TaxRate{
		inclusive: true,
		guard:     guard.NewConstructorGuard(),
	}
}

// StandardTaxRateLow returns the 5% GST rate offered on every category.
func StandardTaxRateLow() TaxRate {
	r, _ := NewTaxRate(decimal.NewFromInt(5))
	return r
}

// StandardTaxRateHigh returns the 18% GST rate offered on every category.
func StandardTaxRateHigh() TaxRate {
	r, _ := NewTaxRate(decimal.NewFromInt(18))
	return r
}

// TaxRateFromString parses the persisted form: "inclusive" or a decimal
// percentage such as "18".
func TaxRateFromString(s string) (TaxRate, error) {
	if s == inclusiveTaxRateString {
		return InclusiveTaxRate(), nil
	}

	percent, err := decimal.NewFromString(s)
	if err != nil {
		return TaxRate{}, errs.NewValueIsInvalidErrorWithCause("taxRate", err)
	}
	return NewTaxRate(percent)
}

// Validate checks that the TaxRate was created through a constructor.
func (r TaxRate) Validate() error {
	return r.guard.Validate(ErrTaxRateIsNotConstructed)
}

// IsInclusive reports whether the unit price already embeds tax.
func (r TaxRate) IsInclusive() bool {
	return r.inclusive
}

// Percent returns the numeric percentage. Zero for the inclusive treatment.
func (r TaxRate) Percent() decimal.Decimal {
	return r.percent
}

// String returns "inclusive" or the decimal percentage.
func (r TaxRate) String() string {
	if r.inclusive {
		return inclusiveTaxRateString
	}
	return r.percent.String()
}

// IsEqual compares two tax treatments.
func (r TaxRate) IsEqual(other TaxRate) bool {
	if r.inclusive || other.inclusive {
		return r.inclusive == other.inclusive
	}
	return r.percent.Equal(other.percent)
}

// AllowedFor reports whether this treatment is in the configured rate set of
// the given category. Inclusive is only offered to B2G orders.
func (r TaxRate) AllowedFor(category Category) bool {
	for _, allowed := range category.AllowedTaxRates() {
		if r.IsEqual(allowed) {
			return true
		}
	}
	return false
}

func (r *TaxRate) setPercent(percent decimal.Decimal) error {
	if percent.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("taxRate",
			fmt.Errorf("%s is negative", percent))
	}

	r.percent = percent
	return nil
}
