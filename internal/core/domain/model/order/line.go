package order

import (
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineIsNotConstructed is returned when a Line was not created through NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one product entry within an order: a product with its quantity,
// unit price, and tax treatment.
//
// Invariants:
//   - qty is strictly positive
//   - unitPrice is a constructed non-negative Money
//   - taxRate is a constructed tax treatment
//
// Whether the tax rate is allowed for the order's category, and whether the
// descriptive fields are filled in, is checked at submission time because
// both depend on the enclosing order.
type Line struct { //nolint:recvcheck //using for validation
	productType string
	size        string
	spec        string
	qty         int
	unitPrice   kernel.Money
	taxRate     TaxRate
	warranty    string

	guard guard.ConstructorGuard
}

// NewLine creates a validated order line.
func NewLine(
	productType string,
	size string,
	spec string,
	qty int,
	unitPrice kernel.Money,
	taxRate TaxRate,
	warranty string,
) (Line, error) {
	line := Line{
		productType: productType,
		size:        size,
		spec:        spec,
		warranty:    warranty,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setQty(qty),
		line.setUnitPrice(unitPrice),
		line.setTaxRate(taxRate),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line was created through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ProductType returns the product type description.
func (l Line) ProductType() string {
	return l.productType
}

// Size returns the product size.
func (l Line) Size() string {
	return l.size
}

// Spec returns the product specification.
func (l Line) Spec() string {
	return l.spec
}

// Qty returns the ordered quantity.
func (l Line) Qty() int {
	return l.qty
}

// UnitPrice returns the price per unit.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// TaxRate returns the line's tax treatment.
func (l Line) TaxRate() TaxRate {
	return l.taxRate
}

// Warranty returns the warranty term.
func (l Line) Warranty() string {
	return l.warranty
}

// Amount computes the taxed amount of the line.
//
// For the inclusive treatment the unit price already embeds tax, so the
// amount is exactly qty * unitPrice. For a numeric rate the amount is
// qty * unitPrice * (1 + rate/100). No rounding is applied here; rounding
// happens only when the order total is aggregated.
func (l Line) Amount() decimal.Decimal {
	base := l.unitPrice.Amount().Mul(decimal.NewFromInt(int64(l.qty)))
	if l.taxRate.IsInclusive() {
		return base
	}

	tax := base.Mul(l.taxRate.Percent()).Div(decimal.NewFromInt(100))
	return base.Add(tax)
}

func (l *Line) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	l.qty = qty
	return nil
}

func (l *Line) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *Line) setTaxRate(taxRate TaxRate) error {
	if err := taxRate.Validate(); err != nil {
		return err
	}
	l.taxRate = taxRate
	return nil
}
