package order

import (
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// TotalBreakdown is the derived pricing of an order. It is a pure function of
// the lines, surcharges, and collected amount: the engine recomputes it on
// every relevant change and it is never stored or mutated independently.
type TotalBreakdown struct {
	// Subtotal is the sum of all taxed line amounts, unrounded.
	Subtotal decimal.Decimal

	// Freight is the freight charge counted toward the total. Zero unless
	// the freight billing mode applies the surcharge on this order.
	Freight decimal.Decimal

	// Installation is the installation charge counted toward the total.
	// Zero unless the installation billing mode applies the surcharge.
	Installation decimal.Decimal

	// Total is subtotal plus surcharges rounded half away from zero to the
	// nearest whole currency unit. Downstream reporting relies on the total
	// being a whole-currency figure.
	Total decimal.Decimal

	// PaymentDue is Total minus the collected amount, rounded to two
	// decimal places. Negative values indicate overpayment and are
	// surfaced as-is. The whole-unit/two-decimal asymmetry between Total
	// and PaymentDue is intentional and preserved.
	PaymentDue decimal.Decimal
}

// ComputeTotals aggregates the taxed line amounts and the gated surcharges
// into the order total and derives the outstanding balance.
func ComputeTotals(
	lines []Line,
	freight kernel.Money,
	freightMode BillingMode,
	installation kernel.Money,
	installationMode BillingMode,
	collected kernel.Money,
) TotalBreakdown {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Amount())
	}

	freightCharge := decimal.Zero
	if freightMode.AppliesSurcharge() {
		freightCharge = freight.Amount()
	}

	installationCharge := decimal.Zero
	if installationMode.AppliesSurcharge() {
		installationCharge = installation.Amount()
	}

	total := subtotal.Add(freightCharge).Add(installationCharge).Round(0)

	return TotalBreakdown{
		Subtotal:     subtotal,
		Freight:      freightCharge,
		Installation: installationCharge,
		Total:        total,
		PaymentDue:   total.Sub(collected.Amount()).Round(2),
	}
}
