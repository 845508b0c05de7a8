package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// BillingMode controls how a freight or installation charge is billed.
// Only BillingExtra ("surcharge applies now") lets the corresponding amount
// count toward the order total; every other mode zeroes it out.
type BillingMode int

const (
	// BillingModeUnknown represents an invalid or undefined billing mode.
	BillingModeUnknown BillingMode = iota

	// BillingExtra charges the amount on this order.
	BillingExtra

	// BillingIncluding absorbs the charge into the line prices.
	BillingIncluding

	// BillingToPay defers the charge to be paid on delivery.
	BillingToPay

	// BillingSelfPickup means the customer collects the goods themselves.
	BillingSelfPickup
)

func getBillingModeStrings() map[BillingMode]string {
	return map[BillingMode]string{
		BillingModeUnknown: "Unknown",
		BillingExtra:       "Extra",
		BillingIncluding:   "Including",
		BillingToPay:       "To Pay",
		BillingSelfPickup:  "Self-Pickup",
	}
}

func getValidBillingModeStrings() map[BillingMode]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[BillingMode]string{
		BillingExtra:      "Extra",
		BillingIncluding:  "Including",
		BillingToPay:      "To Pay",
		BillingSelfPickup: "Self-Pickup",
	}
}

// BillingModeFromString parses the persisted or transported mode name.
func BillingModeFromString(s string) (BillingMode, error) {
	for m, str := range getValidBillingModeStrings() {
		if str == s {
			return m, nil
		}
	}
	return BillingModeUnknown, errs.NewValueIsInvalidErrorWithCause("billingMode",
		fmt.Errorf("%q is not a valid billing mode", s))
}

// Validate checks if the BillingMode value is valid.
func (m BillingMode) Validate() error {
	if _, ok := getValidBillingModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("billingMode",
			fmt.Errorf("%d is not a valid billing mode", m))
	}
	return nil
}

// String returns the human-readable name of the billing mode.
func (m BillingMode) String() string {
	if str, ok := getBillingModeStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// AppliesSurcharge reports whether the charge counts toward the order total.
func (m BillingMode) AppliesSurcharge() bool {
	return m == BillingExtra
}

// PaymentTerms describes when the order amount is due.
type PaymentTerms int

const (
	// PaymentTermsUnset means no terms have been chosen yet. Demo orders
	// keep terms unset because no payment is collected.
	PaymentTermsUnset PaymentTerms = iota

	// PaymentTermsFullAdvance collects the full amount before dispatch.
	PaymentTermsFullAdvance

	// PaymentTermsCredit defers payment; requires credit days.
	PaymentTermsCredit

	// PaymentTermsPartialAdvance collects part up front and the rest on
	// credit; requires credit days.
	PaymentTermsPartialAdvance
)

func getPaymentTermsStrings() map[PaymentTerms]string {
	return map[PaymentTerms]string{
		PaymentTermsUnset:          "",
		PaymentTermsFullAdvance:    "Full Advance",
		PaymentTermsCredit:         "Credit",
		PaymentTermsPartialAdvance: "Partial Advance",
	}
}

// PaymentTermsFromString parses the persisted terms name. The empty string
// maps to PaymentTermsUnset.
func PaymentTermsFromString(s string) (PaymentTerms, error) {
	for terms, str := range getPaymentTermsStrings() {
		if str == s {
			return terms, nil
		}
	}
	return PaymentTermsUnset, errs.NewValueIsInvalidErrorWithCause("paymentTerms",
		fmt.Errorf("%q is not a valid payment terms value", s))
}

// String returns the human-readable name of the payment terms.
func (t PaymentTerms) String() string {
	if str, ok := getPaymentTermsStrings()[t]; ok {
		return str
	}
	return ""
}

// IsSet reports whether terms have been chosen.
func (t PaymentTerms) IsSet() bool {
	return t != PaymentTermsUnset
}

// RequiresCreditDays reports whether these terms require a credit period.
func (t PaymentTerms) RequiresCreditDays() bool {
	return t == PaymentTermsCredit || t == PaymentTermsPartialAdvance
}

// PaymentMethod is the instrument used to collect payment.
type PaymentMethod int

const (
	// PaymentMethodUnset means no method has been chosen yet.
	PaymentMethodUnset PaymentMethod = iota

	// PaymentMethodCash is a cash collection.
	PaymentMethodCash

	// PaymentMethodCheque requires a cheque id.
	PaymentMethodCheque

	// PaymentMethodNEFT is a bank transfer; enables a transaction id.
	PaymentMethodNEFT

	// PaymentMethodRTGS is a bank transfer; enables a transaction id.
	PaymentMethodRTGS

	// PaymentMethodUPI is an instant transfer.
	PaymentMethodUPI
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnset:  "",
		PaymentMethodCash:   "Cash",
		PaymentMethodCheque: "Cheque",
		PaymentMethodNEFT:   "NEFT",
		PaymentMethodRTGS:   "RTGS",
		PaymentMethodUPI:    "UPI",
	}
}

// PaymentMethodFromString parses the persisted method name. The empty string
// maps to PaymentMethodUnset.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentMethodUnset, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s))
}

// String returns the human-readable name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return ""
}

// IsSet reports whether a method has been chosen.
func (m PaymentMethod) IsSet() bool {
	return m != PaymentMethodUnset
}

// UsesTransactionID reports whether the method is identified by a bank
// transaction id.
func (m PaymentMethod) UsesTransactionID() bool {
	return m == PaymentMethodNEFT || m == PaymentMethodRTGS
}

// UsesChequeID reports whether the method is identified by a cheque id.
func (m PaymentMethod) UsesChequeID() bool {
	return m == PaymentMethodCheque
}
