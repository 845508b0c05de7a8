package services

import (
	"fmt"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// SubmissionValidator checks a complete order draft at submission time.
// Field-level edits are validated as they happen; the checks here are the ones
// that only make sense once the draft claims to be finished, such as "at least
// one line" or "every required field of the current category is filled in".
//
// Validation stops at the first failing field and returns an error naming it.
// The draft is never mutated.
type SubmissionValidator struct{}

// NewSubmissionValidator creates a new SubmissionValidator instance.
func NewSubmissionValidator() SubmissionValidator {
	return SubmissionValidator{}
}

// Validate runs every submission-time check against the order. It returns nil
// when the order is ready to submit, or the first field-specific error.
func (v SubmissionValidator) Validate(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := v.validateIdentity(o); err != nil {
		return err
	}
	if err := v.validateAddresses(o); err != nil {
		return err
	}
	if err := v.validateLines(o); err != nil {
		return err
	}
	return v.validateCategoryFields(o)
}

func (v SubmissionValidator) validateIdentity(o *order.Order) error {
	if o.CustomerName() == "" {
		return errs.NewValueIsRequiredError(string(order.FieldCustomerName))
	}
	if err := o.Phone().Validate(); err != nil {
		return errs.NewValueIsRequiredError(string(order.FieldPhone))
	}
	if alt := o.AltPhone(); alt != nil {
		if err := alt.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(string(order.FieldAltPhone), err)
		}
	}
	if err := o.Email().Validate(); err != nil {
		return errs.NewValueIsRequiredError(string(order.FieldEmail))
	}
	if err := o.PostalCode().Validate(); err != nil {
		return errs.NewValueIsRequiredError(string(order.FieldPostalCode))
	}
	return nil
}

func (v SubmissionValidator) validateAddresses(o *order.Order) error {
	if o.BillingAddress() == "" {
		return errs.NewValueIsRequiredError(string(order.FieldBillingAddress))
	}
	if o.ShippingAddress() == "" {
		return errs.NewValueIsRequiredError(string(order.FieldShippingAddress))
	}
	if o.DispatchOrigin() == "" {
		return errs.NewValueIsRequiredError(string(order.FieldDispatchOrigin))
	}
	return nil
}

func (v SubmissionValidator) validateLines(o *order.Order) error {
	lines := o.Lines()
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		if line.ProductType() == "" {
			return errs.NewValueIsRequiredError(lineField(i, "productType"))
		}
		if !line.UnitPrice().IsPositive() {
			return errs.NewValueIsInvalidErrorWithCause(lineField(i, "unitPrice"),
				fmt.Errorf("%s is not greater than 0", line.UnitPrice()))
		}
		if !line.TaxRate().AllowedFor(o.Category()) {
			return errs.NewValueIsInvalidErrorWithCause(lineField(i, "taxRate"),
				fmt.Errorf("tax rate %q is not allowed for %s orders", line.TaxRate(), o.Category()))
		}
		if line.Warranty() == "" {
			return errs.NewValueIsRequiredError(lineField(i, "warranty"))
		}
	}
	return nil
}

// validateCategoryFields enforces the conditionally required fields for the
// order's current category and payment settings.
func (v SubmissionValidator) validateCategoryFields(o *order.Order) error {
	if o.Category() == order.CategoryB2G && o.GemOrderNumber() == "" {
		return errs.NewValueIsRequiredError(string(order.FieldGemOrderNumber))
	}

	if o.Category() == order.CategoryDemo {
		if o.DemoDate() == nil {
			return errs.NewValueIsRequiredError(string(order.FieldDemoDate))
		}
		return nil
	}

	if !o.PaymentTerms().IsSet() {
		return errs.NewValueIsRequiredError(string(order.FieldPaymentTerms))
	}
	if o.PaymentTerms().RequiresCreditDays() && o.CreditDays() <= 0 {
		return errs.NewValueIsRequiredError(string(order.FieldCreditDays))
	}
	return nil
}

func lineField(index int, name string) string {
	return fmt.Sprintf("lines[%d].%s", index, name)
}
