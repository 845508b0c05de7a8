package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

// UpdateOrderFieldCommandHandler applies a single field change event to a
// draft. The aggregate runs the clearing effects of the change and the
// updated draft is persisted in one transaction.
type UpdateOrderFieldCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderFieldCommandHandler creates a handler for field change events.
func NewUpdateOrderFieldCommandHandler(uowFactory OrderUoWFactory) UpdateOrderFieldCommandHandler {
	return UpdateOrderFieldCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the draft, parses the new value into the field's type, applies
// it through the aggregate, and persists the result. A parse or rule failure
// leaves the stored draft unchanged.
func (h *UpdateOrderFieldCommandHandler) Handle(ctx context.Context, cmd UpdateOrderFieldCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = applyField(aggregate, cmd.Field(), cmd.Value()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// applyField parses the string value into the field's type and invokes the
// matching aggregate mutator.
func applyField(o *order.Order, field order.Field, value string) error {
	switch field {
	case order.FieldCustomerName:
		return o.SetCustomerName(value)

	case order.FieldPhone:
		phone, err := kernel.NewPhone(value)
		if err != nil {
			return err
		}
		return o.SetPhone(phone)

	case order.FieldAltPhone:
		if value == "" {
			return o.SetAltPhone(nil)
		}
		phone, err := kernel.NewPhone(value)
		if err != nil {
			return err
		}
		return o.SetAltPhone(&phone)

	case order.FieldEmail:
		email, err := kernel.NewEmail(value)
		if err != nil {
			return err
		}
		return o.SetEmail(email)

	case order.FieldBillingAddress:
		return o.SetBillingAddress(value)

	case order.FieldShippingAddress:
		return o.SetShippingAddress(value)

	case order.FieldSameAddress:
		same, err := strconv.ParseBool(value)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause(string(field), err)
		}
		o.SetSameAddress(same)
		return nil

	case order.FieldPostalCode:
		code, err := kernel.NewPostalCode(value)
		if err != nil {
			return err
		}
		return o.SetPostalCode(code)

	case order.FieldCategory:
		category, err := order.CategoryFromString(value)
		if err != nil {
			return err
		}
		return o.SetCategory(category)

	case order.FieldDispatchOrigin:
		return o.SetDispatchOrigin(value)

	case order.FieldGemOrderNumber:
		return o.SetGemOrderNumber(value)

	case order.FieldDeliveryDate:
		date, err := parseDate(field, value)
		if err != nil {
			return err
		}
		return o.SetDeliveryDate(date)

	case order.FieldDemoDate:
		date, err := parseDate(field, value)
		if err != nil {
			return err
		}
		return o.SetDemoDate(date)

	case order.FieldPaymentTerms:
		terms, err := order.PaymentTermsFromString(value)
		if err != nil {
			return err
		}
		return o.SetPaymentTerms(terms)

	case order.FieldPaymentMethod:
		method, err := order.PaymentMethodFromString(value)
		if err != nil {
			return err
		}
		return o.SetPaymentMethod(method)

	case order.FieldPaymentCollected:
		amount, err := kernel.MoneyFromString(value)
		if err != nil {
			return err
		}
		return o.SetCollected(amount)

	case order.FieldTransactionID:
		return o.SetTransactionID(value)

	case order.FieldChequeID:
		return o.SetChequeID(value)

	case order.FieldCreditDays:
		days, err := strconv.Atoi(value)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause(string(field), err)
		}
		return o.SetCreditDays(days)

	case order.FieldFreightMode:
		mode, err := order.BillingModeFromString(value)
		if err != nil {
			return err
		}
		return o.SetFreightMode(mode)

	case order.FieldFreightAmount:
		amount, err := kernel.MoneyFromString(value)
		if err != nil {
			return err
		}
		return o.SetFreightAmount(amount)

	case order.FieldInstallationMode:
		mode, err := order.BillingModeFromString(value)
		if err != nil {
			return err
		}
		return o.SetInstallationMode(mode)

	case order.FieldInstallationAmount:
		amount, err := kernel.MoneyFromString(value)
		if err != nil {
			return err
		}
		return o.SetInstallationAmount(amount)

	case order.FieldRemarks:
		o.SetRemarks(value)
		return nil

	case order.FieldApprovalStatus:
		status, err := order.ApprovalStatusFromString(value)
		if err != nil {
			return err
		}
		return o.SetApprovalStatus(status)

	case order.FieldProductionStatus:
		status, err := order.ProductionStatusFromString(value)
		if err != nil {
			return err
		}
		return o.SetProductionStatus(status)

	case order.FieldBillingStatus:
		status, err := order.BillingStatusFromString(value)
		if err != nil {
			return err
		}
		return o.SetBillingStatus(status)

	default:
		return errs.NewValueIsInvalidErrorWithCause("field",
			fmt.Errorf("%q is not an editable field", field))
	}
}

func parseDate(field order.Field, value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(string(field), err)
	}
	return date, nil
}
