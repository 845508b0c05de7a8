package order

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// RestoreOrderParams carries the persisted state of an order for
// rehydration. Optional fields stay nil or zero when absent.
type RestoreOrderParams struct {
	ID kernel.UUID

	CustomerName string
	Phone        kernel.Phone
	AltPhone     *kernel.Phone
	Email        kernel.Email

	BillingAddress  string
	ShippingAddress string
	SameAddress     bool
	PostalCode      kernel.PostalCode

	Category       Category
	DispatchOrigin string
	GemOrderNumber string
	DeliveryDate   *time.Time
	DemoDate       *time.Time

	PaymentTerms  PaymentTerms
	PaymentMethod PaymentMethod
	TransactionID string
	ChequeID      string
	CreditDays    int
	Collected     kernel.Money

	FreightAmount      kernel.Money
	FreightMode        BillingMode
	InstallationAmount kernel.Money
	InstallationMode   BillingMode

	Lines   []Line
	Remarks string

	ApprovalStatus   ApprovalStatus
	ProductionStatus ProductionStatus
	BillingStatus    BillingStatus
	DispatchStatus   DispatchStatus
	Stamp            Stamp

	PendingDispatch *DispatchRequest
	SubmittedAt     *time.Time
}

// RestoreOrder reconstructs an order aggregate from persistence. The core
// identity and every status axis are re-validated so rows corrupted outside
// the application cannot re-enter the domain, but no clearing effects run:
// the persisted state is taken as-is.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.Phone.Validate(),
		p.Category.Validate(),
		p.FreightMode.Validate(),
		p.InstallationMode.Validate(),
		p.Collected.Validate(),
		p.FreightAmount.Validate(),
		p.InstallationAmount.Validate(),
		p.ApprovalStatus.Validate(),
		p.ProductionStatus.Validate(),
		p.BillingStatus.Validate(),
		p.DispatchStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if p.CustomerName == "" {
		return nil, errs.NewValueIsRequiredError(string(FieldCustomerName))
	}

	for _, line := range p.Lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		id:                 p.ID,
		customerName:       p.CustomerName,
		phone:              p.Phone,
		altPhone:           p.AltPhone,
		email:              p.Email,
		billingAddress:     p.BillingAddress,
		shippingAddress:    p.ShippingAddress,
		sameAddress:        p.SameAddress,
		postalCode:         p.PostalCode,
		category:           p.Category,
		dispatchOrigin:     p.DispatchOrigin,
		gemOrderNumber:     p.GemOrderNumber,
		deliveryDate:       p.DeliveryDate,
		demoDate:           p.DemoDate,
		paymentTerms:       p.PaymentTerms,
		paymentMethod:      p.PaymentMethod,
		transactionID:      p.TransactionID,
		chequeID:           p.ChequeID,
		creditDays:         p.CreditDays,
		collected:          p.Collected,
		freightAmount:      p.FreightAmount,
		freightMode:        p.FreightMode,
		installationAmount: p.InstallationAmount,
		installationMode:   p.InstallationMode,
		lines:              append([]Line(nil), p.Lines...),
		remarks:            p.Remarks,
		approvalStatus:     p.ApprovalStatus,
		productionStatus:   p.ProductionStatus,
		billingStatus:      p.BillingStatus,
		dispatchStatus:     p.DispatchStatus,
		stamp:              p.Stamp,
		pendingDispatch:    p.PendingDispatch,
		submittedAt:        p.SubmittedAt,
		isConstructed:      true,
	}

	return o, nil
}
