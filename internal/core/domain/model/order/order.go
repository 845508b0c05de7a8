package order

import (
	"errors"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoPendingDispatchChange is returned when confirming or cancelling
	// a dispatch change while no change has been requested.
	ErrNoPendingDispatchChange = errors.New("no dispatch status change is pending confirmation")
)

// DispatchRequest is a dispatch status change awaiting its confirmation
// step. The change is validated when requested and validated again when
// confirmed; until confirmation it has no effect on the status axes.
type DispatchRequest struct {
	Target      DispatchStatus
	Stamp       Stamp
	RequestedAt time.Time
}

// Order is the aggregate root of a furniture sales order. It owns the
// customer identity, addresses, the ordered lines with their tax treatment,
// the payment and surcharge settings, and the four lifecycle status axes.
//
// Invariants:
//   - Can only be created through NewOrder or RestoreOrder.
//   - The pricing breakdown is a pure function of the lines, surcharges,
//     and collected amount; Totals recomputes it on every call and it is
//     never stored or independently mutated.
//   - Changing a driver field immediately applies its clearing effects:
//     leaving B2G blanks the GeM number and delivery date, switching the
//     payment method blanks both payment ids, turning off a surcharge mode
//     zeroes its amount. Cleared values are not restored by switching back.
//   - Dispatched/Delivered are only reachable through the two-phase
//     dispatch request, which enforces the billing and stamp rules.
type Order struct {
	id kernel.UUID

	customerName string
	phone        kernel.Phone
	altPhone     *kernel.Phone
	email        kernel.Email

	billingAddress  string
	shippingAddress string
	sameAddress     bool
	postalCode      kernel.PostalCode

	category       Category
	dispatchOrigin string
	gemOrderNumber string
	deliveryDate   *time.Time
	demoDate       *time.Time

	paymentTerms  PaymentTerms
	paymentMethod PaymentMethod
	transactionID string
	chequeID      string
	creditDays    int
	collected     kernel.Money

	freightAmount      kernel.Money
	freightMode        BillingMode
	installationAmount kernel.Money
	installationMode   BillingMode

	lines   []Line
	remarks string

	approvalStatus   ApprovalStatus
	productionStatus ProductionStatus
	billingStatus    BillingStatus
	dispatchStatus   DispatchStatus
	stamp            Stamp

	pendingDispatch *DispatchRequest
	submittedAt     *time.Time

	isConstructed bool
}

// NewOrder creates a new order draft with lifecycle defaults: pending
// approval, pending billing, not dispatched, and a production status derived
// from the dispatch origin (factory orders start Pending, pre-stocked
// origins start Fulfilled).
func NewOrder(
	id kernel.UUID,
	customerName string,
	phone kernel.Phone,
	category Category,
	dispatchOrigin string,
) (*Order, error) {
	o := &Order{
		approvalStatus:     PendingApproval,
		billingStatus:      BillingPending,
		dispatchStatus:     NotDispatched,
		freightMode:        BillingToPay,
		installationMode:   BillingToPay,
		collected:          kernel.ZeroMoney(),
		freightAmount:      kernel.ZeroMoney(),
		installationAmount: kernel.ZeroMoney(),
		isConstructed:      true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setPhone(phone),
		o.setCategory(category),
		o.setDispatchOrigin(dispatchOrigin),
	); err != nil {
		return nil, err
	}

	o.productionStatus = DefaultProductionStatus(dispatchOrigin)
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Phone returns the customer's phone number.
func (o *Order) Phone() kernel.Phone {
	return o.phone
}

// AltPhone returns the alternate phone number, nil when not set.
func (o *Order) AltPhone() *kernel.Phone {
	return o.altPhone
}

// Email returns the customer's email address.
func (o *Order) Email() kernel.Email {
	return o.email
}

// BillingAddress returns the billing address.
func (o *Order) BillingAddress() string {
	return o.billingAddress
}

// ShippingAddress returns the shipping address.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// SameAddress reports whether shipping tracks the billing address.
func (o *Order) SameAddress() bool {
	return o.sameAddress
}

// PostalCode returns the customer's postal code.
func (o *Order) PostalCode() kernel.PostalCode {
	return o.postalCode
}

// Category returns the order category.
func (o *Order) Category() Category {
	return o.category
}

// DispatchOrigin returns the location goods are dispatched from.
func (o *Order) DispatchOrigin() string {
	return o.dispatchOrigin
}

// GemOrderNumber returns the GeM order number for B2G orders.
func (o *Order) GemOrderNumber() string {
	return o.gemOrderNumber
}

// DeliveryDate returns the agreed delivery date, nil when not set.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// DemoDate returns the demo date for Demo orders, nil when not set.
func (o *Order) DemoDate() *time.Time {
	return o.demoDate
}

// PaymentTerms returns the payment terms.
func (o *Order) PaymentTerms() PaymentTerms {
	return o.paymentTerms
}

// PaymentMethod returns the payment method.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// TransactionID returns the bank transaction id for NEFT/RTGS payments.
func (o *Order) TransactionID() string {
	return o.transactionID
}

// ChequeID returns the cheque id for cheque payments.
func (o *Order) ChequeID() string {
	return o.chequeID
}

// CreditDays returns the credit period in days.
func (o *Order) CreditDays() int {
	return o.creditDays
}

// Collected returns the amount collected so far.
func (o *Order) Collected() kernel.Money {
	return o.collected
}

// FreightAmount returns the freight charge amount.
func (o *Order) FreightAmount() kernel.Money {
	return o.freightAmount
}

// FreightMode returns the freight billing mode.
func (o *Order) FreightMode() BillingMode {
	return o.freightMode
}

// InstallationAmount returns the installation charge amount.
func (o *Order) InstallationAmount() kernel.Money {
	return o.installationAmount
}

// InstallationMode returns the installation billing mode.
func (o *Order) InstallationMode() BillingMode {
	return o.installationMode
}

// Lines returns a copy of the ordered line sequence.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Remarks returns the free-text remarks.
func (o *Order) Remarks() string {
	return o.remarks
}

// ApprovalStatus returns the approval axis value.
func (o *Order) ApprovalStatus() ApprovalStatus {
	return o.approvalStatus
}

// ProductionStatus returns the production axis value.
func (o *Order) ProductionStatus() ProductionStatus {
	return o.productionStatus
}

// BillingStatus returns the billing axis value.
func (o *Order) BillingStatus() BillingStatus {
	return o.billingStatus
}

// DispatchStatus returns the dispatch axis value.
func (o *Order) DispatchStatus() DispatchStatus {
	return o.dispatchStatus
}

// Stamp returns the delivery receipt stamp.
func (o *Order) Stamp() Stamp {
	return o.stamp
}

// PendingDispatch returns the dispatch change awaiting confirmation, nil
// when none is pending.
func (o *Order) PendingDispatch() *DispatchRequest {
	if o.pendingDispatch == nil {
		return nil
	}
	req := *o.pendingDispatch
	return &req
}

// SubmittedAt returns the time the order was accepted by the external API,
// nil while the draft has not been submitted.
func (o *Order) SubmittedAt() *time.Time {
	return o.submittedAt
}

// MarkSubmitted records a successful hand-off to the external API. It is only
// called after the gateway accepted the record, so a failed submission leaves
// the draft untouched and re-editable.
func (o *Order) MarkSubmitted(at time.Time) {
	o.submittedAt = &at
}

// Totals recomputes the pricing breakdown from the current lines,
// surcharges, and collected amount.
func (o *Order) Totals() TotalBreakdown {
	return ComputeTotals(
		o.lines,
		o.freightAmount, o.freightMode,
		o.installationAmount, o.installationMode,
		o.collected,
	)
}

// Constraints derives the field constraints for the current driver values.
func (o *Order) Constraints() Constraints {
	return DeriveConstraints(o)
}

// SetCustomerName updates the customer's name.
func (o *Order) SetCustomerName(name string) error {
	return o.setCustomerName(name)
}

// SetPhone updates the customer's phone number.
func (o *Order) SetPhone(phone kernel.Phone) error {
	return o.setPhone(phone)
}

// SetAltPhone updates the alternate phone number. Passing nil clears it.
func (o *Order) SetAltPhone(phone *kernel.Phone) error {
	if phone == nil {
		o.altPhone = nil
		return nil
	}
	if err := phone.Validate(); err != nil {
		return err
	}
	p := *phone
	o.altPhone = &p
	return nil
}

// SetEmail updates the customer's email address.
func (o *Order) SetEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	o.email = email
	return nil
}

// SetBillingAddress updates the billing address. While the same-address
// flag is set, the shipping address tracks every billing edit.
func (o *Order) SetBillingAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError(string(FieldBillingAddress))
	}
	o.billingAddress = address
	if o.sameAddress {
		o.shippingAddress = address
	}
	return nil
}

// SetShippingAddress updates the shipping address. Rejected while the
// same-address flag is set, because shipping tracks billing then.
func (o *Order) SetShippingAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError(string(FieldShippingAddress))
	}
	if o.sameAddress {
		return errs.NewValueIsInvalidErrorWithCause(string(FieldShippingAddress),
			errors.New("shipping address tracks the billing address while the same-address flag is set"))
	}
	o.shippingAddress = address
	return nil
}

// SetSameAddress toggles the same-address flag. Turning it on copies the
// billing address onto shipping immediately.
func (o *Order) SetSameAddress(same bool) {
	o.sameAddress = same
	if same {
		o.shippingAddress = o.billingAddress
	}
}

// SetPostalCode updates the customer's postal code.
func (o *Order) SetPostalCode(code kernel.PostalCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.postalCode = code
	return nil
}

// SetCategory changes the order category and applies the clearing effects
// of leaving the previous one. Moving away from B2G blanks the GeM order
// number and delivery date; those values are not restored by moving back.
// Moving to Demo blanks every payment field because demo placements collect
// no payment.
func (o *Order) SetCategory(category Category) error {
	if err := o.setCategory(category); err != nil {
		return err
	}

	if category != CategoryB2G {
		o.gemOrderNumber = ""
		o.deliveryDate = nil
	}
	if category != CategoryDemo {
		o.demoDate = nil
	}
	if category == CategoryDemo {
		o.paymentMethod = PaymentMethodUnset
		o.paymentTerms = PaymentTermsUnset
		o.transactionID = ""
		o.chequeID = ""
		o.creditDays = 0
		o.collected = kernel.ZeroMoney()
	}
	return nil
}

// SetDispatchOrigin changes the dispatch origin and re-derives the default
// production status: factory orders go back to Pending, pre-stocked origins
// to Fulfilled.
func (o *Order) SetDispatchOrigin(origin string) error {
	if err := o.setDispatchOrigin(origin); err != nil {
		return err
	}
	o.productionStatus = DefaultProductionStatus(origin)
	return nil
}

// SetGemOrderNumber records the GeM order number. Only B2G orders carry one.
func (o *Order) SetGemOrderNumber(number string) error {
	if o.category != CategoryB2G {
		return errs.NewValueIsInvalidErrorWithCause(string(FieldGemOrderNumber),
			fmt.Errorf("%s orders do not carry a GeM order number", o.category))
	}
	o.gemOrderNumber = number
	return nil
}

// SetDeliveryDate records the agreed delivery date. Only B2G orders allow one.
func (o *Order) SetDeliveryDate(date time.Time) error {
	if o.category != CategoryB2G {
		return errs.NewValueIsInvalidErrorWithCause(string(FieldDeliveryDate),
			fmt.Errorf("%s orders do not carry a delivery date", o.category))
	}
	o.deliveryDate = &date
	return nil
}

// SetDemoDate records the demo date. Only Demo orders carry one.
func (o *Order) SetDemoDate(date time.Time) error {
	if o.category != CategoryDemo {
		return errs.NewValueIsInvalidErrorWithCause(string(FieldDemoDate),
			fmt.Errorf("%s orders do not carry a demo date", o.category))
	}
	o.demoDate = &date
	return nil
}

// SetPaymentTerms changes the payment terms. Terms that carry no credit
// period clear the credit days.
func (o *Order) SetPaymentTerms(terms PaymentTerms) error {
	if o.category == CategoryDemo && terms.IsSet() {
		return errs.NewValueIsInvalidErrorWithCause(string(FieldPaymentTerms),
			errors.New("demo orders collect no payment"))
	}
	o.paymentTerms = terms
	if !terms.RequiresCreditDays() {
		o.creditDays = 0
	}
	return nil
}

// SetPaymentMethod changes the payment method. Both the transaction id and
// the cheque id are blanked on every change event, including re-selecting
// the current method: method-specific ids never survive a method switch.
func (o *Order) SetPaymentMethod(method PaymentMethod) error {
	if o.category == CategoryDemo && method.IsSet() {
		return errs.NewValueIsInvalidErrorWithCause(string(FieldPaymentMethod),
			errors.New("demo orders collect no payment"))
	}
	o.paymentMethod = method
	o.transactionID = ""
	o.chequeID = ""
	return nil
}

// SetTransactionID records the bank transaction id. Only NEFT/RTGS payments
// carry one.
func (o *Order) SetTransactionID(id string) error {
	if !o.paymentMethod.UsesTransactionID() {
		return errs.NewValueIsInvalidErrorWithCause(string(FieldTransactionID),
			fmt.Errorf("payment method %q does not use a transaction id", o.paymentMethod))
	}
	o.transactionID = id
	return nil
}

// SetChequeID records the cheque id. Only cheque payments carry one.
func (o *Order) SetChequeID(id string) error {
	if !o.paymentMethod.UsesChequeID() {
		return errs.NewValueIsInvalidErrorWithCause(string(FieldChequeID),
			fmt.Errorf("payment method %q does not use a cheque id", o.paymentMethod))
	}
	o.chequeID = id
	return nil
}

// SetCreditDays records the credit period. Only credit and partial-advance
// terms carry one.
func (o *Order) SetCreditDays(days int) error {
	if !o.paymentTerms.RequiresCreditDays() {
		return errs.NewValueIsInvalidErrorWithCause(string(FieldCreditDays),
			fmt.Errorf("payment terms %q do not carry credit days", o.paymentTerms))
	}
	if days <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(string(FieldCreditDays),
			fmt.Errorf("%d is not greater than 0", days))
	}
	o.creditDays = days
	return nil
}

// SetCollected records the amount collected so far.
func (o *Order) SetCollected(amount kernel.Money) error {
	if o.category == CategoryDemo && !amount.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause(string(FieldPaymentCollected),
			errors.New("demo orders collect no payment"))
	}
	if err := amount.Validate(); err != nil {
		return err
	}
	o.collected = amount
	return nil
}

// SetFreightMode changes the freight billing mode. Any mode that does not
// apply the surcharge on this order zeroes the freight amount.
func (o *Order) SetFreightMode(mode BillingMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	o.freightMode = mode
	if !mode.AppliesSurcharge() {
		o.freightAmount = kernel.ZeroMoney()
	}
	return nil
}

// SetFreightAmount records the freight charge. Only editable while the
// freight billing mode applies the surcharge.
func (o *Order) SetFreightAmount(amount kernel.Money) error {
	if !o.freightMode.AppliesSurcharge() {
		return errs.NewValueIsInvalidErrorWithCause(string(FieldFreightAmount),
			fmt.Errorf("freight amount is disabled in %q billing mode", o.freightMode))
	}
	if err := amount.Validate(); err != nil {
		return err
	}
	o.freightAmount = amount
	return nil
}

// SetInstallationMode changes the installation billing mode. Any mode that
// does not apply the surcharge on this order zeroes the installation amount.
func (o *Order) SetInstallationMode(mode BillingMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	o.installationMode = mode
	if !mode.AppliesSurcharge() {
		o.installationAmount = kernel.ZeroMoney()
	}
	return nil
}

// SetInstallationAmount records the installation charge. Only editable while
// the installation billing mode applies the surcharge.
func (o *Order) SetInstallationAmount(amount kernel.Money) error {
	if !o.installationMode.AppliesSurcharge() {
		return errs.NewValueIsInvalidErrorWithCause(string(FieldInstallationAmount),
			fmt.Errorf("installation amount is disabled in %q billing mode", o.installationMode))
	}
	if err := amount.Validate(); err != nil {
		return err
	}
	o.installationAmount = amount
	return nil
}

// SetRemarks updates the free-text remarks.
func (o *Order) SetRemarks(remarks string) {
	o.remarks = remarks
}

// AddLine appends a validated line to the order.
func (o *Order) AddLine(line Line) error {
	if err := line.Validate(); err != nil {
		return err
	}
	o.lines = append(o.lines, line)
	return nil
}

// UpdateLine replaces the line at the given index.
func (o *Order) UpdateLine(index int, line Line) error {
	if index < 0 || index >= len(o.lines) {
		return errs.NewValueIsOutOfRangeError("lineIndex", index, 0, len(o.lines)-1)
	}
	if err := line.Validate(); err != nil {
		return err
	}
	o.lines[index] = line
	return nil
}

// RemoveLine deletes the line at the given index.
func (o *Order) RemoveLine(index int) error {
	if index < 0 || index >= len(o.lines) {
		return errs.NewValueIsOutOfRangeError("lineIndex", index, 0, len(o.lines)-1)
	}
	o.lines = append(o.lines[:index], o.lines[index+1:]...)
	return nil
}

// SetApprovalStatus sets the approval axis. Any valid value is allowed;
// approval is an operator-driven label, not a strict pipeline.
func (o *Order) SetApprovalStatus(status ApprovalStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.approvalStatus = status
	return nil
}

// SetProductionStatus sets the production axis. Any valid value is allowed.
func (o *Order) SetProductionStatus(status ProductionStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.productionStatus = status
	return nil
}

// SetBillingStatus sets the billing axis. Any valid value is allowed.
func (o *Order) SetBillingStatus(status BillingStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.billingStatus = status
	return nil
}

// RequestDispatchChange validates a dispatch status change and records it as
// pending confirmation. The status axes are untouched until the change is
// confirmed; a rejected request leaves the order exactly as it was.
func (o *Order) RequestDispatchChange(target DispatchStatus, stamp Stamp, requestedAt time.Time) error {
	if err := o.dispatchStatus.ValidateTransition(target, o.billingStatus, stamp); err != nil {
		return err
	}

	o.pendingDispatch = &DispatchRequest{
		Target:      target,
		Stamp:       stamp,
		RequestedAt: requestedAt,
	}
	return nil
}

// ConfirmDispatchChange applies the pending dispatch change. The transition
// is validated again against the current billing status, so a change that
// became illegal between request and confirmation is rejected and discarded.
func (o *Order) ConfirmDispatchChange() error {
	if o.pendingDispatch == nil {
		return ErrNoPendingDispatchChange
	}

	req := *o.pendingDispatch
	if err := o.dispatchStatus.ValidateTransition(req.Target, o.billingStatus, req.Stamp); err != nil {
		o.pendingDispatch = nil
		return err
	}

	o.dispatchStatus = req.Target
	if req.Stamp.IsSet() {
		o.stamp = req.Stamp
	}
	o.pendingDispatch = nil
	return nil
}

// CancelDispatchChange discards the pending dispatch change.
func (o *Order) CancelDispatchChange() error {
	if o.pendingDispatch == nil {
		return ErrNoPendingDispatchChange
	}
	o.pendingDispatch = nil
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError(string(FieldCustomerName))
	}
	o.customerName = name
	return nil
}

func (o *Order) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	o.phone = phone
	return nil
}

func (o *Order) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	o.category = category
	return nil
}

func (o *Order) setDispatchOrigin(origin string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError(string(FieldDispatchOrigin))
	}
	o.dispatchOrigin = origin
	return nil
}
