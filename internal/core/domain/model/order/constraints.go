package order

// Field names an editable order field. The set of constants covers every
// field a caller can change through a field-level edit event; the constraint
// engine references the subset whose availability depends on driver fields.
type Field string

const (
	FieldCustomerName       Field = "customerName"
	FieldPhone              Field = "phone"
	FieldAltPhone           Field = "altPhone"
	FieldEmail              Field = "email"
	FieldBillingAddress     Field = "billingAddress"
	FieldShippingAddress    Field = "shippingAddress"
	FieldSameAddress        Field = "sameAddress"
	FieldPostalCode         Field = "postalCode"
	FieldCategory           Field = "category"
	FieldDispatchOrigin     Field = "dispatchOrigin"
	FieldGemOrderNumber     Field = "gemOrderNumber"
	FieldDeliveryDate       Field = "deliveryDate"
	FieldDemoDate           Field = "demoDate"
	FieldPaymentTerms       Field = "paymentTerms"
	FieldPaymentMethod      Field = "paymentMethod"
	FieldPaymentCollected   Field = "paymentCollected"
	FieldTransactionID      Field = "transactionId"
	FieldChequeID           Field = "chequeId"
	FieldCreditDays         Field = "creditDays"
	FieldFreightMode        Field = "freightMode"
	FieldFreightAmount      Field = "freightAmount"
	FieldInstallationMode   Field = "installationMode"
	FieldInstallationAmount Field = "installationAmount"
	FieldRemarks            Field = "remarks"
	FieldApprovalStatus     Field = "approvalStatus"
	FieldProductionStatus   Field = "productionStatus"
	FieldBillingStatus      Field = "billingStatus"
)

// FieldSet is a set of field names.
type FieldSet map[Field]struct{}

// Has reports whether the field is in the set.
func (s FieldSet) Has(f Field) bool {
	_, ok := s[f]
	return ok
}

func (s FieldSet) add(fields ...Field) {
	for _, f := range fields {
		s[f] = struct{}{}
	}
}

// Constraints is the derived availability of the order's conditional fields:
// which must be filled in before submission, which are not editable in the
// current state, and which must hold no value.
type Constraints struct {
	// Required fields must be non-empty at submission.
	Required FieldSet

	// Disabled fields are not editable in the current state.
	Disabled FieldSet

	// Cleared fields must hold no value; the caller blanks them on every
	// change of the driving field.
	Cleared FieldSet
}

// DeriveConstraints computes the field constraints implied by the current
// driver-field values. It is pure, deterministic, and idempotent: callers
// invoke it after every field change and apply the result.
//
// Each rule is evaluated independently and the effects are unioned:
//   - B2G orders require a GeM order number and allow a delivery date;
//     every other category clears both.
//   - Demo orders require a demo date and collect no payment, so the
//     payment fields are disabled and cleared; every other category
//     requires payment terms.
//   - Freight and installation amounts are only editable when their billing
//     mode applies the surcharge on this order.
//   - NEFT/RTGS identify the payment by transaction id, cheques by cheque
//     id; the id belonging to the other instrument is cleared. An unset
//     method clears both.
//   - Credit and partial-advance terms require credit days; any other terms
//     clear them.
func DeriveConstraints(o *Order) Constraints {
	c := Constraints{
		Required: FieldSet{},
		Disabled: FieldSet{},
		Cleared:  FieldSet{},
	}

	if o.category == CategoryB2G {
		c.Required.add(FieldGemOrderNumber)
	} else {
		c.Cleared.add(FieldGemOrderNumber, FieldDeliveryDate)
		c.Disabled.add(FieldGemOrderNumber, FieldDeliveryDate)
	}

	if o.category == CategoryDemo {
		c.Required.add(FieldDemoDate)
		c.Disabled.add(FieldPaymentMethod, FieldPaymentCollected, FieldPaymentTerms, FieldCreditDays)
		c.Cleared.add(FieldPaymentMethod, FieldPaymentCollected, FieldPaymentTerms, FieldCreditDays)
	} else {
		c.Required.add(FieldPaymentTerms)
		c.Cleared.add(FieldDemoDate)
		c.Disabled.add(FieldDemoDate)
	}

	if !o.freightMode.AppliesSurcharge() {
		c.Disabled.add(FieldFreightAmount)
		c.Cleared.add(FieldFreightAmount)
	}

	if !o.installationMode.AppliesSurcharge() {
		c.Disabled.add(FieldInstallationAmount)
		c.Cleared.add(FieldInstallationAmount)
	}

	if !o.paymentMethod.UsesTransactionID() {
		c.Disabled.add(FieldTransactionID)
		c.Cleared.add(FieldTransactionID)
	}
	if !o.paymentMethod.UsesChequeID() {
		c.Disabled.add(FieldChequeID)
		c.Cleared.add(FieldChequeID)
	}

	if o.paymentTerms.RequiresCreditDays() {
		c.Required.add(FieldCreditDays)
	} else {
		c.Cleared.add(FieldCreditDays)
	}

	c.Required.add(FieldDispatchOrigin)

	return c
}
