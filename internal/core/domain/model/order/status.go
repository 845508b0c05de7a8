package order

import (
	"errors"
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// The order lifecycle is tracked on four semi-independent status axes:
// approval, production, billing, and dispatch. Approval, production, and
// billing are operator-driven labels with no ordering constraint among them.
// Dispatch transitions are constrained by the single cross-axis rule of the
// system: goods may only be marked Dispatched or Delivered once billing is
// complete, and Delivered additionally requires a signed-receipt stamp.

var (
	// ErrBillingIncomplete rejects a dispatch transition to Dispatched or
	// Delivered while billing is not complete. Surfaced as a distinct
	// condition so callers can render a targeted message.
	ErrBillingIncomplete = errors.New("billing must be complete before goods can be dispatched or delivered")

	// ErrStampRequired rejects a transition to Delivered without a
	// signed-receipt stamp value.
	ErrStampRequired = errors.New("a receipt stamp is required to mark an order delivered")
)

// ApprovalStatus is the approval axis of the order lifecycle.
type ApprovalStatus int

const (
	// ApprovalUnknown represents an invalid or undefined approval status.
	ApprovalUnknown ApprovalStatus = iota

	// PendingApproval is the initial approval state of a new order.
	PendingApproval

	// AccountsApproved means the accounts team has cleared the order.
	AccountsApproved

	// Approved means the order is fully approved.
	Approved

	// ApprovalCancelled marks the order as cancelled on the approval axis.
	ApprovalCancelled
)

func getApprovalStatusStrings() map[ApprovalStatus]string {
	return map[ApprovalStatus]string{
		ApprovalUnknown:   "Unknown",
		PendingApproval:   "Pending Approval",
		AccountsApproved:  "Accounts Approved",
		Approved:          "Approved",
		ApprovalCancelled: "Cancelled",
	}
}

func getValidApprovalStatusStrings() map[ApprovalStatus]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[ApprovalStatus]string{
		PendingApproval:   "Pending Approval",
		AccountsApproved:  "Accounts Approved",
		Approved:          "Approved",
		ApprovalCancelled: "Cancelled",
	}
}

// ApprovalStatusFromString parses the persisted approval status name.
func ApprovalStatusFromString(s string) (ApprovalStatus, error) {
	for status, str := range getValidApprovalStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return ApprovalUnknown, errs.NewValueIsInvalidErrorWithCause("approvalStatus",
		fmt.Errorf("%q is not a valid approval status", s))
}

// Validate checks if the ApprovalStatus value is valid.
func (s ApprovalStatus) Validate() error {
	if _, ok := getValidApprovalStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("approvalStatus",
			fmt.Errorf("%d is not a valid approval status", s))
	}
	return nil
}

// String returns the human-readable name of the approval status.
func (s ApprovalStatus) String() string {
	if str, ok := getApprovalStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ProductionStatus is the production/fulfillment axis of the order lifecycle.
type ProductionStatus int

const (
	// ProductionUnknown represents an invalid or undefined production status.
	ProductionUnknown ProductionStatus = iota

	// ProductionPending means production has not started. Default for
	// orders dispatched from the factory.
	ProductionPending

	// UnderProcess means the goods are being manufactured.
	UnderProcess

	// PartialDispatch means part of the order has left production.
	PartialDispatch

	// ProductionCancelled marks the order as cancelled on the production axis.
	ProductionCancelled

	// Fulfilled means the goods are ready. Default for orders dispatched
	// from a pre-stocked origin.
	Fulfilled
)

func getProductionStatusStrings() map[ProductionStatus]string {
	return map[ProductionStatus]string{
		ProductionUnknown:   "Unknown",
		ProductionPending:   "Pending",
		UnderProcess:        "Under Process",
		PartialDispatch:     "Partial Dispatch",
		ProductionCancelled: "Cancelled",
		Fulfilled:           "Fulfilled",
	}
}

func getValidProductionStatusStrings() map[ProductionStatus]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[ProductionStatus]string{
		ProductionPending:   "Pending",
		UnderProcess:        "Under Process",
		PartialDispatch:     "Partial Dispatch",
		ProductionCancelled: "Cancelled",
		Fulfilled:           "Fulfilled",
	}
}

// ProductionStatusFromString parses the persisted production status name.
func ProductionStatusFromString(s string) (ProductionStatus, error) {
	for status, str := range getValidProductionStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return ProductionUnknown, errs.NewValueIsInvalidErrorWithCause("productionStatus",
		fmt.Errorf("%q is not a valid production status", s))
}

// Validate checks if the ProductionStatus value is valid.
func (s ProductionStatus) Validate() error {
	if _, ok := getValidProductionStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("productionStatus",
			fmt.Errorf("%d is not a valid production status", s))
	}
	return nil
}

// String returns the human-readable name of the production status.
func (s ProductionStatus) String() string {
	if str, ok := getProductionStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// factoryOrigin is the dispatch origin whose goods are manufactured to
// order; every other origin ships pre-stocked goods.
const factoryOrigin = "Morinda"

// DefaultProductionStatus returns the production status an order starts in
// for the given dispatch origin: Pending for factory orders, Fulfilled when
// the goods are pre-stocked elsewhere. An empty origin yields Pending.
func DefaultProductionStatus(dispatchOrigin string) ProductionStatus {
	if dispatchOrigin == "" || dispatchOrigin == factoryOrigin {
		return ProductionPending
	}
	return Fulfilled
}

// BillingStatus is the billing axis of the order lifecycle.
type BillingStatus int

const (
	// BillingUnknown represents an invalid or undefined billing status.
	BillingUnknown BillingStatus = iota

	// BillingPending is the initial billing state of a new order.
	BillingPending

	// UnderBilling means invoicing is in progress.
	UnderBilling

	// BillingComplete means invoicing has finished. Dispatch completion is
	// gated on this value.
	BillingComplete
)

func getBillingStatusStrings() map[BillingStatus]string {
	return map[BillingStatus]string{
		BillingUnknown:  "Unknown",
		BillingPending:  "Pending",
		UnderBilling:    "Under Billing",
		BillingComplete: "Complete",
	}
}

func getValidBillingStatusStrings() map[BillingStatus]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[BillingStatus]string{
		BillingPending:  "Pending",
		UnderBilling:    "Under Billing",
		BillingComplete: "Complete",
	}
}

// BillingStatusFromString parses the persisted billing status name.
func BillingStatusFromString(s string) (BillingStatus, error) {
	for status, str := range getValidBillingStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return BillingUnknown, errs.NewValueIsInvalidErrorWithCause("billingStatus",
		fmt.Errorf("%q is not a valid billing status", s))
}

// Validate checks if the BillingStatus value is valid.
func (s BillingStatus) Validate() error {
	if _, ok := getValidBillingStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("billingStatus",
			fmt.Errorf("%d is not a valid billing status", s))
	}
	return nil
}

// String returns the human-readable name of the billing status.
func (s BillingStatus) String() string {
	if str, ok := getBillingStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsComplete reports whether invoicing has finished.
func (s BillingStatus) IsComplete() bool {
	return s == BillingComplete
}

// DispatchStatus is the dispatch axis of the order lifecycle.
type DispatchStatus int

const (
	// DispatchUnknown represents an invalid or undefined dispatch status.
	DispatchUnknown DispatchStatus = iota

	// NotDispatched is the initial dispatch state of a new order.
	NotDispatched

	// HoldBySalesperson means dispatch is held back by the salesperson.
	HoldBySalesperson

	// HoldByCustomer means dispatch is held back at the customer's request.
	HoldByCustomer

	// DispatchCancelled marks the order as cancelled on the dispatch axis.
	DispatchCancelled

	// Dispatched means the goods have left; requires complete billing.
	Dispatched

	// Delivered means the goods reached the customer; requires complete
	// billing and a receipt stamp.
	Delivered
)

func getDispatchStatusStrings() map[DispatchStatus]string {
	return map[DispatchStatus]string{
		DispatchUnknown:   "Unknown",
		NotDispatched:     "Not Dispatched",
		HoldBySalesperson: "Hold by Salesperson",
		HoldByCustomer:    "Hold by Customer",
		DispatchCancelled: "Cancelled",
		Dispatched:        "Dispatched",
		Delivered:         "Delivered",
	}
}

func getValidDispatchStatusStrings() map[DispatchStatus]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[DispatchStatus]string{
		NotDispatched:     "Not Dispatched",
		HoldBySalesperson: "Hold by Salesperson",
		HoldByCustomer:    "Hold by Customer",
		DispatchCancelled: "Cancelled",
		Dispatched:        "Dispatched",
		Delivered:         "Delivered",
	}
}

// DispatchStatusFromString parses the persisted dispatch status name.
func DispatchStatusFromString(s string) (DispatchStatus, error) {
	for status, str := range getValidDispatchStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return DispatchUnknown, errs.NewValueIsInvalidErrorWithCause("dispatchStatus",
		fmt.Errorf("%q is not a valid dispatch status", s))
}

// Validate checks if the DispatchStatus value is valid.
func (s DispatchStatus) Validate() error {
	if _, ok := getValidDispatchStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("dispatchStatus",
			fmt.Errorf("%d is not a valid dispatch status", s))
	}
	return nil
}

// String returns the human-readable name of the dispatch status.
func (s DispatchStatus) String() string {
	if str, ok := getDispatchStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// RequiresCompleteBilling reports whether entering this status is gated on
// billing completion.
func (s DispatchStatus) RequiresCompleteBilling() bool {
	return s == Dispatched || s == Delivered
}

// ValidateTransition checks whether the dispatch axis may move to target
// given the current billing status and receipt stamp, without performing the
// transition.
//
// Rules:
//   - Dispatched and Delivered require billing to be Complete.
//   - Delivered additionally requires a stamp value to be set; the stamp's
//     own value is not constrained beyond being set.
//   - Every other target is unconditionally allowed. Transitions among the
//     non-terminal values are not constrained by production status.
func (s DispatchStatus) ValidateTransition(target DispatchStatus, billing BillingStatus, stamp Stamp) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if target.RequiresCompleteBilling() && !billing.IsComplete() {
		return ErrBillingIncomplete
	}

	if target == Delivered && !stamp.IsSet() {
		return ErrStampRequired
	}

	return nil
}

// Stamp records whether the signed delivery receipt came back. It is
// mandatory for the Delivered dispatch status; either value satisfies the
// requirement.
type Stamp int

const (
	// StampUnset means no receipt information has been recorded.
	StampUnset Stamp = iota

	// StampReceived means the signed receipt came back.
	StampReceived

	// StampNotReceived means the receipt is explicitly recorded as missing.
	StampNotReceived
)

func getStampStrings() map[Stamp]string {
	return map[Stamp]string{
		StampUnset:       "",
		StampReceived:    "Received",
		StampNotReceived: "Not Received",
	}
}

// StampFromString parses the persisted stamp value. The empty string maps to
// StampUnset.
func StampFromString(s string) (Stamp, error) {
	for stamp, str := range getStampStrings() {
		if str == s {
			return stamp, nil
		}
	}
	return StampUnset, errs.NewValueIsInvalidErrorWithCause("stamp",
		fmt.Errorf("%q is not a valid stamp value", s))
}

// String returns the human-readable stamp value.
func (s Stamp) String() string {
	if str, ok := getStampStrings()[s]; ok {
		return str
	}
	return ""
}

// IsSet reports whether a receipt value has been recorded.
func (s Stamp) IsSet() bool {
	return s != StampUnset
}
