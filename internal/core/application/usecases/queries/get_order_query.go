// Package queries contains read-side operations in the CQRS architecture.
// Query handlers read the database directly with raw SQL and return flat
// response projections; they never mutate state.
package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order projection by its identifier.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier being looked up.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderLineResponse is one line of the order projection with its computed
// taxed amount.
type GetOrderLineResponse struct {
	ProductType string
	Size        string
	Spec        string
	Qty         int
	UnitPrice   decimal.Decimal
	TaxRate     string
	Warranty    string
	Amount      decimal.Decimal
}

// GetOrderQueryResponse is the read-side projection of one order: identity,
// lifecycle labels, lines, and the derived pricing breakdown.
type GetOrderQueryResponse struct {
	ID             kernel.UUID
	CustomerName   string
	Phone          string
	Category       string
	DispatchOrigin string

	ApprovalStatus   string
	ProductionStatus string
	BillingStatus    string
	DispatchStatus   string
	Stamp            string

	Lines []GetOrderLineResponse

	Subtotal   decimal.Decimal
	Total      decimal.Decimal
	Collected  decimal.Decimal
	PaymentDue decimal.Decimal
}
