package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrGetUndeliveredOrdersQueryIsNotConstructed = errors.New(
	"GetUndeliveredOrdersQuery must be created via NewGetUndeliveredOrdersQuery constructor",
)

// GetUndeliveredOrdersQuery retrieves every order whose goods have not been
// delivered yet, for the operational overview list.
type GetUndeliveredOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUndeliveredOrdersQuery creates a query for undelivered orders.
// This is a parameterless query.
func NewGetUndeliveredOrdersQuery() GetUndeliveredOrdersQuery {
	return GetUndeliveredOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUndeliveredOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUndeliveredOrdersQueryIsNotConstructed)
}

// GetUndeliveredOrdersQueryResponse is one row of the undelivered overview:
// who the order is for and where it stands on each lifecycle axis.
type GetUndeliveredOrdersQueryResponse struct {
	ID               kernel.UUID
	CustomerName     string
	Category         string
	ApprovalStatus   string
	ProductionStatus string
	BillingStatus    string
	DispatchStatus   string
}
