package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUndeliveredOrdersQueryHandler retrieves the undelivered order overview
// from the database. Delivered orders are excluded; results are sorted by
// order ID for consistent output.
type GetUndeliveredOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUndeliveredOrdersQueryHandler creates a handler for the undelivered
// overview query.
func NewGetUndeliveredOrdersQueryHandler(db *gorm.DB) GetUndeliveredOrdersQueryHandler {
	return GetUndeliveredOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetUndeliveredOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUndeliveredOrdersQuery,
) ([]GetUndeliveredOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUndeliveredOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			category,
			approval_status,
			production_status,
			billing_status,
			dispatch_status
		FROM orders
		WHERE dispatch_status != ?
		ORDER BY id
	`, int(order.Delivered)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp GetUndeliveredOrdersQueryResponse

			id               uuid.UUID
			category         int
			approvalStatus   int
			productionStatus int
			billingStatus    int
			dispatchStatus   int
		)

		err = rows.Scan(
			&id,
			&resp.CustomerName,
			&category,
			&approvalStatus,
			&productionStatus,
			&billingStatus,
			&dispatchStatus,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = orderID
		resp.Category = order.Category(category).String()
		resp.ApprovalStatus = order.ApprovalStatus(approvalStatus).String()
		resp.ProductionStatus = order.ProductionStatus(productionStatus).String()
		resp.BillingStatus = order.BillingStatus(billingStatus).String()
		resp.DispatchStatus = order.DispatchStatus(dispatchStatus).String()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
