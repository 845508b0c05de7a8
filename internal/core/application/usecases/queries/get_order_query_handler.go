package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order projection from the database.
// The pricing breakdown is recomputed from the stored lines and surcharges on
// every read; it is never stored.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no order
// has the requested identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		resp GetOrderQueryResponse

		id               uuid.UUID
		category         int
		approvalStatus   int
		productionStatus int
		billingStatus    int
		dispatchStatus   int
		stamp            int
		collected        decimal.Decimal
		freightAmount    decimal.Decimal
		freightMode      int
		installAmount    decimal.Decimal
		installMode      int
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			phone,
			category,
			dispatch_origin,
			approval_status,
			production_status,
			billing_status,
			dispatch_status,
			stamp,
			collected,
			freight_amount,
			freight_mode,
			installation_amount,
			installation_mode
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.CustomerName,
		&resp.Phone,
		&category,
		&resp.DispatchOrigin,
		&approvalStatus,
		&productionStatus,
		&billingStatus,
		&dispatchStatus,
		&stamp,
		&collected,
		&freightAmount,
		&freightMode,
		&installAmount,
		&installMode,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID
	resp.Category = order.Category(category).String()
	resp.ApprovalStatus = order.ApprovalStatus(approvalStatus).String()
	resp.ProductionStatus = order.ProductionStatus(productionStatus).String()
	resp.BillingStatus = order.BillingStatus(billingStatus).String()
	resp.DispatchStatus = order.DispatchStatus(dispatchStatus).String()
	resp.Stamp = order.Stamp(stamp).String()

	lines, lineResponses, err := h.loadLines(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Lines = lineResponses

	totals, err := computeStoredTotals(lines, freightAmount, freightMode, installAmount, installMode, collected)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Subtotal = totals.Subtotal
	resp.Total = totals.Total
	resp.Collected = collected
	resp.PaymentDue = totals.PaymentDue

	return resp, nil
}

func (h GetOrderQueryHandler) loadLines(ctx context.Context, orderID kernel.UUID) ([]order.Line, []GetOrderLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_type,
			size,
			spec,
			qty,
			unit_price,
			tax_rate,
			warranty
		FROM order_lines
		WHERE order_id = ?
		ORDER BY idx
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var (
		lines     []order.Line
		responses []GetOrderLineResponse
	)

	for rows.Next() {
		var (
			productType string
			size        string
			spec        string
			qty         int
			unitPrice   decimal.Decimal
			taxRate     string
			warranty    string
		)

		if err = rows.Scan(&productType, &size, &spec, &qty, &unitPrice, &taxRate, &warranty); err != nil {
			return nil, nil, err
		}

		price, priceErr := kernel.NewMoney(unitPrice)
		if priceErr != nil {
			return nil, nil, priceErr
		}
		rate, rateErr := order.TaxRateFromString(taxRate)
		if rateErr != nil {
			return nil, nil, rateErr
		}
		line, lineErr := order.NewLine(productType, size, spec, qty, price, rate, warranty)
		if lineErr != nil {
			return nil, nil, lineErr
		}

		lines = append(lines, line)
		responses = append(responses, GetOrderLineResponse{
			ProductType: productType,
			Size:        size,
			Spec:        spec,
			Qty:         qty,
			UnitPrice:   unitPrice,
			TaxRate:     taxRate,
			Warranty:    warranty,
			Amount:      line.Amount(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return lines, responses, nil
}

func computeStoredTotals(
	lines []order.Line,
	freightAmount decimal.Decimal,
	freightMode int,
	installAmount decimal.Decimal,
	installMode int,
	collected decimal.Decimal,
) (order.TotalBreakdown, error) {
	freight, err := kernel.NewMoney(freightAmount)
	if err != nil {
		return order.TotalBreakdown{}, err
	}
	installation, err := kernel.NewMoney(installAmount)
	if err != nil {
		return order.TotalBreakdown{}, err
	}
	collectedMoney, err := kernel.NewMoney(collected)
	if err != nil {
		return order.TotalBreakdown{}, err
	}

	return order.ComputeTotals(
		lines,
		freight, order.BillingMode(freightMode),
		installation, order.BillingMode(installMode),
		collectedMoney,
	), nil
}
