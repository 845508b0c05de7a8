// Package http exposes the order desk over a REST API.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	updateOrderFieldHandler      commands.UpdateOrderFieldCommandHandler
	addOrderLineHandler          commands.AddOrderLineCommandHandler
	removeOrderLineHandler       commands.RemoveOrderLineCommandHandler
	changeDispatchStatusHandler  commands.ChangeDispatchStatusCommandHandler
	confirmDispatchChangeHandler commands.ConfirmDispatchChangeCommandHandler
	submitOrderHandler           commands.SubmitOrderCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	getUndeliveredOrdersHandler queries.GetUndeliveredOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderFieldHandler commands.UpdateOrderFieldCommandHandler,
	addOrderLineHandler commands.AddOrderLineCommandHandler,
	removeOrderLineHandler commands.RemoveOrderLineCommandHandler,
	changeDispatchStatusHandler commands.ChangeDispatchStatusCommandHandler,
	confirmDispatchChangeHandler commands.ConfirmDispatchChangeCommandHandler,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUndeliveredOrdersHandler queries.GetUndeliveredOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		updateOrderFieldHandler:      updateOrderFieldHandler,
		addOrderLineHandler:          addOrderLineHandler,
		removeOrderLineHandler:       removeOrderLineHandler,
		changeDispatchStatusHandler:  changeDispatchStatusHandler,
		confirmDispatchChangeHandler: confirmDispatchChangeHandler,
		submitOrderHandler:           submitOrderHandler,
		getOrderHandler:              getOrderHandler,
		getUndeliveredOrdersHandler:  getUndeliveredOrdersHandler,
	}
}

// RegisterRoutes mounts all order desk endpoints on the echo instance.
func RegisterRoutes(e *echo.Echo, s *Server) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/undelivered", s.GetUndeliveredOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PATCH("/orders/:id/fields", s.UpdateOrderField)
	v1.POST("/orders/:id/lines", s.AddOrderLine)
	v1.DELETE("/orders/:id/lines/:index", s.RemoveOrderLine)
	v1.POST("/orders/:id/dispatch", s.ChangeDispatchStatus)
	v1.POST("/orders/:id/dispatch/confirm", s.ConfirmDispatchChange)
	v1.POST("/orders/:id/submit", s.SubmitOrder)
}

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// domainError maps use case failures to HTTP status codes. Validation
// failures are the caller's fault, billing and pending-change conflicts are
// state conflicts, everything else is a server error.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, order.ErrBillingIncomplete),
		errors.Is(err, order.ErrStampRequired),
		errors.Is(err, order.ErrNoPendingDispatchChange):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "internal error")
	}
}

func parseOrderID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// NewOrderRequest is the body for POST /api/v1/orders.
type NewOrderRequest struct {
	CustomerName   string `json:"customerName"`
	Phone          string `json:"phone"`
	Category       string `json:"category"`
	DispatchOrigin string `json:"dispatchOrigin"`
}

// CreateOrder handles POST /api/v1/orders - opens a new draft order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	phone, err := kernel.NewPhone(req.Phone)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, "Invalid phone: "+err.Error())
	}

	category, err := order.CategoryFromString(req.Category)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, "Invalid category: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, req.CustomerName, phone, category, req.DispatchOrigin)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// UpdateFieldRequest is the body for PATCH /api/v1/orders/:id/fields.
type UpdateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// UpdateOrderField handles PATCH /api/v1/orders/:id/fields - sets a single
// editable field, letting the aggregate apply its clearing effects.
func (s *Server) UpdateOrderField(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var req UpdateFieldRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderFieldCommand(orderID, order.Field(req.Field), req.Value)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, "Invalid field data: "+err.Error())
	}

	if handleErr := s.updateOrderFieldHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// NewLineRequest is the body for POST /api/v1/orders/:id/lines.
type NewLineRequest struct {
	ProductType string `json:"productType"`
	Size        string `json:"size"`
	Spec        string `json:"spec"`
	Qty         int    `json:"qty"`
	UnitPrice   string `json:"unitPrice"`
	TaxRate     string `json:"taxRate"`
	Warranty    string `json:"warranty"`
}

// AddOrderLine handles POST /api/v1/orders/:id/lines.
func (s *Server) AddOrderLine(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var req NewLineRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	unitPrice, err := kernel.MoneyFromString(req.UnitPrice)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, "Invalid unit price: "+err.Error())
	}

	taxRate, err := order.TaxRateFromString(req.TaxRate)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, "Invalid tax rate: "+err.Error())
	}

	line, err := order.NewLine(req.ProductType, req.Size, req.Spec, req.Qty, unitPrice, taxRate, req.Warranty)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, "Invalid line data: "+err.Error())
	}

	cmd, err := commands.NewAddOrderLineCommand(orderID, line)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, "Invalid line data: "+err.Error())
	}

	if handleErr := s.addOrderLineHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveOrderLine handles DELETE /api/v1/orders/:id/lines/:index.
func (s *Server) RemoveOrderLine(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var index int
	if err := echo.PathParamsBinder(ctx).Int("index", &index).BindError(); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid line index")
	}

	cmd, err := commands.NewRemoveOrderLineCommand(orderID, index)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, "Invalid line index: "+err.Error())
	}

	if handleErr := s.removeOrderLineHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchChangeRequest is the body for POST /api/v1/orders/:id/dispatch.
type DispatchChangeRequest struct {
	Target string `json:"target"`
	Stamp  string `json:"stamp"`
}

// ChangeDispatchStatus handles POST /api/v1/orders/:id/dispatch - records a
// dispatch status change that stays pending until confirmed.
func (s *Server) ChangeDispatchStatus(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var req DispatchChangeRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	target, err := order.DispatchStatusFromString(req.Target)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, "Invalid dispatch status: "+err.Error())
	}

	stamp, err := order.StampFromString(req.Stamp)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, "Invalid stamp: "+err.Error())
	}

	cmd, err := commands.NewChangeDispatchStatusCommand(orderID, target, stamp, time.Now().UTC())
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, "Invalid dispatch data: "+err.Error())
	}

	if handleErr := s.changeDispatchStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// ConfirmDispatchRequest is the body for POST /api/v1/orders/:id/dispatch/confirm.
type ConfirmDispatchRequest struct {
	Confirm bool `json:"confirm"`
}

// ConfirmDispatchChange handles POST /api/v1/orders/:id/dispatch/confirm -
// applies or discards a pending dispatch status change.
func (s *Server) ConfirmDispatchChange(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var req ConfirmDispatchRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewConfirmDispatchChangeCommand(orderID, req.Confirm)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, "Invalid confirmation: "+err.Error())
	}

	if handleErr := s.confirmDispatchChangeHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitOrderRequest is the body for POST /api/v1/orders/:id/submit.
type SubmitOrderRequest struct {
	ActorRole string `json:"actorRole"`
	AuthToken string `json:"authToken"`
}

// SubmitOrder handles POST /api/v1/orders/:id/submit - validates the draft
// and hands it to the external API.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var req SubmitOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSubmitOrderCommand(orderID, req.ActorRole, req.AuthToken)
	if err != nil {
		return errorJSON(ctx, http.StatusUnprocessableEntity, "Invalid submission data: "+err.Error())
	}

	if handleErr := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// OrderLineResponse is a single line in the order detail response.
type OrderLineResponse struct {
	ProductType string `json:"productType"`
	Size        string `json:"size"`
	Spec        string `json:"spec"`
	Qty         int    `json:"qty"`
	UnitPrice   string `json:"unitPrice"`
	TaxRate     string `json:"taxRate"`
	Warranty    string `json:"warranty"`
	Amount      string `json:"amount"`
}

// OrderResponse is the body for GET /api/v1/orders/:id.
type OrderResponse struct {
	ID             string `json:"id"`
	CustomerName   string `json:"customerName"`
	Phone          string `json:"phone"`
	Category       string `json:"category"`
	DispatchOrigin string `json:"dispatchOrigin"`

	ApprovalStatus   string `json:"approvalStatus"`
	ProductionStatus string `json:"productionStatus"`
	BillingStatus    string `json:"billingStatus"`
	DispatchStatus   string `json:"dispatchStatus"`
	Stamp            string `json:"stamp,omitempty"`

	Lines []OrderLineResponse `json:"lines"`

	Subtotal   string `json:"subtotal"`
	Total      string `json:"total"`
	Collected  string `json:"collected"`
	PaymentDue string `json:"paymentDue"`
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	lines := make([]OrderLineResponse, len(result.Lines))
	for i, line := range result.Lines {
		lines[i] = OrderLineResponse{
			ProductType: line.ProductType,
			Size:        line.Size,
			Spec:        line.Spec,
			Qty:         line.Qty,
			UnitPrice:   line.UnitPrice.String(),
			TaxRate:     line.TaxRate,
			Warranty:    line.Warranty,
			Amount:      line.Amount.StringFixed(2),
		}
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:               result.ID.String(),
		CustomerName:     result.CustomerName,
		Phone:            result.Phone,
		Category:         result.Category,
		DispatchOrigin:   result.DispatchOrigin,
		ApprovalStatus:   result.ApprovalStatus,
		ProductionStatus: result.ProductionStatus,
		BillingStatus:    result.BillingStatus,
		DispatchStatus:   result.DispatchStatus,
		Stamp:            result.Stamp,
		Lines:            lines,
		Subtotal:         result.Subtotal.StringFixed(2),
		Total:            result.Total.StringFixed(2),
		Collected:        result.Collected.StringFixed(2),
		PaymentDue:       result.PaymentDue.StringFixed(2),
	})
}

// UndeliveredOrderResponse is a single entry in the undelivered orders list.
type UndeliveredOrderResponse struct {
	ID               string `json:"id"`
	CustomerName     string `json:"customerName"`
	Category         string `json:"category"`
	ApprovalStatus   string `json:"approvalStatus"`
	ProductionStatus string `json:"productionStatus"`
	BillingStatus    string `json:"billingStatus"`
	DispatchStatus   string `json:"dispatchStatus"`
}

// GetUndeliveredOrders handles GET /api/v1/orders/undelivered.
func (s *Server) GetUndeliveredOrders(ctx echo.Context) error {
	query := queries.NewGetUndeliveredOrdersQuery()

	orders, err := s.getUndeliveredOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]UndeliveredOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = UndeliveredOrderResponse{
			ID:               o.ID.String(),
			CustomerName:     o.CustomerName,
			Category:         o.Category,
			ApprovalStatus:   o.ApprovalStatus,
			ProductionStatus: o.ProductionStatus,
			BillingStatus:    o.BillingStatus,
			DispatchStatus:   o.DispatchStatus,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
