package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for opening a new
// order draft with its lifecycle defaults.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for draft creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the draft creation command. Uses a transaction to ensure
// the draft is properly persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerName(), cmd.Phone(), cmd.Category(), cmd.DispatchOrigin())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
