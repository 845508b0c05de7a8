package commands

import (
	"context"
)

// AddOrderLineCommandHandler appends a product line to a draft.
type AddOrderLineCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderLineCommandHandler creates a handler for line additions.
func NewAddOrderLineCommandHandler(uowFactory OrderUoWFactory) AddOrderLineCommandHandler {
	return AddOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the draft, appends the line, and persists the result. The
// totals are derived values and recompute on read, so nothing else changes.
func (h *AddOrderLineCommandHandler) Handle(ctx context.Context, cmd AddOrderLineCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AddLine(cmd.Line()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
