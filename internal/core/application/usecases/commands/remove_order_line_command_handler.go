package commands

import (
	"context"
)

// RemoveOrderLineCommandHandler deletes a product line from a draft.
type RemoveOrderLineCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderLineCommandHandler creates a handler for line deletions.
func NewRemoveOrderLineCommandHandler(uowFactory OrderUoWFactory) RemoveOrderLineCommandHandler {
	return RemoveOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the draft, deletes the line at the requested position, and
// persists the result.
func (h *RemoveOrderLineCommandHandler) Handle(ctx context.Context, cmd RemoveOrderLineCommand) error {
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

	if err = aggregate.RemoveLine(cmd.LineIndex()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
