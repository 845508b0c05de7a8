package commands

import (
	"context"
)

// ChangeDispatchStatusCommandHandler records a dispatch change request on the
// order. The transition is validated immediately so an illegal request fails
// now rather than at confirmation, but the status axes stay untouched until
// the change is confirmed.
type ChangeDispatchStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeDispatchStatusCommandHandler creates a handler for phase one of a
// dispatch change.
func NewChangeDispatchStatusCommandHandler(uowFactory OrderUoWFactory) ChangeDispatchStatusCommandHandler {
	return ChangeDispatchStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the requested transition against the order's billing state
// and stores it as pending confirmation.
func (h *ChangeDispatchStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDispatchStatusCommand) error {
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

	if err = aggregate.RequestDispatchChange(cmd.Target(), cmd.Stamp(), cmd.RequestedAt()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
