package commands

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/order"
)

// ConfirmDispatchChangeCommandHandler applies or discards the pending
// dispatch change recorded by phase one.
type ConfirmDispatchChangeCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmDispatchChangeCommandHandler creates a handler for phase two of a
// dispatch change.
func NewConfirmDispatchChangeCommandHandler(uowFactory OrderUoWFactory) ConfirmDispatchChangeCommandHandler {
	return ConfirmDispatchChangeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle confirms or cancels the pending change. A confirmation re-validates
// the transition, so a change that became illegal between the two phases is
// rejected and the discarded request is persisted.
func (h *ConfirmDispatchChangeCommandHandler) Handle(ctx context.Context, cmd ConfirmDispatchChangeCommand) error {
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

	if cmd.Confirm() {
		err = aggregate.ConfirmDispatchChange()
	} else {
		err = aggregate.CancelDispatchChange()
	}
	if errors.Is(err, order.ErrNoPendingDispatchChange) {
		return err
	}
	if err != nil {
		// A rejected confirmation discards the stale request; persist the
		// discard so it is not retried.
		if updateErr := uow.OrderRepository().Update(ctx, aggregate); updateErr == nil {
			_ = uow.Commit(ctx)
		}
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
