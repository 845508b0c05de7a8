package commands

import (
	"context"
)

// ExpireStaleDispatchRequestsCommandHandler sweeps orders whose dispatch
// change request outlived the confirmation window and cancels the request.
type ExpireStaleDispatchRequestsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewExpireStaleDispatchRequestsCommandHandler creates a handler for the
// expiry sweep.
func NewExpireStaleDispatchRequestsCommandHandler(uowFactory OrderUoWFactory) ExpireStaleDispatchRequestsCommandHandler {
	return ExpireStaleDispatchRequestsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every pending request older than the ttl. The whole sweep
// runs in one transaction; the number of expired requests is returned.
func (h *ExpireStaleDispatchRequestsCommandHandler) Handle(ctx context.Context, cmd ExpireStaleDispatchRequestsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregates, err := uow.OrderRepository().GetAllWithPendingDispatch(ctx)
	if err != nil {
		return 0, err
	}

	deadline := cmd.Now().Add(-cmd.TTL())
	expired := 0
	for _, aggregate := range aggregates {
		pending := aggregate.PendingDispatch()
		if pending == nil || pending.RequestedAt.After(deadline) {
			continue
		}

		if err = aggregate.CancelDispatchChange(); err != nil {
			return 0, err
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return 0, err
		}
		expired++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, nil
}
