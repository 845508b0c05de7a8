package commands

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
)

// SubmitOrderCommandHandler runs the full submission sequence: validate the
// draft, build the outbound record, hand it to the external API, and mark the
// draft submitted. A failure at any step leaves the stored draft exactly as
// it was, re-editable without data loss.
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  services.SubmissionValidator
	gateway    ports.SubmissionGateway
}

// NewSubmitOrderCommandHandler creates a handler for draft submission.
func NewSubmitOrderCommandHandler(
	uowFactory OrderUoWFactory,
	validator services.SubmissionValidator,
	gateway ports.SubmissionGateway,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		gateway:    gateway,
	}
}

// Handle processes the submission. The draft is only marked submitted after
// the gateway accepted the record; a gateway failure rolls everything back.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
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

	if err = h.validator.Validate(aggregate); err != nil {
		return err
	}

	record := ports.BuildSubmissionRecord(aggregate)
	if err = h.gateway.Submit(ctx, record, cmd.ActorRole(), cmd.AuthToken()); err != nil {
		return err
	}

	aggregate.MarkSubmitted(time.Now().UTC())
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
