package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrConfirmDispatchChangeCommandIsNotConstructed = errors.New(
	"ConfirmDispatchChangeCommand must be created via NewConfirmDispatchChangeCommand constructor",
)

// ConfirmDispatchChangeCommand is phase two of a dispatch status change:
// either confirm the pending request, applying it, or cancel it, discarding
// it without effect.
type ConfirmDispatchChangeCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	confirm bool

	guard guard.ConstructorGuard
}

// NewConfirmDispatchChangeCommand creates a confirmation (confirm true) or a
// cancellation (confirm false) of the pending dispatch change.
func NewConfirmDispatchChangeCommand(orderID kernel.UUID, confirm bool) (ConfirmDispatchChangeCommand, error) {
	cmd := ConfirmDispatchChangeCommand{
		confirm: confirm,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ConfirmDispatchChangeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDispatchChangeCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDispatchChangeCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being changed.
func (c ConfirmDispatchChangeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Confirm reports whether the pending change is being applied or discarded.
func (c ConfirmDispatchChangeCommand) Confirm() bool {
	return c.confirm
}

func (c *ConfirmDispatchChangeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
