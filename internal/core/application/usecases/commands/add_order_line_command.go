package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var ErrAddOrderLineCommandIsNotConstructed = errors.New(
	"AddOrderLineCommand must be created via NewAddOrderLineCommand constructor",
)

// AddOrderLineCommand represents a request to append one product line to a
// draft. The line is constructed up front so a malformed line never reaches
// the handler.
type AddOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	line    order.Line

	guard guard.ConstructorGuard
}

// NewAddOrderLineCommand creates a command to append a line to a draft.
func NewAddOrderLineCommand(orderID kernel.UUID, line order.Line) (AddOrderLineCommand, error) {
	cmd := AddOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLine(line),
	); err != nil {
		return AddOrderLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderLineCommandIsNotConstructed)
}

// OrderID returns the identifier of the draft being edited.
func (c AddOrderLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Line returns the line to append.
func (c AddOrderLineCommand) Line() order.Line {
	return c.line
}

func (c *AddOrderLineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderLineCommand) setLine(line order.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	c.line = line
	return nil
}
