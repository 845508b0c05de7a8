package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrRemoveOrderLineCommandIsNotConstructed = errors.New(
	"RemoveOrderLineCommand must be created via NewRemoveOrderLineCommand constructor",
)

// RemoveOrderLineCommand represents a request to delete the line at a given
// position in a draft's line sequence.
type RemoveOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	lineIndex int

	guard guard.ConstructorGuard
}

// NewRemoveOrderLineCommand creates a command to delete a line. The index is
// checked against the draft's actual line count by the aggregate.
func NewRemoveOrderLineCommand(orderID kernel.UUID, lineIndex int) (RemoveOrderLineCommand, error) {
	cmd := RemoveOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineIndex(lineIndex),
	); err != nil {
		return RemoveOrderLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderLineCommandIsNotConstructed)
}

// OrderID returns the identifier of the draft being edited.
func (c RemoveOrderLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineIndex returns the zero-based position of the line to delete.
func (c RemoveOrderLineCommand) LineIndex() int {
	return c.lineIndex
}

func (c *RemoveOrderLineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveOrderLineCommand) setLineIndex(index int) error {
	if index < 0 {
		return errs.NewValueIsInvalidError("lineIndex")
	}

	c.lineIndex = index
	return nil
}
