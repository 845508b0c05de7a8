package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrUpdateOrderFieldCommandIsNotConstructed = errors.New(
		"UpdateOrderFieldCommand must be created via NewUpdateOrderFieldCommand constructor",
	)
	ErrFieldNameIsRequired = errors.New("field name is required")
)

// UpdateOrderFieldCommand represents one field-level change event: the field
// name and its new value in string form, exactly as the editing surface sends
// it. The handler parses the value into the field's type and lets the
// aggregate apply the change together with its clearing effects.
type UpdateOrderFieldCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	field   order.Field
	value   string

	guard guard.ConstructorGuard
}

// NewUpdateOrderFieldCommand creates a field change command. An empty value is
// legal for fields that may be blanked.
func NewUpdateOrderFieldCommand(orderID kernel.UUID, field order.Field, value string) (UpdateOrderFieldCommand, error) {
	cmd := UpdateOrderFieldCommand{
		value: value,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setField(field),
	); err != nil {
		return UpdateOrderFieldCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderFieldCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderFieldCommandIsNotConstructed)
}

// OrderID returns the identifier of the draft being edited.
func (c UpdateOrderFieldCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Field returns the field being changed.
func (c UpdateOrderFieldCommand) Field() order.Field {
	return c.field
}

// Value returns the new value in its string form.
func (c UpdateOrderFieldCommand) Value() string {
	return c.value
}

func (c *UpdateOrderFieldCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderFieldCommand) setField(field order.Field) error {
	if field == "" {
		return ErrFieldNameIsRequired
	}

	c.field = field
	return nil
}
