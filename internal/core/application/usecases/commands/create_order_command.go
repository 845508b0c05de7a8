package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired   = errors.New("customer name is required")
	ErrDispatchOriginIsRequired = errors.New("dispatch origin is required")
)

// CreateOrderCommand represents a request to open a new order draft with the
// minimum identity a draft needs: customer, phone, category, and where the
// goods dispatch from. Everything else is filled in through field edits.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerName   string
	phone          kernel.Phone
	category       order.Category
	dispatchOrigin string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order draft.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	phone kernel.Phone,
	category order.Category,
	dispatchOrigin string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setPhone(phone),
		cmd.setCategory(category),
		cmd.setDispatchOrigin(dispatchOrigin),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new draft.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the customer's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Phone returns the customer's phone number.
func (c CreateOrderCommand) Phone() kernel.Phone {
	return c.phone
}

// Category returns the order category.
func (c CreateOrderCommand) Category() order.Category {
	return c.category
}

// DispatchOrigin returns the location goods dispatch from.
func (c CreateOrderCommand) DispatchOrigin() string {
	return c.dispatchOrigin
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *CreateOrderCommand) setCategory(category order.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *CreateOrderCommand) setDispatchOrigin(origin string) error {
	if origin == "" {
		return ErrDispatchOriginIsRequired
	}

	c.dispatchOrigin = origin
	return nil
}
