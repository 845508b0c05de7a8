package commands

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var ErrChangeDispatchStatusCommandIsNotConstructed = errors.New(
	"ChangeDispatchStatusCommand must be created via NewChangeDispatchStatusCommand constructor",
)

// ChangeDispatchStatusCommand is phase one of a dispatch status change: the
// requested target and, for deliveries, the receipt stamp. The change only
// takes effect once a ConfirmDispatchChangeCommand follows.
type ChangeDispatchStatusCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	target      order.DispatchStatus
	stamp       order.Stamp
	requestedAt time.Time

	guard guard.ConstructorGuard
}

// NewChangeDispatchStatusCommand creates a dispatch change request. The stamp
// may be unset for any target other than Delivered.
func NewChangeDispatchStatusCommand(
	orderID kernel.UUID,
	target order.DispatchStatus,
	stamp order.Stamp,
	requestedAt time.Time,
) (ChangeDispatchStatusCommand, error) {
	cmd := ChangeDispatchStatusCommand{
		stamp:       stamp,
		requestedAt: requestedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeDispatchStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDispatchStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDispatchStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being changed.
func (c ChangeDispatchStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested dispatch status.
func (c ChangeDispatchStatusCommand) Target() order.DispatchStatus {
	return c.target
}

// Stamp returns the receipt stamp accompanying a delivery request.
func (c ChangeDispatchStatusCommand) Stamp() order.Stamp {
	return c.stamp
}

// RequestedAt returns the time the change was requested.
func (c ChangeDispatchStatusCommand) RequestedAt() time.Time {
	return c.requestedAt
}

func (c *ChangeDispatchStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeDispatchStatusCommand) setTarget(target order.DispatchStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
