package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
	ErrActorRoleIsRequired = errors.New("actor role is required")
	ErrAuthTokenIsRequired = errors.New("auth token is required")
)

// SubmitOrderCommand represents the submit action on a finished draft. The
// caller's role and auth token are carried explicitly; nothing is read from
// ambient state.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorRole string
	authToken string

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a submission command.
func NewSubmitOrderCommand(orderID kernel.UUID, actorRole string, authToken string) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorRole(actorRole),
		cmd.setAuthToken(authToken),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the draft being submitted.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorRole returns the submitting user's role.
func (c SubmitOrderCommand) ActorRole() string {
	return c.actorRole
}

// AuthToken returns the submitting user's auth token.
func (c SubmitOrderCommand) AuthToken() string {
	return c.authToken
}

func (c *SubmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setActorRole(role string) error {
	if role == "" {
		return ErrActorRoleIsRequired
	}

	c.actorRole = role
	return nil
}

func (c *SubmitOrderCommand) setAuthToken(token string) error {
	if token == "" {
		return ErrAuthTokenIsRequired
	}

	c.authToken = token
	return nil
}
