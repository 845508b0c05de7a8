package commands

import (
	"errors"
	"time"

	"orderdesk/internal/pkg/guard"
)

var (
	ErrExpireStaleDispatchRequestsCommandIsNotConstructed = errors.New(
		"ExpireStaleDispatchRequestsCommand must be created via NewExpireStaleDispatchRequestsCommand constructor",
	)
	ErrTTLIsInvalid = errors.New("ttl must be greater than 0")
)

// ExpireStaleDispatchRequestsCommand cancels dispatch change requests that
// were never confirmed within the time-to-live. An unconfirmed request has no
// effect on the order, so expiring it simply discards the stale intent.
type ExpireStaleDispatchRequestsCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration
	now time.Time

	guard guard.ConstructorGuard
}

// NewExpireStaleDispatchRequestsCommand creates a sweep command for requests
// older than the ttl as of now.
func NewExpireStaleDispatchRequestsCommand(ttl time.Duration, now time.Time) (ExpireStaleDispatchRequestsCommand, error) {
	cmd := ExpireStaleDispatchRequestsCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTTL(ttl); err != nil {
		return ExpireStaleDispatchRequestsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStaleDispatchRequestsCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleDispatchRequestsCommandIsNotConstructed)
}

// TTL returns how long a request may stay pending before it expires.
func (c ExpireStaleDispatchRequestsCommand) TTL() time.Duration {
	return c.ttl
}

// Now returns the sweep's reference time.
func (c ExpireStaleDispatchRequestsCommand) Now() time.Time {
	return c.now
}

func (c *ExpireStaleDispatchRequestsCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return ErrTTLIsInvalid
	}

	c.ttl = ttl
	return nil
}
