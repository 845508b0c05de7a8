package kernel

import (
	"fmt"

	"orderdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not initialized through one
// of the constructor functions. It is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is a value object that identifies aggregates in the domain. It wraps
// github.com/google/uuid to keep the external type out of domain signatures.
//
// The zero value is invalid; construct instances with NewUUID, UUIDFromString,
// or UUIDFromBytes. UUID is immutable and safe for concurrent use.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4). This is the primary way to
// mint identifiers for new orders.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its canonical string representation.
// Used when reconstructing identifiers from persistence or request paths.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a 16-byte slice, validating the result.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical textual form of the UUID.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value for persistence adapters.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two UUIDs represent the same identifier.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
