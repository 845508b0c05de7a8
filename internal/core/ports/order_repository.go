package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUndelivered retrieves every order whose dispatch status is not
	// Delivered, ordered by identifier.
	GetAllUndelivered(ctx context.Context) ([]*order.Order, error)

	// GetAllWithPendingDispatch retrieves every order carrying a dispatch
	// status change that is still awaiting confirmation. Used by the sweeper
	// that expires stale requests.
	GetAllWithPendingDispatch(ctx context.Context) ([]*order.Order, error)
}
