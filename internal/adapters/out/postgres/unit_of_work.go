// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one business transaction: repositories created
// from it share the transaction started by Begin, and the aggregates they
// touch are tracked until Commit or Rollback closes the transaction.
package postgres

import (
	"context"

	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a GORM database
// connection. Each business operation gets a fresh unit of work instance with
// proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance. Each instance maintains its own
// transaction state and aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Repositories created from it run inside
// the current transaction when one is active.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work. Calling
// Begin again on an instance with an open transaction is a no-op; nested
// transactions are never created.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns an error if no transaction is active or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns an error if no transaction is active or the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository provides order persistence bound to the current transaction
// when one is active, or the main connection otherwise. Aggregates the
// repository adds or updates are tracked on this unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repository implementations call it on every add or update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
