package orderrepo

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order. Every column is written, including blanked
// ones, so the clearing effects of field edits survive persistence. The line
// rows are replaced wholesale because lines are addressed by position.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("Lines").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Delete(&LineDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Lines) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Lines).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("idx") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUndelivered retrieves every order whose dispatch status is not
// Delivered, ordered by ID.
func (r *GormOrderRepository) GetAllUndelivered(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("idx") }).
		Where("dispatch_status != ?", int(order.Delivered)).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllWithPendingDispatch retrieves every order carrying an unconfirmed
// dispatch change request.
func (r *GormOrderRepository) GetAllWithPendingDispatch(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("idx") }).
		Where("pending_dispatch_target IS NOT NULL").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormOrderRepository) toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
