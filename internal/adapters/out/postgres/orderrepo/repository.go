package orderrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"foodbank/internal/core/domain/model/kernel"
	"foodbank/internal/core/domain/model/order"
	"foodbank/internal/pkg/errs"
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

// Add saves a new order. A violation of the active-pickup unique index is
// reported as a SlotIsTakenError, which closes the race between two
// concurrent submissions for the same slot.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateSlotConflict(err, aggregate.Pickup())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update replaces the stored state of an existing order. All columns are
// written, so clearing a field (an emptied comment, a zeroed count) sticks.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return translateSlotConflict(result.Error, aggregate.Pickup())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByPickup retrieves the active orders booked at the exact pickup
// timestamp. The active-pickup index allows at most one.
func (r *GormOrderRepository) GetActiveByPickup(ctx context.Context, pickup time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "pickup = ? AND status IN (?, ?, ?)", pickup, order.Pending, order.Approved, order.Released).
		Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllActive retrieves every order in an active status for the daily sweep.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status IN (?, ?, ?)", order.Pending, order.Approved, order.Released).
		Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// translateSlotConflict maps a unique index violation to the domain slot
// conflict error. Requires the gorm postgres driver's TranslateError mode.
func translateSlotConflict(err error, pickup time.Time) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewSlotIsTakenErrorWithCause(pickup.Format("1/2/2006 3:04 PM"), err)
	}
	return err
}
