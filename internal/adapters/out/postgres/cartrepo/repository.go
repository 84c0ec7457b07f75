package cartrepo

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cart line to the database.
func (r *GormCartRepository) Add(ctx context.Context, line *cart.CartLine) error {
	if err := line.Validate(); err != nil {
		return err
	}

	dto := fromDomain(line)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(line.ID(), line)
	return nil
}

// GetAllByCustomer retrieves the customer's cart lines, oldest first.
func (r *GormCartRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*cart.CartLine, error) {
	return r.getAllByCustomer(ctx, customerID, false)
}

// GetAllByCustomerForUpdate retrieves the customer's cart lines under
// SELECT ... FOR UPDATE. A concurrent checkout of the same cart blocks on
// the row locks until this transaction commits.
func (r *GormCartRepository) GetAllByCustomerForUpdate(ctx context.Context, customerID kernel.UUID) ([]*cart.CartLine, error) {
	return r.getAllByCustomer(ctx, customerID, true)
}

func (r *GormCartRepository) getAllByCustomer(ctx context.Context, customerID kernel.UUID, forUpdate bool) ([]*cart.CartLine, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Order("added_at")
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dtos []CartLineDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	lines := make([]*cart.CartLine, 0, len(dtos))
	for _, dto := range dtos {
		line, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// DeleteAllByCustomer removes every cart line owned by the customer.
// Deleting an empty cart succeeds.
func (r *GormCartRepository) DeleteAllByCustomer(ctx context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Delete(&CartLineDTO{}).Error
}

// DeleteOlderThan removes cart lines added before the cutoff across all
// customers and reports how many were removed.
func (r *GormCartRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("added_at < ?", cutoff).
		Delete(&CartLineDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
