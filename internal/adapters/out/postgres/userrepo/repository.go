package userrepo

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user with its memberships to the database. The unique
// index on username rejects duplicates.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
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

// Update saves an existing user and synchronizes its membership rows.
// Membership inserts use ON CONFLICT DO NOTHING so a concurrent grant of
// the same (user, group) pair cannot fail the transaction.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"email":         dto.Email,
			"password_hash": dto.PasswordHash,
			"is_superuser":  dto.IsSuperuser,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", aggregate.ID().String())
	}

	names := make([]string, 0, len(dto.Memberships))
	for _, m := range dto.Memberships {
		names = append(names, m.GroupName)
	}

	stale := db.Where("user_id = ?", dto.ID)
	if len(names) > 0 {
		stale = stale.Where("group_name NOT IN ?", names)
	}
	if err := stale.Delete(&MembershipDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Memberships) > 0 {
		err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.Memberships).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a user by ID with memberships loaded.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	err := r.db.WithContext(ctx).
		Preload("Memberships").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUsername retrieves a user by username with memberships loaded.
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	var dto UserDTO
	err := r.db.WithContext(ctx).
		Preload("Memberships").
		First(&dto, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("username", username)
		}
		return nil, err
	}

	return toDomain(dto)
}
