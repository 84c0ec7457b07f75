// Package userrepo provides GORM persistence for user aggregates and their
// group memberships. Memberships live in a join table keyed by (user, group)
// so concurrent grants of the same membership collapse into one row.
package userrepo

import (
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex"`
	Email        string
	PasswordHash string
	IsSuperuser  bool
	Memberships  []MembershipDTO `gorm:"foreignKey:UserID"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// MembershipDTO represents one group membership row. The composite primary
// key makes membership writes naturally idempotent.
type MembershipDTO struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	GroupName string    `gorm:"primaryKey"`
}

// TableName overrides GORM's default naming to use "group_memberships".
func (MembershipDTO) TableName() string {
	return "group_memberships"
}

func fromDomain(aggregate *user.User) UserDTO {
	memberships := make([]MembershipDTO, 0, len(aggregate.Groups()))
	for _, g := range aggregate.Groups() {
		memberships = append(memberships, MembershipDTO{
			UserID:    aggregate.ID().Bytes(),
			GroupName: g.Name(),
		})
	}

	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Username:     aggregate.Username(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		IsSuperuser:  aggregate.IsSuperuser(),
		Memberships:  memberships,
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	groups := make([]user.Group, 0, len(dto.Memberships))
	for _, m := range dto.Memberships {
		g, groupErr := user.GroupFromName(m.GroupName)
		if groupErr != nil {
			return nil, groupErr
		}
		groups = append(groups, g)
	}

	return user.RestoreUser(
		id, dto.Username, dto.Email, dto.PasswordHash,
		dto.IsSuperuser, groups,
	)
}
