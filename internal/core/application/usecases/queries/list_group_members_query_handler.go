package queries

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListGroupMembersQueryHandler reads group member listings from the
// database.
type ListGroupMembersQueryHandler struct {
	db *gorm.DB
}

// NewListGroupMembersQueryHandler creates a handler for member listings.
func NewListGroupMembersQueryHandler(db *gorm.DB) ListGroupMembersQueryHandler {
	return ListGroupMembersQueryHandler{db: db}
}

// Handle executes the query. Members are sorted by username.
func (h ListGroupMembersQueryHandler) Handle(
	ctx context.Context,
	query ListGroupMembersQuery,
) ([]ListGroupMembersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	members := make([]ListGroupMembersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT u.id, u.username, u.email
		FROM users u
		JOIN group_memberships m ON m.user_id = u.id
		WHERE m.group_name = ?
		ORDER BY u.username
	`, query.Group().Name()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListGroupMembersQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Username, &resp.Email); err != nil {
			return nil, err
		}

		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = userID

		members = append(members, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
