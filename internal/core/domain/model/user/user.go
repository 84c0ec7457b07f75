package user

import (
	"errors"
	"slices"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser. This ensures all users are validated.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")
)

// User is the identity aggregate. It carries the membership facts (superuser
// flag and group memberships) that the Role resolution derives from.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Username and email are required
//   - Group memberships form a set; adding or removing is idempotent
//   - Can only be created through NewUser or RestoreUser
type User struct {
	id           kernel.UUID
	username     string
	email        string
	passwordHash string
	isSuperuser  bool
	groups       []Group

	isConstructed bool
}

// NewUser creates a user with no group memberships (a customer).
// The password hash must already be computed; the domain never sees
// plain-text passwords.
func NewUser(id kernel.UUID, username, email, passwordHash string) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence, including flags and
// memberships. Used only by repository implementations.
func RestoreUser(
	id kernel.UUID,
	username, email, passwordHash string,
	isSuperuser bool,
	groups []Group,
) (*User, error) {
	u, err := NewUser(id, username, email, passwordHash)
	if err != nil {
		return nil, err
	}

	for _, g := range groups {
		if err := g.Validate(); err != nil {
			return nil, err
		}
	}

	u.isSuperuser = isSuperuser
	u.groups = slices.Clone(groups)
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the unique login name.
func (u *User) Username() string {
	return u.username
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// IsSuperuser reports whether the user carries the administrator flag.
func (u *User) IsSuperuser() bool {
	return u.isSuperuser
}

// Groups returns a copy of the user's group memberships.
func (u *User) Groups() []Group {
	return slices.Clone(u.groups)
}

// IsMemberOf reports whether the user belongs to the given group.
func (u *User) IsMemberOf(g Group) bool {
	return slices.Contains(u.groups, g)
}

// Role resolves the user's effective role from its membership facts.
func (u *User) Role() Role {
	return ResolveRole(u.isSuperuser, u.groups)
}

// AddToGroup adds the user to a group. Adding an existing member is a
// no-op success; membership stays a set.
func (u *User) AddToGroup(g Group) error {
	if err := g.Validate(); err != nil {
		return err
	}

	if u.IsMemberOf(g) {
		return nil
	}

	u.groups = append(u.groups, g)
	return nil
}

// RemoveFromGroup removes the user from a group. Removing a non-member is a
// no-op success.
func (u *User) RemoveFromGroup(g Group) error {
	if err := g.Validate(); err != nil {
		return err
	}

	u.groups = slices.DeleteFunc(u.groups, func(member Group) bool {
		return member == g
	})
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}
