package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand represents a request to add a catalog category.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	actorRole user.Role
	title     string
	slug      string

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand creates a category creation command.
func NewCreateCategoryCommand(actorRole user.Role, title, slug string) (CreateCategoryCommand, error) {
	cmd := CreateCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorRole(actorRole),
		cmd.setTitle(title),
		cmd.setSlug(slug),
	); err != nil {
		return CreateCategoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

// ActorRole returns the acting user's resolved role.
func (c CreateCategoryCommand) ActorRole() user.Role {
	return c.actorRole
}

// Title returns the category title.
func (c CreateCategoryCommand) Title() string {
	return c.title
}

// Slug returns the category slug.
func (c CreateCategoryCommand) Slug() string {
	return c.slug
}

func (c *CreateCategoryCommand) setActorRole(r user.Role) error {
	if r == user.RoleUnknown {
		return errs.NewValueIsRequiredError("actorRole")
	}
	c.actorRole = r
	return nil
}

func (c *CreateCategoryCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

func (c *CreateCategoryCommand) setSlug(slug string) error {
	if slug == "" {
		return errs.NewValueIsRequiredError("slug")
	}
	c.slug = slug
	return nil
}
