package http

import (
	"net/http"
	"strings"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/core/ports"
	"littlelemon/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// Identity carries the authenticated user's facts for one request. The role
// is resolved from the store on every request, never read from the token,
// so revoking a membership takes effect immediately.
type Identity struct {
	UserID   kernel.UUID
	Username string
	Role     user.Role
}

// AuthMiddleware validates bearer tokens and attaches an Identity to the
// request context.
type AuthMiddleware struct {
	tokens *auth.TokenService
	users  ports.UserRepository
}

// NewAuthMiddleware creates the JWT authentication middleware.
func NewAuthMiddleware(tokens *auth.TokenService, users ports.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		users:  users,
	}
}

// Require rejects requests without a valid bearer token.
func (m *AuthMiddleware) Require() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			claims, err := m.tokens.Validate(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid token",
				})
			}

			userID, err := kernel.UUIDFromString(claims.UserID)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid token",
				})
			}

			subject, err := m.users.Get(ctx.Request().Context(), userID)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Unknown user",
				})
			}

			ctx.Set(identityKey, Identity{
				UserID:   subject.ID(),
				Username: subject.Username(),
				Role:     subject.Role(),
			})

			return next(ctx)
		}
	}
}

func identityFrom(ctx echo.Context) (Identity, bool) {
	identity, ok := ctx.Get(identityKey).(Identity)
	return identity, ok
}
