package middleware

import (
	"errors"
	"net/http"

	"github.com/MoBa75/webshop/internal/auth"
	repo "github.com/MoBa75/webshop/internal/repository"

	"github.com/labstack/echo/v4"
)

// RequireUser resolves the verified Auth0 subject to a registered shop user
// and stores its id and admin flag in the context. Runs after AuthJWT;
// unregistered subjects get 403 and are pointed at /users/register.
func RequireUser(userRepo repo.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := c.Get(CtxIdentityKey).(auth.Identity)
			if !ok || ident.Sub == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			user, err := userRepo.FindByAuth0Sub(c.Request().Context(), ident.Sub)
			if errors.Is(err, repo.ErrNotFound) {
				return c.JSON(http.StatusForbidden, errorJSON("not registered"))
			}
			if err != nil {
				return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}

			c.Set(CtxUserIDKey, user.ID)
			c.Set(CtxIsAdminKey, user.IsAdmin)
			return next(c)
		}
	}
}

// AdminGuard rejects non-admin users. Runs after RequireUser.
func AdminGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAdmin, ok := c.Get(CtxIsAdminKey).(bool)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			if !isAdmin {
				return c.JSON(http.StatusForbidden, errorJSON("admin only"))
			}
			return next(c)
		}
	}
}
