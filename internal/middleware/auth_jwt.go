package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/MoBa75/webshop/internal/auth"

	"github.com/labstack/echo/v4"
)

const (
	CtxIdentityKey = "identity" // auth.Identity
	CtxUserIDKey   = "user_id"  // int64, set by RequireUser
	CtxIsAdminKey  = "is_admin" // bool, set by RequireUser
)

// Anything that can turn a raw bearer token into a verified identity.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (auth.Identity, error)
}

// AuthJWT verifies the Authorization bearer token against Auth0 and stores
// the identity claims in the request context.
func AuthJWT(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			ident, err := verifier.Verify(c.Request().Context(), rawToken)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			c.Set(CtxIdentityKey, ident)
			return next(c)
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// GetIdentity returns the verified identity stored by AuthJWT.
func GetIdentity(c echo.Context) (auth.Identity, bool) {
	v := c.Get(CtxIdentityKey)
	if v == nil {
		return auth.Identity{}, false
	}
	ident, ok := v.(auth.Identity)
	return ident, ok
}
