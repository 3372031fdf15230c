package middleware // reusable HTTP middleware shared by protected routes

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/spacerhq/spacer-backend/internal/utils"
)

// RevocationChecker reports whether a token id has been revoked by a
// logout. Implemented by repository.TokenRepo; nil disables the check.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) bool
}

// JWTAuth validates a Bearer access token, rejects revoked tokens, and
// injects the identity and role claims into the request context under
// "identity" and "role". The secret must match the one used at issuance.
func JWTAuth(secret string, revoked RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Invalid token"})
			}
			if revoked != nil && revoked.IsRevoked(c.Request().Context(), claims.ID) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Token has been revoked"})
			}

			c.Set("identity", claims.Identity)
			c.Set("role", claims.Role)
			c.Set("jti", claims.ID)
			return next(c)
		}
	}
}

// RequireRole enforces that the authenticated caller carries one of the
// given roles. It assumes JWTAuth already stored "role" in the context.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"success": false, "message": "Forbidden"})
			}
			return next(c)
		}
	}
}
