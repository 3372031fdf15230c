package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/spacerhq/spacer-backend/internal/config"
	"github.com/spacerhq/spacer-backend/internal/repository"
	"github.com/spacerhq/spacer-backend/internal/utils"
)

// AuthHandler bundles dependencies for the login and logout endpoints.
// The admin credential comes from configuration (bcrypt hash), never from
// a literal comparison in code.
type AuthHandler struct {
	Cfg    config.Config
	Users  UserStore
	Tokens TokenRevoker
}

func NewAuthHandler(cfg config.Config, users UserStore, tokens TokenRevoker) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users, Tokens: tokens}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLogin handles POST /adminlogin. The submitted pair is verified
// against the configured admin email and bcrypt hash; the same generic 401
// covers wrong email and wrong password.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Invalid credentials"})
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != strings.ToLower(h.Cfg.AdminEmail) || !utils.VerifyPassword(h.Cfg.AdminPasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Invalid credentials"})
	}
	tok, err := utils.NewAccessToken(h.Cfg.JWTSecret, email, "admin", h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Could not issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"message":    "Login successful",
		"token":      tok.Token,
		"user_email": email,
		"role":       "admin",
	})
}

// UserLogin handles POST /userlogin. Email lookup and bcrypt verification
// share one generic failure message to avoid account enumeration.
func (h *AuthHandler) UserLogin(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Invalid email or password"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Invalid email or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Login failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Invalid email or password"})
	}
	tok, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.Email, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Could not issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"message":    "Login successful",
		"token":      tok.Token,
		"user_email": u.Email,
		"role":       u.Role,
	})
}

// AdminLogout handles POST /adminlogout.
func (h *AuthHandler) AdminLogout(c echo.Context) error { return h.logout(c) }

// UserLogout handles POST /userlogout.
func (h *AuthHandler) UserLogout(c echo.Context) error { return h.logout(c) }

// logout instructs the client to drop its token and, when the request
// carries a still-valid Bearer token, adds its jti to the revocation set
// for the token's remaining lifetime. Requests without a usable token
// still succeed: logout stays a client-side instruction at minimum.
func (h *AuthHandler) logout(c echo.Context) error {
	auth := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") && h.Tokens != nil {
		raw := strings.TrimPrefix(auth, "Bearer ")
		if claims, err := utils.ParseAccessToken(h.Cfg.JWTSecret, raw); err == nil {
			ttl := time.Until(claims.Exp)
			if err := h.Tokens.Revoke(c.Request().Context(), claims.ID, ttl); err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Logout failed"})
			}
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Logout successful"})
}

// Me handles GET /me behind the JWT middleware and echoes the caller's
// token identity.
func (h *AuthHandler) Me(c echo.Context) error {
	email, role, err := identityFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Unauthorized"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user_email": email, "role": role})
}
