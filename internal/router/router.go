// Package router wires HTTP routes to their handlers.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/spacerhq/spacer-backend/internal/config"
	"github.com/spacerhq/spacer-backend/internal/handler"
	"github.com/spacerhq/spacer-backend/internal/middleware"
)

// Handlers bundles everything RegisterRoutes needs.
type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Space   *handler.SpaceHandler
	Booking *handler.BookingHandler
	Revoked middleware.RevocationChecker
}

// RegisterRoutes registers the full HTTP surface. The documented booking
// routes are public; only /me and /deleteuser sit behind JWT middleware.
// CORS allows all origins, matching the frontend's cross-origin calls.
func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers, rdb *redis.Client) {
	e.Use(echomw.CORS())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	e.GET("/", handler.Health)

	// auth
	e.POST("/adminlogin", h.Auth.AdminLogin)
	e.POST("/adminlogout", h.Auth.AdminLogout)
	e.POST("/userlogin", h.Auth.UserLogin)
	e.POST("/userlogout", h.Auth.UserLogout)

	// list endpoints share the response cache
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	// spaces
	e.POST("/addspaces", h.Space.AddSpace)
	e.GET("/getspaces", h.Space.GetSpaces, cache)

	// users
	e.POST("/addusers", h.User.AddUser)
	e.GET("/getusers", h.User.GetUsers, cache)

	// bookings
	e.POST("/addbookings", h.Booking.AddBooking)
	e.GET("/getbookings", h.Booking.GetBookings, cache)

	// token-gated routes
	auth := e.Group("", middleware.JWTAuth(cfg.JWTSecret, h.Revoked))
	auth.GET("/me", h.Auth.Me)
	auth.DELETE("/deleteuser", h.User.DeleteUser)
}
