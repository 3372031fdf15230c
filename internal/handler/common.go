package handler // HTTP handlers implementing the booking API contract

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/spacerhq/spacer-backend/internal/queue"
	"github.com/spacerhq/spacer-backend/internal/repository"
)

// dbTimeout bounds every persistence call made from a handler.
const dbTimeout = 5 * time.Second

// UserStore is the persistence surface the user and auth handlers need.
// Implemented by repository.UserRepo; tests substitute function-backed mocks.
type UserStore interface {
	Create(ctx context.Context, u *repository.User) error
	GetByEmail(ctx context.Context, email string) (*repository.User, error)
	List(ctx context.Context) ([]*repository.User, error)
	DeleteByEmail(ctx context.Context, email string) error
}

// SpaceStore is the persistence surface for spaces. The booking handler
// also depends on it for the existence check at creation time.
type SpaceStore interface {
	Create(ctx context.Context, s *repository.Space) error
	GetByID(ctx context.Context, id uint64) (*repository.Space, error)
	List(ctx context.Context) ([]*repository.Space, error)
}

// BookingStore is the persistence surface for bookings.
type BookingStore interface {
	Create(ctx context.Context, b *repository.Booking) error
	List(ctx context.Context) ([]*repository.Booking, error)
}

// TokenRevoker lets logout invalidate the presented access token.
// Implemented by repository.TokenRepo; a nil-Redis repo makes it a no-op.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

// EventPublisher emits domain events after successful writes. Handlers
// treat publishing as fire-and-forget; a nil publisher disables it.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, ev queue.BookingCreatedEvent) error
}

// identityFromContext reads the identity and role claims stored by the
// JWT middleware. Handlers behind the middleware can assume both are set;
// the error covers direct (mis)use without it.
func identityFromContext(c echo.Context) (email, role string, err error) {
	e, ok := c.Get("identity").(string)
	if !ok || e == "" {
		return "", "", errors.New("no identity in context")
	}
	r, _ := c.Get("role").(string)
	return e, r, nil
}
