package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/spacerhq/spacer-backend/internal/queue"
	"github.com/spacerhq/spacer-backend/internal/repository"
)

// --- Mock stores (function fields, nil = not expected to be called) ---

type mockUserStore struct {
	createFn func(ctx context.Context, u *repository.User) error
	byEmail  func(ctx context.Context, email string) (*repository.User, error)
	listFn   func(ctx context.Context) ([]*repository.User, error)
	deleteFn func(ctx context.Context, email string) error
}

func (m *mockUserStore) Create(ctx context.Context, u *repository.User) error {
	return m.createFn(ctx, u)
}
func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*repository.User, error) {
	return m.byEmail(ctx, email)
}
func (m *mockUserStore) List(ctx context.Context) ([]*repository.User, error) {
	return m.listFn(ctx)
}
func (m *mockUserStore) DeleteByEmail(ctx context.Context, email string) error {
	return m.deleteFn(ctx, email)
}

type mockSpaceStore struct {
	createFn func(ctx context.Context, s *repository.Space) error
	byID     func(ctx context.Context, id uint64) (*repository.Space, error)
	listFn   func(ctx context.Context) ([]*repository.Space, error)
}

func (m *mockSpaceStore) Create(ctx context.Context, s *repository.Space) error {
	return m.createFn(ctx, s)
}
func (m *mockSpaceStore) GetByID(ctx context.Context, id uint64) (*repository.Space, error) {
	return m.byID(ctx, id)
}
func (m *mockSpaceStore) List(ctx context.Context) ([]*repository.Space, error) {
	return m.listFn(ctx)
}

type mockBookingStore struct {
	createFn func(ctx context.Context, b *repository.Booking) error
	listFn   func(ctx context.Context) ([]*repository.Booking, error)
}

func (m *mockBookingStore) Create(ctx context.Context, b *repository.Booking) error {
	return m.createFn(ctx, b)
}
func (m *mockBookingStore) List(ctx context.Context) ([]*repository.Booking, error) {
	return m.listFn(ctx)
}

type mockRevoker struct {
	revokeFn func(ctx context.Context, jti string, ttl time.Duration) error
}

func (m *mockRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if m.revokeFn == nil {
		return nil
	}
	return m.revokeFn(ctx, jti, ttl)
}

type mockPublisher struct {
	events chan queue.BookingCreatedEvent
}

func newMockPublisher() *mockPublisher {
	return &mockPublisher{events: make(chan queue.BookingCreatedEvent, 1)}
}

func (m *mockPublisher) PublishBookingCreated(ctx context.Context, ev queue.BookingCreatedEvent) error {
	m.events <- ev
	return nil
}

// --- Request plumbing helpers ---

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(rec *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		return nil
	}
	return out
}
