package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/spacerhq/spacer-backend/internal/repository"
)

func knownSpace(id uint64) *mockSpaceStore {
	return &mockSpaceStore{
		byID: func(ctx context.Context, got uint64) (*repository.Space, error) {
			if got == id {
				return &repository.Space{ID: id, Name: "Loft"}, nil
			}
			return nil, repository.ErrSpaceNotFound
		},
	}
}

func TestAddBooking_Success(t *testing.T) {
	var stored *repository.Booking
	bookings := &mockBookingStore{
		createFn: func(ctx context.Context, b *repository.Booking) error {
			b.ID = 7
			b.CreatedAt = time.Now().UTC()
			stored = b
			return nil
		},
	}
	pub := newMockPublisher()
	h := NewBookingHandler(bookings, knownSpace(2), pub)
	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/addbookings",
		`{"user_id":1,"space_id":2,"start_time":"2024-01-01T10:00","end_time":"2024-01-01T11:00"}`)

	assert.NoError(t, h.AddBooking(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Booking added successfully", decodeBody(rec)["message"])

	assert.NotNil(t, stored)
	assert.Equal(t, uint64(1), stored.UserID)
	assert.Equal(t, uint64(2), stored.SpaceID)
	assert.Equal(t, "pending", stored.Status)
	assert.Equal(t, "unpaid", stored.PaymentStatus)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), stored.StartTime)

	select {
	case ev := <-pub.events:
		assert.Equal(t, uint64(7), ev.BookingID)
		assert.Equal(t, "2024-01-01T10:00", ev.StartTime)
		assert.Equal(t, "pending", ev.Status)
	case <-time.After(time.Second):
		t.Fatal("expected a booking.created event")
	}
}

func TestAddBooking_ExplicitStatusKept(t *testing.T) {
	var stored *repository.Booking
	bookings := &mockBookingStore{
		createFn: func(ctx context.Context, b *repository.Booking) error {
			stored = b
			return nil
		},
	}
	h := NewBookingHandler(bookings, knownSpace(2), nil)
	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/addbookings",
		`{"user_id":1,"space_id":2,"start_time":"2024-01-01T10:00","end_time":"2024-01-01T11:00","status":"confirmed","payment_status":"paid"}`)

	assert.NoError(t, h.AddBooking(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "confirmed", stored.Status)
	assert.Equal(t, "paid", stored.PaymentStatus)
}

func TestAddBooking_MissingFields(t *testing.T) {
	bookings := &mockBookingStore{
		createFn: func(ctx context.Context, b *repository.Booking) error {
			t.Fatal("store must not be called on invalid input")
			return nil
		},
	}
	h := NewBookingHandler(bookings, knownSpace(2), nil)
	e := echo.New()

	cases := []string{
		`{"space_id":2,"start_time":"2024-01-01T10:00","end_time":"2024-01-01T11:00"}`,
		`{"user_id":1,"start_time":"2024-01-01T10:00","end_time":"2024-01-01T11:00"}`,
		`{"user_id":1,"space_id":2,"end_time":"2024-01-01T11:00"}`,
		`{"user_id":1,"space_id":2,"start_time":"2024-01-01T10:00"}`,
	}
	for _, body := range cases {
		c, rec := newJSONContext(e, http.MethodPost, "/addbookings", body)
		assert.NoError(t, h.AddBooking(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
		assert.Equal(t, "Missing required fields", decodeBody(rec)["message"])
	}
}

func TestAddBooking_BadTimeFormat(t *testing.T) {
	bookings := &mockBookingStore{
		createFn: func(ctx context.Context, b *repository.Booking) error {
			t.Fatal("store must not be called on invalid input")
			return nil
		},
	}
	h := NewBookingHandler(bookings, knownSpace(2), nil)
	e := echo.New()

	cases := []string{
		`{"user_id":1,"space_id":2,"start_time":"2024-01-01 10:00","end_time":"2024-01-01T11:00"}`,
		`{"user_id":1,"space_id":2,"start_time":"2024-01-01T10:00","end_time":"not-a-time"}`,
		`{"user_id":1,"space_id":2,"start_time":"2024-01-01T10:00:00","end_time":"2024-01-01T11:00"}`,
	}
	for _, body := range cases {
		c, rec := newJSONContext(e, http.MethodPost, "/addbookings", body)
		assert.NoError(t, h.AddBooking(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
		assert.Contains(t, decodeBody(rec)["message"], "YYYY-MM-DDTHH:MM")
	}
}

func TestAddBooking_UnknownSpace(t *testing.T) {
	bookings := &mockBookingStore{
		createFn: func(ctx context.Context, b *repository.Booking) error {
			t.Fatal("no booking may be created for an unknown space")
			return nil
		},
	}
	h := NewBookingHandler(bookings, knownSpace(2), nil)
	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/addbookings",
		`{"user_id":1,"space_id":99,"start_time":"2024-01-01T10:00","end_time":"2024-01-01T11:00"}`)

	assert.NoError(t, h.AddBooking(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Space not found", decodeBody(rec)["message"])
}

func TestBookingTimes_RoundTrip(t *testing.T) {
	var saved []*repository.Booking
	bookings := &mockBookingStore{
		createFn: func(ctx context.Context, b *repository.Booking) error {
			b.ID = uint64(len(saved) + 1)
			b.CreatedAt = time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
			saved = append(saved, b)
			return nil
		},
		listFn: func(ctx context.Context) ([]*repository.Booking, error) {
			return saved, nil
		},
	}
	h := NewBookingHandler(bookings, knownSpace(2), nil)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodPost, "/addbookings",
		`{"user_id":1,"space_id":2,"start_time":"2024-01-01T10:00","end_time":"2024-01-01T11:00"}`)
	assert.NoError(t, h.AddBooking(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	c2, rec2 := newJSONContext(e, http.MethodGet, "/getbookings", "")
	assert.NoError(t, h.GetBookings(c2))
	assert.Equal(t, http.StatusOK, rec2.Code)

	body := decodeBody(rec2)
	list := body["bookings"].([]any)
	assert.Len(t, list, 1)
	got := list[0].(map[string]any)
	// literal round-trip of the posted minute-precision strings
	assert.Equal(t, "2024-01-01T10:00", got["start_time"])
	assert.Equal(t, "2024-01-01T11:00", got["end_time"])
	assert.Equal(t, "2024-01-01T09:30", got["created_at"])
	assert.Equal(t, "pending", got["status"])
	assert.Equal(t, "unpaid", got["payment_status"])

	// idempotent listing
	c3, rec3 := newJSONContext(e, http.MethodGet, "/getbookings", "")
	assert.NoError(t, h.GetBookings(c3))
	assert.Equal(t, rec2.Body.String(), rec3.Body.String())
}
