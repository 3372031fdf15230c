package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/spacerhq/spacer-backend/internal/queue"
	"github.com/spacerhq/spacer-backend/internal/repository"
	"github.com/spacerhq/spacer-backend/internal/utils"
)

// BookingHandler serves booking creation and listing. The space existence
// check and the insert are two separate statements; a space deleted in
// between slips through, which is acceptable at this scale.
type BookingHandler struct {
	Bookings  BookingStore
	Spaces    SpaceStore
	Publisher EventPublisher // nil disables event publishing
}

func NewBookingHandler(bookings BookingStore, spaces SpaceStore, pub EventPublisher) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Spaces: spaces, Publisher: pub}
}

type addBookingReq struct {
	UserID        uint64 `json:"user_id"`
	SpaceID       uint64 `json:"space_id"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// AddBooking handles POST /addbookings. Required: user_id, space_id,
// start_time, end_time. Times must match YYYY-MM-DDTHH:MM; end_time is not
// required to follow start_time and overlapping bookings are not rejected.
func (h *BookingHandler) AddBooking(c echo.Context) error {
	var req addBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid request body"})
	}
	if req.UserID == 0 || req.SpaceID == 0 || req.StartTime == "" || req.EndTime == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Missing required fields"})
	}
	start, errStart := time.Parse(utils.BookingTimeLayout, req.StartTime)
	end, errEnd := time.Parse(utils.BookingTimeLayout, req.EndTime)
	if errStart != nil || errEnd != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"message": "Invalid date/time format. Use ISO 8601 format: YYYY-MM-DDTHH:MM",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if _, err := h.Spaces.GetByID(ctx, req.SpaceID); err != nil {
		if errors.Is(err, repository.ErrSpaceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Space not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Could not create booking"})
	}

	b := &repository.Booking{
		UserID:        req.UserID,
		SpaceID:       req.SpaceID,
		StartTime:     start,
		EndTime:       end,
		Status:        defaultString(req.Status, "pending"),
		PaymentStatus: defaultString(req.PaymentStatus, "unpaid"),
	}
	if err := h.Bookings.Create(ctx, b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Could not create booking"})
	}

	if h.Publisher != nil {
		ev := queue.BookingCreatedEvent{
			BookingID:     b.ID,
			UserID:        b.UserID,
			SpaceID:       b.SpaceID,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Status:        b.Status,
			PaymentStatus: b.PaymentStatus,
			CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		}
		// Publishing must never fail the request.
		go func() {
			if err := h.Publisher.PublishBookingCreated(context.Background(), ev); err != nil {
				log.Printf("booking event publish failed: %v", err)
			}
		}()
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "message": "Booking added successfully"})
}

// GetBookings handles GET /getbookings. Start and end times come back in
// the same literal minute-precision format they were posted with.
func (h *BookingHandler) GetBookings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	bookings, err := h.Bookings.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Could not load bookings"})
	}
	out := make([]echo.Map, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, echo.Map{
			"id":             b.ID,
			"user_id":        b.UserID,
			"space_id":       b.SpaceID,
			"start_time":     b.StartTime.Format(utils.BookingTimeLayout),
			"end_time":       b.EndTime.Format(utils.BookingTimeLayout),
			"status":         b.Status,
			"payment_status": b.PaymentStatus,
			"created_at":     b.CreatedAt.Format(utils.BookingTimeLayout),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "bookings": out})
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
