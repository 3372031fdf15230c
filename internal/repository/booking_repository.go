package repository

import (
	"context"
	"database/sql"
	"time"
)

// Booking is a reservation of a space for a time interval. UserID and
// SpaceID are soft references; the space's existence is verified by the
// handler at creation time only. No overlap constraint exists between
// bookings of the same space.
type Booking struct {
	ID            uint64
	UserID        uint64
	SpaceID       uint64
	StartTime     time.Time
	EndTime       time.Time
	Status        string
	PaymentStatus string
	CreatedAt     time.Time
}

// BookingRepo encapsulates all database queries related to bookings.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// Create inserts a booking and fills in the generated ID and created_at.
// Status and PaymentStatus must already carry their defaults.
func (r *BookingRepo) Create(ctx context.Context, b *Booking) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO bookings (user_id, space_id, start_time, end_time, status, payment_status) VALUES (?,?,?,?,?,?)",
		b.UserID, b.SpaceID, b.StartTime, b.EndTime, b.Status, b.PaymentStatus)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return r.DB.QueryRowContext(ctx,
		"SELECT created_at FROM bookings WHERE id=?", b.ID).Scan(&b.CreatedAt)
}

// List returns all bookings ordered by id.
func (r *BookingRepo) List(ctx context.Context) ([]*Booking, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,user_id,space_id,start_time,end_time,status,payment_status,created_at FROM bookings ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Booking
	for rows.Next() {
		b := new(Booking)
		if err := rows.Scan(&b.ID, &b.UserID, &b.SpaceID, &b.StartTime, &b.EndTime, &b.Status, &b.PaymentStatus, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
