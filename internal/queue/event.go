// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// BookingCreatedEvent is published after a booking insert succeeds. It
// carries enough for downstream consumers to log or notify without
// querying the primary database. Times keep the API's minute-precision
// wire format.
type BookingCreatedEvent struct {
	BookingID     uint64 `json:"booking_id"`
	UserID        uint64 `json:"user_id"`
	SpaceID       uint64 `json:"space_id"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	CreatedAt     string `json:"created_at"`
}

// BookingQueueName is the durable queue shared by publisher and consumer.
const BookingQueueName = "booking.created"
