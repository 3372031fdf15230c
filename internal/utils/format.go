package utils

import "strconv"

// BookingTimeLayout is the wire format for booking start/end times.
// Minute precision only; what a client posts is what list endpoints echo back.
const BookingTimeLayout = "2006-01-02T15:04"

// FormatPrice normalizes a decimal price string for API responses.
// MySQL DECIMAL columns come back zero-padded ("25.50"); clients expect
// the shortest representation ("25.5"). Non-numeric input is returned as is.
func FormatPrice(raw string) string {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
