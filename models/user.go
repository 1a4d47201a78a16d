package models

// User represents a platform user with a rolling availability window and the
// bookings made against their calendar.
type User struct {
	ID           int                  `json:"id"`
	Name         string               `json:"user_name"`
	PhoneNumber  string               `json:"phone_number"`
	Availability AvailabilitySet      `json:"availability"`
	Bookings     map[string][]Booking `json:"bookings"` // Keyed by "YYYY-MM-DD" date
}
