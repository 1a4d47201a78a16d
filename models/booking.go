package models

import "time"

// Booking represents a confirmed meeting on a host's calendar.
type Booking struct {
	ID          string      `json:"id"`           // Unique booking identifier (UUID)
	Date        string      `json:"date"`         // Booking date in "YYYY-MM-DD" format
	TimeRanges  []TimeRange `json:"time_ranges"`  // Booked spans (minutes from midnight)
	RequestorID int         `json:"requestor_id"` // User the meeting was booked for
	CreatedAt   time.Time   `json:"created_at"`   // Timestamp when booking was created
}

// BookingView is a booking enriched with the resolved requestor contact
// details, as returned to API clients.
type BookingView struct {
	ID             string      `json:"id"`
	TimeRanges     []TimeRange `json:"time_ranges"`
	RequestorID    int         `json:"requestor_id"`
	RequestorName  string      `json:"requestor_name"`
	RequestorPhone string      `json:"requestor_phone"`
}
