package scheduler

import "meetsync/models"

// SchedulingEngine defines the synchronous API the transport layer calls into.
// All failures are *EngineError values; none are fatal to the process.
type SchedulingEngine interface {
	// CreateUser registers a user and initializes their 31-day availability
	// window starting today.
	CreateUser(name, phone string) int

	// GetUser returns a user's profile (id, name, phone).
	GetUser(userID int) (models.User, error)

	// SetAvailability zips dates with rangesPerDate positionally and merges
	// each range list into the matching date. It fails fast on the first
	// out-of-window date; earlier per-date updates stay applied.
	SetAvailability(userID int, dates []string, rangesPerDate [][]models.TimeRange) error

	// GetAvailability snapshots the user's full availability window.
	GetAvailability(userID int) (models.AvailabilitySet, error)

	// GetOverlap intersects two users' free ranges on their shared dates,
	// omitting dates with no overlap.
	GetOverlap(userID1, userID2 int) (map[string][]models.TimeRange, error)

	// BookMeeting carves slot out of the host's free time on date and records
	// a booking for requestorID. Subtraction and booking insertion are a
	// single atomic step.
	BookMeeting(userID int, date string, slot models.TimeRange, requestorID int) error

	// GetBookings lists the user's bookings with requestor contact details
	// resolved through the directory.
	GetBookings(userID int) (map[string][]models.BookingView, error)
}
