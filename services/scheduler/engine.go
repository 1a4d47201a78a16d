package scheduler

import (
	"time"

	"meetsync/models"
	"meetsync/utils"

	"github.com/google/uuid"
)

// DefaultSchedulingEngine is the concrete engine over an in-memory directory.
// Now is injectable so the rolling availability window is testable; it
// defaults to time.Now.
type DefaultSchedulingEngine struct {
	Directory *UserDirectory
	Now       func() time.Time
}

// NewSchedulingEngine builds an engine with a fresh directory.
func NewSchedulingEngine() *DefaultSchedulingEngine {
	return &DefaultSchedulingEngine{
		Directory: NewUserDirectory(),
		Now:       time.Now,
	}
}

func (e *DefaultSchedulingEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// CreateUser registers a user with an empty 31-day availability window
// starting today and returns the assigned sequential id.
func (e *DefaultSchedulingEngine) CreateUser(name, phone string) int {
	user := &models.User{
		Name:         name,
		PhoneNumber:  phone,
		Availability: InitAvailability(e.now()),
		Bookings:     make(map[string][]models.Booking),
	}
	return e.Directory.Add(user)
}

// GetUser returns a user's profile. The returned value carries no
// availability or bookings; use GetAvailability and GetBookings for those.
func (e *DefaultSchedulingEngine) GetUser(userID int) (models.User, error) {
	entry, ok := e.Directory.entry(userID)
	if !ok {
		return models.User{}, NewUserNotFoundError(userID)
	}
	return models.User{
		ID:          entry.user.ID,
		Name:        entry.user.Name,
		PhoneNumber: entry.user.PhoneNumber,
	}, nil
}

// SetAvailability applies each (date, ranges) pair in order. On the first
// out-of-window date it stops and reports the error; per-date updates applied
// before the failure are kept. Callers depending on already-applied updates
// rely on this partial-application contract.
func (e *DefaultSchedulingEngine) SetAvailability(userID int, dates []string, rangesPerDate [][]models.TimeRange) error {
	if len(dates) != len(rangesPerDate) {
		return NewValidationError("date_list has %d entries but time_ranges has %d", len(dates), len(rangesPerDate))
	}

	entry, ok := e.Directory.entry(userID)
	if !ok {
		return NewUserNotFoundError(userID)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	for i, date := range dates {
		if err := validateRanges(rangesPerDate[i]); err != nil {
			return err
		}
		if err := AddFreeTime(entry.user.Availability, date, rangesPerDate[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetAvailability returns a deep copy of the user's availability window.
func (e *DefaultSchedulingEngine) GetAvailability(userID int) (models.AvailabilitySet, error) {
	entry, ok := e.Directory.entry(userID)
	if !ok {
		return nil, NewUserNotFoundError(userID)
	}

	entry.mu.RLock()
	defer entry.mu.RUnlock()

	snapshot := make(models.AvailabilitySet, len(entry.user.Availability))
	for date, ranges := range entry.user.Availability {
		snapshot[date] = snapshotRanges(ranges)
	}
	return snapshot, nil
}

// GetOverlap intersects the two users' free ranges over their shared dates.
// Dates whose intersection is empty are omitted from the result.
func (e *DefaultSchedulingEngine) GetOverlap(userID1, userID2 int) (map[string][]models.TimeRange, error) {
	entry1, ok := e.Directory.entry(userID1)
	if !ok {
		return nil, NewUserNotFoundError(userID1)
	}
	entry2, ok := e.Directory.entry(userID2)
	if !ok {
		return nil, NewUserNotFoundError(userID2)
	}

	if userID1 == userID2 {
		// A user's overlap with themselves is their own availability.
		entry1.mu.RLock()
		defer entry1.mu.RUnlock()
		return overlapSets(entry1.user.Availability, entry1.user.Availability), nil
	}

	// Lock in id order to rule out lock inversion between concurrent calls.
	first, second := entry1, entry2
	if userID2 < userID1 {
		first, second = entry2, entry1
	}
	first.mu.RLock()
	defer first.mu.RUnlock()
	second.mu.RLock()
	defer second.mu.RUnlock()

	return overlapSets(entry1.user.Availability, entry2.user.Availability), nil
}

func overlapSets(a, b models.AvailabilitySet) map[string][]models.TimeRange {
	overlap := make(map[string][]models.TimeRange)
	for date, ranges1 := range a {
		ranges2, ok := b[date]
		if !ok {
			continue
		}
		if common := OverlapRanges(ranges1, ranges2); len(common) > 0 {
			overlap[date] = common
		}
	}
	return overlap
}

// BookMeeting books slot on the host's calendar for requestorID. The free-range
// subtraction and the booking append happen under one write-lock critical
// section: either both are visible or neither is.
func (e *DefaultSchedulingEngine) BookMeeting(userID int, date string, slot models.TimeRange, requestorID int) error {
	if err := validateRanges([]models.TimeRange{slot}); err != nil {
		return err
	}

	entry, ok := e.Directory.entry(userID)
	if !ok {
		return NewUserNotFoundError(userID)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	freeRanges, ok := entry.user.Availability[date]
	if !ok {
		return NewDateOutOfBoundError(date)
	}
	if !ContainsRange(freeRanges, slot) {
		return NewSlotNotAvailableError(slot.String())
	}

	entry.user.Availability[date] = SubtractRange(freeRanges, slot)
	entry.user.Bookings[date] = append(entry.user.Bookings[date], models.Booking{
		ID:          uuid.NewString(),
		Date:        date,
		TimeRanges:  []models.TimeRange{slot},
		RequestorID: requestorID,
		CreatedAt:   e.now(),
	})
	return nil
}

// GetBookings returns the user's bookings grouped by date, with each
// requestor's name and phone resolved through the directory. A requestor id
// that no longer resolves yields a DANGLING_REFERENCE error rather than a
// partial result.
func (e *DefaultSchedulingEngine) GetBookings(userID int) (map[string][]models.BookingView, error) {
	entry, ok := e.Directory.entry(userID)
	if !ok {
		return nil, NewUserNotFoundError(userID)
	}

	entry.mu.RLock()
	defer entry.mu.RUnlock()

	booked := make(map[string][]models.BookingView, len(entry.user.Bookings))
	for date, bookings := range entry.user.Bookings {
		views := make([]models.BookingView, 0, len(bookings))
		for _, b := range bookings {
			// Name and phone are immutable after creation, so reading the
			// requestor entry needs no per-user lock.
			requestor, ok := e.Directory.entry(b.RequestorID)
			if !ok {
				return nil, NewDanglingReferenceError(b.RequestorID)
			}
			views = append(views, models.BookingView{
				ID:             b.ID,
				TimeRanges:     snapshotRanges(b.TimeRanges),
				RequestorID:    b.RequestorID,
				RequestorName:  requestor.user.Name,
				RequestorPhone: requestor.user.PhoneNumber,
			})
		}
		booked[date] = views
	}
	return booked, nil
}

// validateRanges rejects ranges that cannot be stored within one calendar
// day. A wrapped range (end before start) is valid on the wire during span
// validation but never storable.
func validateRanges(ranges []models.TimeRange) error {
	for _, r := range ranges {
		if r.Start < 0 || r.End > utils.MinutesPerDay {
			return NewValidationError("time range %s is outside the 24-hour day", r.String())
		}
		if r.Start >= r.End {
			return NewValidationError("time range %s must start before it ends", r.String())
		}
	}
	return nil
}
