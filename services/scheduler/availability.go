package scheduler

import (
	"time"

	"meetsync/models"
	"meetsync/utils"
)

// AvailabilityWindowDays is the length of the rolling window created for every
// new user: today plus the next 30 days.
const AvailabilityWindowDays = 31

// InitAvailability builds a fresh availability set covering
// AvailabilityWindowDays consecutive dates starting at from, each with no free
// time declared yet. Dates outside this window are never added later.
func InitAvailability(from time.Time) models.AvailabilitySet {
	set := make(models.AvailabilitySet, AvailabilityWindowDays)
	for i := 0; i < AvailabilityWindowDays; i++ {
		date := utils.FormatDate(from.AddDate(0, 0, i))
		set[date] = []models.TimeRange{}
	}
	return set
}

// AddFreeTime merges newRanges into the stored free ranges for date, replacing
// the stored list with the re-merged result. An empty update is a no-op.
func AddFreeTime(set models.AvailabilitySet, date string, newRanges []models.TimeRange) error {
	existing, ok := set[date]
	if !ok {
		return NewDateOutOfBoundError(date)
	}
	if len(newRanges) == 0 {
		return nil
	}
	merged, err := MergeTimeRanges(append(append([]models.TimeRange{}, existing...), newRanges...))
	if err != nil {
		return err
	}
	set[date] = merged
	return nil
}

// snapshotRanges returns a copy of a stored range list so callers never alias
// engine-owned slices.
func snapshotRanges(ranges []models.TimeRange) []models.TimeRange {
	out := make([]models.TimeRange, len(ranges))
	copy(out, ranges)
	return out
}
