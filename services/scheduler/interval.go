package scheduler

import (
	"sort"

	"meetsync/models"
)

// MergeTimeRanges normalizes a list of free ranges: sorted by start, with any
// overlapping or touching ranges collapsed into one. The result is the
// canonical stored form for a day's availability.
//
// Callers must treat an empty update as a no-op; merging nothing is an error.
func MergeTimeRanges(ranges []models.TimeRange) ([]models.TimeRange, error) {
	if len(ranges) == 0 {
		return nil, NewValidationError("cannot merge an empty range list")
	}

	sorted := make([]models.TimeRange, len(ranges))
	copy(sorted, ranges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	merged := make([]models.TimeRange, 0, len(sorted))
	current := sorted[0]
	for _, r := range sorted[1:] {
		if current.End < r.Start {
			merged = append(merged, current)
			current = r
			continue
		}
		// Overlapping or touching; extend the running range.
		if r.End > current.End {
			current.End = r.End
		}
	}
	merged = append(merged, current)
	return merged, nil
}

// OverlapRanges computes the pairwise intersection of two range lists.
// Zero-length overlaps are excluded. The result is sorted by start so that
// output order does not depend on input iteration order.
func OverlapRanges(a, b []models.TimeRange) []models.TimeRange {
	var overlapping []models.TimeRange
	for _, r1 := range a {
		for _, r2 := range b {
			start := max(r1.Start, r2.Start)
			end := min(r1.End, r2.End)
			if start < end {
				overlapping = append(overlapping, models.TimeRange{Start: start, End: end})
			}
		}
	}
	sort.Slice(overlapping, func(i, j int) bool {
		return overlapping[i].Start < overlapping[j].Start
	})
	return overlapping
}

// SubtractRange removes cut from each range in the list, keeping the left and
// right remainders of any range the cut punches through.
func SubtractRange(ranges []models.TimeRange, cut models.TimeRange) []models.TimeRange {
	updated := make([]models.TimeRange, 0, len(ranges))
	for _, r := range ranges {
		if !r.Overlaps(cut) {
			updated = append(updated, r)
			continue
		}
		if r.Start < cut.Start {
			updated = append(updated, models.TimeRange{Start: r.Start, End: cut.Start})
		}
		if r.End > cut.End {
			updated = append(updated, models.TimeRange{Start: cut.End, End: r.End})
		}
	}
	return updated
}

// ContainsRange reports whether a single contiguous range in the list fully
// covers target. A booking spanning two disjoint free ranges is not contained,
// even when the combined free time would suffice.
func ContainsRange(ranges []models.TimeRange, target models.TimeRange) bool {
	for _, r := range ranges {
		if r.Contains(target) {
			return true
		}
	}
	return false
}
