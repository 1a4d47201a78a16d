package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeRange is a half-open [Start, End) span within a single calendar day,
// expressed in minutes from midnight. On the wire it is rendered as
// {"start_time":"HH:MM","end_time":"HH:MM"}.
type TimeRange struct {
	Start int // Range start (minutes from midnight)
	End   int // Range end (minutes from midnight)
}

type timeRangeJSON struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

const clockLayout = "15:04"

func (r TimeRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(timeRangeJSON{
		StartTime: fmt.Sprintf("%02d:%02d", r.Start/60, r.Start%60),
		EndTime:   fmt.Sprintf("%02d:%02d", r.End/60, r.End%60),
	})
}

func (r *TimeRange) UnmarshalJSON(data []byte) error {
	var wire timeRangeJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	start, err := time.Parse(clockLayout, wire.StartTime)
	if err != nil {
		return fmt.Errorf("invalid time format for %q, expected HH:MM", wire.StartTime)
	}
	end, err := time.Parse(clockLayout, wire.EndTime)
	if err != nil {
		return fmt.Errorf("invalid time format for %q, expected HH:MM", wire.EndTime)
	}
	r.Start = start.Hour()*60 + start.Minute()
	r.End = end.Hour()*60 + end.Minute()
	return nil
}

// Overlaps reports whether two ranges share at least one minute.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start < other.End && other.Start < r.End
}

// Contains reports whether target lies entirely within this single range.
func (r TimeRange) Contains(target TimeRange) bool {
	return r.Start <= target.Start && r.End >= target.End
}

func (r TimeRange) String() string {
	return fmt.Sprintf("%02d:%02d - %02d:%02d", r.Start/60, r.Start%60, r.End/60, r.End%60)
}

// AvailabilitySet maps a "YYYY-MM-DD" date to the merged free ranges for that
// day. Stored lists are always sorted by start and mutually non-overlapping.
type AvailabilitySet map[string][]TimeRange
