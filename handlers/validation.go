package handlers

import (
	"fmt"
	"net/http"
	"time"

	"meetsync/models"
	"meetsync/services/scheduler"
	"meetsync/utils"
)

// validateTimeRanges applies the boundary checks the engine relies on: every
// span, after wrap-around adjustment when end precedes start, must fit within
// 24 hours. Format errors are already caught while unmarshaling.
func validateTimeRanges(rangeLists [][]models.TimeRange) error {
	for _, ranges := range rangeLists {
		for _, r := range ranges {
			end := r.End
			if end < r.Start {
				end += utils.MinutesPerDay
			}
			if end-r.Start > utils.MinutesPerDay {
				return fmt.Errorf("time range should not exceed 24 hours")
			}
		}
	}
	return nil
}

// validateDateList checks every date parses as YYYY-MM-DD and lies at most 30
// days from today.
func validateDateList(dates []string) error {
	oneMonthFromNow := time.Now().AddDate(0, 0, 30)
	for _, dateStr := range dates {
		date, err := utils.ParseDate(dateStr)
		if err != nil {
			return err
		}
		if date.After(oneMonthFromNow) {
			return fmt.Errorf("date %q is more than one month from now", dateStr)
		}
	}
	return nil
}

// engineErrorStatus maps engine error codes onto HTTP statuses. Malformed
// input is the caller's fault (422); domain failures are 400.
func engineErrorStatus(err error) int {
	switch scheduler.ErrorCode(err) {
	case scheduler.CodeValidation:
		return http.StatusUnprocessableEntity
	case scheduler.CodeUserNotFound, scheduler.CodeDateOutOfBound, scheduler.CodeSlotNotAvailable:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
