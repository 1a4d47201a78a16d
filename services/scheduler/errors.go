package scheduler

import "fmt"

// Error codes reported by the scheduling engine. All engine failures are
// recoverable; handlers map codes onto HTTP statuses.
const (
	CodeValidation        = "VALIDATION"
	CodeUserNotFound      = "USER_NOT_FOUND"
	CodeDateOutOfBound    = "DATE_OUT_OF_BOUND"
	CodeSlotNotAvailable  = "SLOT_NOT_AVAILABLE"
	CodeDanglingReference = "DANGLING_REFERENCE"
)

type EngineError struct {
	Code    string
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(format string, args ...any) error {
	return &EngineError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NewUserNotFoundError(userID int) error {
	return &EngineError{Code: CodeUserNotFound, Message: fmt.Sprintf("user %d not found", userID)}
}

func NewDateOutOfBoundError(date string) error {
	return &EngineError{Code: CodeDateOutOfBound, Message: fmt.Sprintf("date %s is more than one month from now", date)}
}

func NewSlotNotAvailableError(slot string) error {
	return &EngineError{Code: CodeSlotNotAvailable, Message: fmt.Sprintf("the requested time slot %s is not available", slot)}
}

func NewDanglingReferenceError(requestorID int) error {
	return &EngineError{Code: CodeDanglingReference, Message: fmt.Sprintf("booking requestor %d no longer resolves to a user", requestorID)}
}

// ErrorCode extracts the engine error code, or "" for foreign errors.
func ErrorCode(err error) string {
	if e, ok := err.(*EngineError); ok {
		return e.Code
	}
	return ""
}
