package punch

import (
	"errors"
	"fmt"
)

// ValidationError is a deterministic, user-facing rejection from the punch
// state machine. Callers surface Message as-is; retrying without changing the
// day's history cannot succeed.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// ErrConflict is returned by stores when the day-uniqueness index rejects an
// append. The service translates it into the duplicate-punch validation error.
var ErrConflict = errors.New("punch conflicts with an existing record")

var (
	ErrInvalidPIN = &ValidationError{
		Code:    "invalid_pin",
		Message: "employee not found or invalid PIN",
	}
	ErrEmployeeInactive = &ValidationError{
		Code:    "employee_inactive",
		Message: "employee is inactive or removed",
	}
	ErrLunchOutNoSession = &ValidationError{
		Code:    "no_open_session",
		Message: "cannot register lunch-out without a prior clock-in or lunch-in today",
	}
	ErrLunchInNoLunchOut = &ValidationError{
		Code:    "no_lunch_out",
		Message: "cannot register lunch-in without a prior lunch-out today",
	}
	ErrLunchMandatory = &ValidationError{
		Code:    "lunch_mandatory",
		Message: "this schedule requires lunch-out and lunch-in before clock-out",
	}
	ErrLunchReturnRequired = &ValidationError{
		Code:    "lunch_return_required",
		Message: "this schedule requires lunch-in before clock-out",
	}
	ErrJustificationRequired = &ValidationError{
		Code:    "justification_required",
		Message: "a justification is required for manual punches",
	}
	ErrDuplicateManualPunch = &ValidationError{
		Code:    "duplicate_manual_punch",
		Message: "an identical punch already exists at this instant",
	}
	ErrInvalidType = &ValidationError{
		Code:    "invalid_punch_type",
		Message: "unknown punch type",
	}
)

func errDuplicatePunch(t Type) *ValidationError {
	return &ValidationError{
		Code:    "duplicate_punch",
		Message: fmt.Sprintf("a %s punch already exists for today", t.Label()),
	}
}

func errLunchOutTooSoon(minutes int) *ValidationError {
	return &ValidationError{
		Code:    "lunch_out_too_soon",
		Message: fmt.Sprintf("lunch-out can only be registered %d minutes after the last clock-in or lunch-in", minutes),
	}
}

func errLunchInTooSoon(minutes int) *ValidationError {
	return &ValidationError{
		Code:    "lunch_in_too_soon",
		Message: fmt.Sprintf("lunch-in can only be registered %d minutes after lunch-out", minutes),
	}
}
