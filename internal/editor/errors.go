package editor

import (
	"errors"
	"fmt"
	"strconv"
)

// Rule identifies a submit validation rule. Rules are checked in
// declaration order.
type Rule int

const (
	RuleClientNameRequired Rule = iota + 1
	RuleInvalidDuration
	RuleDurationTooLong
	RuleSchedulingConflict
	RuleOutsideWorkingHours
)

// ValidationError is a rejected submit. Its message is shown to the user
// as is.
type ValidationError struct {
	Rule    Rule
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches any ValidationError with the same rule.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Rule == e.Rule
}

// Submit validation errors.
var (
	ErrClientNameRequired = &ValidationError{
		Rule:    RuleClientNameRequired,
		Message: "Please enter a client name.",
	}
	ErrInvalidDuration = &ValidationError{
		Rule:    RuleInvalidDuration,
		Message: "Please enter a valid duration.",
	}
	ErrDurationTooLong = &ValidationError{
		Rule:    RuleDurationTooLong,
		Message: "Duration cannot exceed 8 hours.",
	}
	ErrSchedulingConflict = &ValidationError{
		Rule:    RuleSchedulingConflict,
		Message: "Cannot save appointment due to scheduling conflicts. Please choose a different time or team member.",
	}
	ErrOutsideWorkingHours = &ValidationError{
		Rule:    RuleOutsideWorkingHours,
		Message: "Appointment extends beyond working hours (6:00 PM). Please reduce duration or select an earlier time.",
	}
)

// State machine errors.
var (
	ErrInvalidTransition = errors.New("editor: invalid transition")
	ErrUnknownMember     = errors.New("editor: unknown team member")
	ErrInvalidStartSlot  = errors.New("editor: invalid start slot")
)

// durationTooLong returns ErrDurationTooLong with the configured limit in
// its message.
func durationTooLong(limit float64) error {
	if limit == DefaultMaxDuration {
		return ErrDurationTooLong
	}
	return &ValidationError{
		Rule:    RuleDurationTooLong,
		Message: fmt.Sprintf("Duration cannot exceed %s hours.", strconv.FormatFloat(limit, 'f', -1, 64)),
	}
}
