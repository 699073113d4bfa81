package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is the kind shared by every "no such record" error.
	ErrNotFound = errors.New("not found")
	// ErrValidationFailed is the kind matched by ValidationErrors.
	ErrValidationFailed = errors.New("validation failed")
	// ErrConstraintViolation is the kind matched by *ConstraintError.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrStorageUnavailable indicates the backing store could not be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrInvalidCredentials is returned by Login on a username/password mismatch.
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// Per-entity not-found errors. Each matches ErrNotFound.
var (
	ErrUserNotFound           error = &notFoundError{msg: "User not found"}
	ErrWorkoutNotFound        error = &notFoundError{msg: "Workout not found"}
	ErrExerciseNotFound       error = &notFoundError{msg: "Exercise not found"}
	ErrGoalNotFound           error = &notFoundError{msg: "Goal not found"}
	ErrNutritionEntryNotFound error = &notFoundError{msg: "Nutrition entry not found"}
	ErrActivityLogNotFound    error = &notFoundError{msg: "Activity log not found"}
	// ErrNoActivityLogToday is returned by TodayActivityLog when the user has not logged the current day.
	ErrNoActivityLogToday error = &notFoundError{msg: "No activity log found for today"}
)

type notFoundError struct {
	msg string
}

func (e *notFoundError) Error() string {
	return e.msg
}

func (e *notFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// FieldError describes a single rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// ValidationErrors collects every field rejected by a creation schema or patch.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Error())
	}
	return "Validation error: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// HasField reports whether field was rejected.
func (v ValidationErrors) HasField(field string) bool {
	for _, fe := range v {
		if fe.Field == field {
			return true
		}
	}
	return false
}

type validator struct {
	errs ValidationErrors
}

func (v *validator) add(field, message string) {
	v.errs = append(v.errs, FieldError{Field: field, Message: message})
}

func (v *validator) requireString(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "is required")
	}
}

func (v *validator) optionalString(field string, value *string) {
	if value != nil && strings.TrimSpace(*value) == "" {
		v.add(field, "must not be empty")
	}
}

func (v *validator) requireID(field string, value int64) {
	if value <= 0 {
		v.add(field, "is required")
	}
}

func (v *validator) minInt(field string, value, min int) {
	if value < min {
		v.add(field, fmt.Sprintf("must be greater than or equal to %d", min))
	}
}

func (v *validator) nonNegative(field string, value *int) {
	if value != nil && *value < 0 {
		v.add(field, "must not be negative")
	}
}

func (v *validator) nonNegativeDecimal(field string, value *Decimal) {
	if value != nil && *value < 0 {
		v.add(field, "must not be negative")
	}
}

func (v *validator) requireTime(field string, value Timestamp) {
	switch {
	case value.invalid != "":
		v.add(field, "must be a date (YYYY-MM-DD) or timestamp")
	case value.IsZero():
		v.add(field, "is required")
	}
}

func (v *validator) optionalTime(field string, value *Timestamp) {
	if value != nil && !value.Valid() {
		v.add(field, "must be a date (YYYY-MM-DD) or timestamp")
	}
}

func (v *validator) err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

// ConstraintKind distinguishes uniqueness failures from dangling references.
type ConstraintKind string

const (
	ConstraintUnique    ConstraintKind = "unique"
	ConstraintReference ConstraintKind = "reference"
)

// ConstraintError is raised when a write violates a uniqueness or referential rule.
type ConstraintError struct {
	Kind  ConstraintKind
	Field string
	Err   error
}

func (e *ConstraintError) Error() string {
	switch e.Kind {
	case ConstraintReference:
		return fmt.Sprintf("%s does not reference an existing record", e.Field)
	default:
		return fmt.Sprintf("%s already exists", e.Field)
	}
}

func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraintViolation
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}
