package booking

import (
	"errors"
	"fmt"
)

var (
	ErrPropertyUnavailable = errors.New("property is not available for booking")
	ErrForbidden           = errors.New("booking belongs to another user")
	ErrNotCancellable      = errors.New("booking can no longer be cancelled")
)

// ValidationKind distinguishes the rejection reasons a submission can hit,
// so handlers can map each to its own error code.
type ValidationKind string

const (
	MissingField       ValidationKind = "missing_field"
	InvalidDateRange   ValidationKind = "invalid_date_range"
	GuestCountExceeded ValidationKind = "guest_count_exceeded"
)

type ValidationError struct {
	Kind  ValidationKind
	Field string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("booking validation failed: %s (%s)", e.Kind, e.Field)
	}
	return fmt.Sprintf("booking validation failed: %s", e.Kind)
}

func missingField(field string) *ValidationError {
	return &ValidationError{Kind: MissingField, Field: field}
}
