package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrAmountNotPositive indicates a record amount of zero or less.
// It wraps ErrValidation so callers can match either the family or the exact cause.
var ErrAmountNotPositive = fmt.Errorf("amount must be a positive number: %w", ErrValidation)

// ErrLabelRequired indicates a missing category/source label on a record.
var ErrLabelRequired = fmt.Errorf("label is required: %w", ErrValidation)
