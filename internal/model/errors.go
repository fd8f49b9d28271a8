package model

import "errors"

// Validation errors for user-supplied field values.
// A field failing with one of these is rejected at the input boundary;
// nothing gets committed to the timesheet.
var (
	ErrInvalidDateFormat     = errors.New("invalid date format")
	ErrInvalidDurationFormat = errors.New("invalid duration format")
)
