package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation matches every form validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrNoSelection is reported when delete is requested with no table row selected.
	ErrNoSelection = errors.New("no row selected")
)

// MissingFieldError lists the form fields that were empty at submit time.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrValidation
}

// TypeConversionError reports a field whose text could not be parsed into its
// numeric type.
type TypeConversionError struct {
	Field string
	Value string
	Want  string
	Err   error
}

func (e *TypeConversionError) Error() string {
	return fmt.Sprintf("%s %q is not a valid %s", e.Field, e.Value, e.Want)
}

func (e *TypeConversionError) Unwrap() error {
	return e.Err
}

func (e *TypeConversionError) Is(target error) bool {
	return target == ErrValidation
}
