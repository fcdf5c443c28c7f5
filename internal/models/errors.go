package models

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError is returned when no sweet exists for the given ID
type NotFoundError struct {
	SweetID string
}

// Error implements the error interface for NotFoundError
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("sweet not found: id=%s", e.SweetID)
}

// Is allows proper error type checking with errors.Is()
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// InvalidIdentifierError is returned when an ID is not a valid UUID
type InvalidIdentifierError struct {
	SweetID string
}

// Error implements the error interface for InvalidIdentifierError
func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid sweet ID: %s", e.SweetID)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidIdentifierError) Is(target error) bool {
	_, ok := target.(*InvalidIdentifierError)
	return ok
}

// FieldError describes a single invalid field in a request
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError is returned when one or more fields fail validation.
// It carries every offending field so the caller sees the full list at once.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return strings.Join(parts, ", ")
}

// Is allows proper error type checking with errors.Is()
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// Add appends a field failure and returns the receiver for chaining
func (e *ValidationError) Add(field, reason string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
	return e
}

// OrNil returns nil when no field failed, otherwise the error itself
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// InsufficientStockError is returned when a purchase cannot be satisfied.
// It covers both non-positive and over-limit requested quantities.
type InsufficientStockError struct {
	Requested int
	Available int
}

// Error implements the error interface for InsufficientStockError
func (e *InsufficientStockError) Error() string {
	return "insufficient stock or invalid quantity"
}

// Is allows proper error type checking with errors.Is()
func (e *InsufficientStockError) Is(target error) bool {
	_, ok := target.(*InsufficientStockError)
	return ok
}

// InvalidQuantityError is returned when a restock quantity is not positive
type InvalidQuantityError struct {
	Quantity int
}

// Error implements the error interface for InvalidQuantityError
func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be positive, got %d", e.Quantity)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidQuantityError) Is(target error) bool {
	_, ok := target.(*InvalidQuantityError)
	return ok
}

// DuplicateError is returned when a sweet with the same name already exists
type DuplicateError struct {
	Name string
}

// Error implements the error interface for DuplicateError
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("sweet already exists: name=%s", e.Name)
}

// Is allows proper error type checking with errors.Is()
func (e *DuplicateError) Is(target error) bool {
	_, ok := target.(*DuplicateError)
	return ok
}

// Type assertion helpers for use with errors.As()

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsInvalidIdentifier checks if an error is an InvalidIdentifierError
func IsInvalidIdentifier(err error) bool {
	var ii *InvalidIdentifierError
	return errors.As(err, &ii)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsInsufficientStock checks if an error is an InsufficientStockError
func IsInsufficientStock(err error) bool {
	var is *InsufficientStockError
	return errors.As(err, &is)
}

// IsInvalidQuantity checks if an error is an InvalidQuantityError
func IsInvalidQuantity(err error) bool {
	var iq *InvalidQuantityError
	return errors.As(err, &iq)
}

// IsDuplicate checks if an error is a DuplicateError
func IsDuplicate(err error) bool {
	var de *DuplicateError
	return errors.As(err, &de)
}
