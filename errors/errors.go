/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when an asset is not found
	ErrNotFound = errors.New("asset not found")

	// ErrAlreadyExists is returned when attempting to create an asset that already exists
	ErrAlreadyExists = errors.New("asset already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrPrivateData is returned when a confidential data operation fails
	ErrPrivateData = errors.New("private data failure")

	// ErrOperation is returned when a ledger interaction fails
	ErrOperation = errors.New("operation failure")

	// ErrInvalidEncoding is returned when a stored record cannot be decoded
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// NotFoundError represents an error when an asset is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when an asset already exists
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// PrivateDataError represents a failed confidential data operation.
// Err carries the underlying cause when one exists.
type PrivateDataError struct {
	Op  string
	Key string
	Err error
}

func (e *PrivateDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("private data %s failed for key %q: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("private data %s failed for key %q", e.Op, e.Key)
}

func (e *PrivateDataError) Is(target error) bool {
	return target == ErrPrivateData
}

func (e *PrivateDataError) Unwrap() error {
	return e.Err
}

// OperationError represents a failed ledger interaction.
// Err carries the underlying cause when one exists.
type OperationError struct {
	Op  string
	Key string
	Err error
}

func (e *OperationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed for key %q: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s failed for key %q", e.Op, e.Key)
}

func (e *OperationError) Is(target error) bool {
	return target == ErrOperation
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// EncodingError represents a malformed canonical record encoding
type EncodingError struct {
	Reason string
	Err    error
}

func (e *EncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid record encoding: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid record encoding: %s", e.Reason)
}

func (e *EncodingError) Is(target error) bool {
	return target == ErrInvalidEncoding
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entityType, key string) error {
	return &AlreadyExistsError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewPrivateDataError creates a new PrivateDataError wrapping the given cause
func NewPrivateDataError(op, key string, cause error) error {
	return &PrivateDataError{Op: op, Key: key, Err: cause}
}

// NewOperationError creates a new OperationError wrapping the given cause
func NewOperationError(op, key string, cause error) error {
	return &OperationError{Op: op, Key: key, Err: cause}
}

// NewEncodingError creates a new EncodingError
func NewEncodingError(reason string, cause error) error {
	return &EncodingError{Reason: reason, Err: cause}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsPrivateData checks if an error is a private data failure
func IsPrivateData(err error) bool {
	return errors.Is(err, ErrPrivateData)
}

// IsOperation checks if an error is an operation failure
func IsOperation(err error) bool {
	return errors.Is(err, ErrOperation)
}

// IsInvalidEncoding checks if an error is an encoding failure
func IsInvalidEncoding(err error) bool {
	return errors.Is(err, ErrInvalidEncoding)
}
