/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Asset", "A1")

	// Test error message
	expected := `Asset with key "A1" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	// Test helper function
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("Asset", "A1")

	// Test error message
	expected := `Asset with key "A1" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrAlreadyExists) {
		t.Error("AlreadyExistsError should match ErrAlreadyExists")
	}

	// Test helper function
	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyExistsError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "owner",
			message:  "must not be blank",
			expected: `validation failed for field "owner": must not be blank`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "missing required fields",
			expected: "validation failed: missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, ErrInvalidInput) {
				t.Error("ValidationError should match ErrInvalidInput")
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestPrivateDataError(t *testing.T) {
	cause := errors.New("collection unavailable")
	err := NewPrivateDataError("write", "A1", cause)

	expected := `private data write failed for key "A1": collection unavailable`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrPrivateData) {
		t.Error("PrivateDataError should match ErrPrivateData")
	}

	if !IsPrivateData(err) {
		t.Error("IsPrivateData should return true for PrivateDataError")
	}

	// Test cause is reachable
	if !errors.Is(err, cause) {
		t.Error("PrivateDataError should unwrap to its cause")
	}
}

func TestPrivateDataErrorWithoutCause(t *testing.T) {
	err := NewPrivateDataError("read", "A1", nil)

	expected := `private data read failed for key "A1"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
}

func TestOperationError(t *testing.T) {
	cause := errors.New("ledger unreachable")
	err := NewOperationError("history retrieval", "A1", cause)

	expected := `history retrieval failed for key "A1": ledger unreachable`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrOperation) {
		t.Error("OperationError should match ErrOperation")
	}

	if !IsOperation(err) {
		t.Error("IsOperation should return true for OperationError")
	}

	if !errors.Is(err, cause) {
		t.Error("OperationError should unwrap to its cause")
	}
}

func TestEncodingError(t *testing.T) {
	err := NewEncodingError("missing field assetId", nil)

	expected := "invalid record encoding: missing field assetId"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrInvalidEncoding) {
		t.Error("EncodingError should match ErrInvalidEncoding")
	}

	if !IsInvalidEncoding(err) {
		t.Error("IsInvalidEncoding should return true for EncodingError")
	}
}

func TestErrorWrapping(t *testing.T) {
	// Test that wrapped errors still match
	original := NewNotFoundError("Asset", "A1")
	wrapped := fmt.Errorf("registry operation failed: %w", original)

	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("Wrapped NotFoundError should still match ErrNotFound")
	}

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should see through wrapping")
	}
}

func TestTaxonomyIsDisjoint(t *testing.T) {
	// Each kind matches only its own sentinel
	kinds := map[string]error{
		"not found":      NewNotFoundError("Asset", "A1"),
		"already exists": NewAlreadyExistsError("Asset", "A1"),
		"validation":     NewValidationError("id", "blank"),
		"private data":   NewPrivateDataError("read", "A1", nil),
		"operation":      NewOperationError("write", "A1", nil),
		"encoding":       NewEncodingError("blank input", nil),
	}
	sentinels := []error{
		ErrNotFound, ErrAlreadyExists, ErrInvalidInput,
		ErrPrivateData, ErrOperation, ErrInvalidEncoding,
	}

	for name, err := range kinds {
		matches := 0
		for _, s := range sentinels {
			if errors.Is(err, s) {
				matches++
			}
		}
		if matches != 1 {
			t.Errorf("%s error should match exactly one sentinel, matched %d", name, matches)
		}
	}
}
