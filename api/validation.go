// Package api provides validation utilities for API request handling.
package api

import (
	"strconv"
	"strings"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateVerifyParams validates the query parameters of a verification
// request.
func ValidateVerifyParams(word, expectedDocParam string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if strings.TrimSpace(word) == "" {
		result.AddError("word", "Word is required")
	}

	if expectedDocParam != "" {
		idx, err := strconv.Atoi(expectedDocParam)
		if err != nil {
			result.AddError("expected_doc", "Expected document index must be an integer")
		} else if idx < 0 {
			result.AddError("expected_doc", "Expected document index cannot be negative")
		}
	}

	return result
}

// ValidateSearchQuery validates a search query string.
func ValidateSearchQuery(query string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if strings.TrimSpace(query) == "" {
		result.AddError("q", "Search query is required")
	}

	return result
}
