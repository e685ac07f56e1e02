package errors

import (
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for common error conditions
var (
	// ErrArtifactNotFound is returned when a required artifact file is missing
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrArtifactCorrupt is returned when an artifact file cannot be decoded
	ErrArtifactCorrupt = errors.New("artifact corrupt")

	// ErrSchemaViolation is returned when an artifact is missing an expected field
	ErrSchemaViolation = errors.New("schema violation")

	// ErrJobNotFound is returned when a job is not found
	ErrJobNotFound = errors.New("job not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// ArtifactLoadError represents a failed load of an artifact file with context.
// Load failures are fatal for the run invoking them: the caller must re-run
// ingestion or a prior build, not recover.
type ArtifactLoadError struct {
	Path string
	Err  error
}

func (e *ArtifactLoadError) Error() string {
	return fmt.Sprintf("failed to load artifact '%s': %v", e.Path, e.Err)
}

func (e *ArtifactLoadError) Unwrap() error {
	return e.Err
}

func (e *ArtifactLoadError) Is(target error) bool {
	if target == ErrArtifactNotFound {
		return errors.Is(e.Err, os.ErrNotExist)
	}
	return target == ErrArtifactCorrupt
}

// NewArtifactLoadError creates a new ArtifactLoadError
func NewArtifactLoadError(path string, err error) *ArtifactLoadError {
	return &ArtifactLoadError{Path: path, Err: err}
}

// SchemaViolationError represents a missing or malformed artifact field
type SchemaViolationError struct {
	Path  string
	Field string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("artifact '%s' violates schema: missing or invalid field '%s'", e.Path, e.Field)
}

func (e *SchemaViolationError) Is(target error) bool {
	return target == ErrSchemaViolation
}

// NewSchemaViolationError creates a new SchemaViolationError
func NewSchemaViolationError(path, field string) *SchemaViolationError {
	return &SchemaViolationError{Path: path, Field: field}
}

// JobNotFoundError represents a job not found error with context
type JobNotFoundError struct {
	JobID string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job with ID '%s' not found", e.JobID)
}

func (e *JobNotFoundError) Is(target error) bool {
	return target == ErrJobNotFound
}

// NewJobNotFoundError creates a new JobNotFoundError
func NewJobNotFoundError(jobID string) *JobNotFoundError {
	return &JobNotFoundError{JobID: jobID}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
