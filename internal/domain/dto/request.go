// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing
// validation and serialization for API communication.
package dto

import "strings"

// AnalyzeTextRequest represents the JSON request body for the text
// analysis endpoint.
//
// The Description field is required and must contain non-whitespace
// content. Validation is performed using gin's binding tags plus the
// Validate method.
//
// @Description Request to analyze a free-text meal description
// @Example {"description": "I had two slices of whole wheat bread and one apple"}
type AnalyzeTextRequest struct {
	// Description is the free-text meal description to analyze.
	Description string `json:"description" binding:"required" example:"200 g chicken breast and 1 cup rice"`
} // @name AnalyzeTextRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrEmptyDescription is returned when description is missing or blank.
	ErrEmptyDescription = &ValidationError{
		Field:   "description",
		Message: "must not be empty",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *AnalyzeTextRequest) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
