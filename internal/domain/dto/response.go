package dto

import (
	"net/http"
	"time"

	"github.com/nutrivision/nutrition-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// AnalyzedItem is a single food item in the analysis response: the
// extracted item plus its scaled macros and resolution metadata.
//
// @Description Analyzed food item with scaled macronutrients
type AnalyzedItem struct {
	// Ingredient is the final (possibly recognizer-corrected) food name
	Ingredient string `json:"ingredient" example:"chicken breast"`
	// Quantity is the consolidated amount in Unit
	Quantity float64 `json:"quantity" example:"200"`
	// Unit is the canonical unit token
	Unit string `json:"unit" example:"g"`
	// Macros is the nutrient profile scaled to the requested quantity;
	// all-zero when the item could not be resolved
	Macros model.NutrientProfile `json:"macros"`
	// MatchScore is the [0,1] similarity to the matched database record;
	// omitted when resolution failed
	MatchScore *float64 `json:"match_score,omitempty" example:"0.857"`
	// Note carries the per-item resolution error, if any
	Note string `json:"note,omitempty" example:"No match found for 'xyzfood'"`
} // @name AnalyzedItem

// AnalysisResult is the payload of a successful text analysis.
//
// @Description Full analysis result: per-item rows plus macro totals
type AnalysisResult struct {
	// Input echoes the analyzed text
	Input string `json:"input" example:"200 g chicken breast"`
	// Items are the analyzed food items in pipeline order
	Items []AnalyzedItem `json:"items"`
	// Totals is the elementwise sum of all resolved items' macros
	Totals model.NutrientProfile `json:"totals"`
} // @name AnalysisResult

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data (AnalysisResult for the analyze endpoint)
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"description: must not be empty"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}
