// Package api - API types for grading
// These types define the contract for the /v1 endpoints.
// API is stateless and every response depends only on the request body.
package api

// CheckRequest is the input to POST /v1/check
type CheckRequest struct {
	// Key is the answer key, possibly an interval or ";"-separated list
	Key string `json:"key"`

	// Response is the student's grid-in text
	Response string `json:"response"`
}

// CheckResponse is the output of POST /v1/check
type CheckResponse struct {
	RequestID string `json:"request_id"`

	// Correct is true when the response is an acceptable answer
	Correct bool `json:"correct"`

	// MixedAnswer is true when the response looks like a mixed number
	// (such as "21/2" for 2 1/2) that would otherwise be correct
	MixedAnswer bool `json:"mixed_answer"`

	// KeyParseable is false when the key can never accept anything
	KeyParseable bool `json:"key_parseable"`

	// KeyDisplay is the key as shown to students
	KeyDisplay string `json:"key_display"`

	// KeyValue is the key with numbers reduced, for debugging keys
	KeyValue string `json:"key_value,omitempty"`

	// ValidResponse is true when the response fits the grid
	ValidResponse bool `json:"valid_response"`

	// FormattedResponse is the response padded to grid width
	FormattedResponse string `json:"formatted_response"`
}

// DisplayRequest is the input to POST /v1/display
type DisplayRequest struct {
	Text string `json:"text"`
}

// DisplayResponse is the output of POST /v1/display
type DisplayResponse struct {
	RequestID string `json:"request_id"`
	Display   string `json:"display"`
}

// FormatRequest is the input to POST /v1/format
type FormatRequest struct {
	Text string `json:"text"`
}

// FormatResponse is the output of POST /v1/format
type FormatResponse struct {
	RequestID string `json:"request_id"`
	Formatted string `json:"formatted"`
	Valid     bool   `json:"valid"`
}

// ErrorResponse wraps an error
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes an error
type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
