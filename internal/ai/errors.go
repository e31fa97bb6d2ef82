// README: Error taxonomy for the generation pipeline; classification happens once at the executor.
package ai

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
)

// Error codes surfaced to callers. Quota and overload are the only
// retryable kinds; everything else propagates immediately.
const (
	CodeMissingAPIKey    = "MISSING_API_KEY"
	CodeTimeout          = "TIMEOUT"
	CodeQuotaExceeded    = "QUOTA_EXCEEDED"
	CodeServerOverloaded = "SERVER_OVERLOADED"
	CodeInvalidAPIKey    = "INVALID_API_KEY"
	CodeModelNotFound    = "MODEL_NOT_FOUND"
	CodeNoResponse       = "NO_RESPONSE"
	CodeInvalidResponse  = "INVALID_RESPONSE"
	CodeMissingItinerary = "MISSING_ITINERARY"
	CodeGenerationFailed = "GENERATION_FAILED"
)

// APIError carries a human-readable message plus a machine-readable code
// and HTTP-ish status so callers can distinguish "try again shortly"
// from "fix configuration" without probing the underlying error.
type APIError struct {
	Code    string
	Status  int
	Message string
	err     error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error { return e.err }

// Retryable reports whether the failure is a transient quota/overload
// signal worth retrying with backoff.
func (e *APIError) Retryable() bool {
	return e.Code == CodeQuotaExceeded || e.Code == CodeServerOverloaded
}

func newAPIError(code string, status int, message string, cause error) *APIError {
	return &APIError{Code: code, Status: status, Message: message, err: cause}
}

// classify maps an arbitrary provider error onto the APIError taxonomy.
// Already-classified errors pass through untouched.
func classify(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	status := 0
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		status = gerr.Code
	}
	msg := err.Error()

	switch {
	case isQuotaError(status, msg):
		return newAPIError(CodeQuotaExceeded, 429, "API quota exceeded. Please try again later.", err)
	case isServerError(status, msg):
		return newAPIError(CodeServerOverloaded, 503, "The AI service is overloaded. Please try again shortly.", err)
	case status == 401 || status == 403 || strings.Contains(msg, "API key") || strings.Contains(msg, "API_KEY_INVALID"):
		return newAPIError(CodeInvalidAPIKey, 401, "Invalid API key. Check the GEMINI_API_KEY configuration.", err)
	case status == 404 || strings.Contains(msg, "not found"):
		return newAPIError(CodeModelNotFound, 404, "Model not available. Please check the model name.", err)
	default:
		return newAPIError(CodeGenerationFailed, 500, msg, err)
	}
}

// isQuotaError recognises rate-limit signals (HTTP 429 or the quota
// markers Gemini embeds in error strings).
func isQuotaError(status int, msg string) bool {
	return status == 429 ||
		strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// isServerError recognises transient server-side failures (5xx).
func isServerError(status int, msg string) bool {
	return status >= 500 ||
		strings.Contains(msg, "503") ||
		strings.Contains(msg, "UNAVAILABLE")
}
