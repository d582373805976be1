package services

import (
	"errors"
	"fmt"

	apperrors "github.com/testmanship/exercise-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrForbidden        = errors.New("forbidden - insufficient permissions")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")
	ErrBadRequest       = errors.New("bad request")
	ErrConflict         = errors.New("resource conflict")

	// Exercise specific errors
	ErrExerciseNotFound    = errors.New("exercise not found")
	ErrContentNotFound     = errors.New("exercise content not found")
	ErrContentFetchFailed  = errors.New("exercise content fetch failed")
	ErrTopicNotFound       = errors.New("no content available for topic")
	ErrInvalidExerciseType = errors.New("invalid exercise type")

	// Attempt specific errors
	ErrAttemptNotFound     = errors.New("attempt not found")
	ErrAttemptAccessDenied = errors.New("access denied to attempt")

	// Challenge specific errors
	ErrChallengeNotFound  = errors.New("challenge not found")
	ErrNoActiveChallenge  = errors.New("no active challenge selected")
	ErrChallengeNotOwned  = errors.New("challenge belongs to another user")

	// AI specific errors
	ErrEmptyText        = errors.New("no text to analyze")
	ErrEmptySuggestions = errors.New("no suggestions returned")

	// User/Permission errors
	ErrUserNotFound            = errors.New("user not found")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// RateLimitError reports that a feedback request came in before the
// per-user interval elapsed. WaitSeconds is rounded up so callers can
// show "wait N seconds" directly.
type RateLimitError struct {
	WaitSeconds int `json:"wait_seconds"`
}

func (rle *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited: please wait %d seconds before requesting again", rle.WaitSeconds)
}

// RemoteServiceError wraps a failure from the AI provider that is not a
// rate limit.
type RemoteServiceError struct {
	Operation string `json:"operation"`
	Err       error  `json:"-"`
}

func (rse *RemoteServiceError) Error() string {
	return fmt.Sprintf("remote service failure during %s: %v", rse.Operation, rse.Err)
}

func (rse *RemoteServiceError) Unwrap() error {
	return rse.Err
}

type BusinessRuleError struct {
	Rule    string                 `json:"rule"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (bre *BusinessRuleError) Error() string {
	return fmt.Sprintf("business rule violation (%s): %s", bre.Rule, bre.Message)
}

type PermissionError struct {
	UserID     string `json:"user_id"`
	ResourceID uint   `json:"resource_id"`
	Resource   string `json:"resource"`
	Action     string `json:"action"`
	Reason     string `json:"reason"`
}

func (pe *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: user %s cannot %s %s %d - %s",
		pe.UserID, pe.Action, pe.Resource, pe.ResourceID, pe.Reason)
}

// ===== ERROR HELPERS =====

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

func NewRateLimitError(waitSeconds int) *RateLimitError {
	return &RateLimitError{WaitSeconds: waitSeconds}
}

func NewRemoteServiceError(operation string, err error) *RemoteServiceError {
	return &RemoteServiceError{Operation: operation, Err: err}
}

func NewBusinessRuleError(rule, message string, context map[string]interface{}) *BusinessRuleError {
	return &BusinessRuleError{
		Rule:    rule,
		Message: message,
		Context: context,
	}
}

func NewPermissionError(userID string, resourceID uint, resource, action, reason string) *PermissionError {
	return &PermissionError{
		UserID:     userID,
		ResourceID: resourceID,
		Resource:   resource,
		Action:     action,
		Reason:     reason,
	}
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrExerciseNotFound) ||
		errors.Is(err, ErrContentNotFound) ||
		errors.Is(err, ErrTopicNotFound) ||
		errors.Is(err, ErrAttemptNotFound) ||
		errors.Is(err, ErrChallengeNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsUnauthorized checks if error represents an "unauthorized" condition
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrAttemptAccessDenied) ||
		errors.Is(err, ErrChallengeNotOwned) ||
		errors.Is(err, ErrInsufficientPermissions)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}

// IsRateLimit checks if error represents a feedback rate limit hit
func IsRateLimit(err error) bool {
	var rle *RateLimitError
	return errors.As(err, &rle)
}

// IsRemoteService checks if error represents an upstream AI failure
func IsRemoteService(err error) bool {
	var rse *RemoteServiceError
	return errors.As(err, &rse)
}

// IsBusinessRule checks if error represents a business rule violation
func IsBusinessRule(err error) bool {
	var bre *BusinessRuleError
	return errors.As(err, &bre)
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
