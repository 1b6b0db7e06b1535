package errorutil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// Error codes surfaced to API clients.
const (
	CodeValidationFailed        = "VALIDATION_FAILED"
	CodeInvalidRequest          = "INVALID_REQUEST"
	CodeLevelExperienceMismatch = "LEVEL_EXPERIENCE_YEARS_NOT_MATCHED"
	CodeDuplicatedMemberID      = "DUPLICATED_MEMBER_ID"
	CodeNoDeveloper             = "NO_DEVELOPER"
	CodeNotFound                = "NOT_FOUND"
	CodeUnauthorized            = "UNAUTHORIZED"
	CodeForbidden               = "FORBIDDEN"
	CodeInternal                = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidationFailed, message, http.StatusBadRequest, details)
}

func NewInvalidRequest(message string) error {
	return NewDomainError(CodeInvalidRequest, message, http.StatusBadRequest, nil)
}

// NewLevelExperienceMismatch reports experience years outside the range of the declared level.
func NewLevelExperienceMismatch(level string, years int) error {
	return NewDomainError(CodeLevelExperienceMismatch,
		"developer level and experience years do not match",
		http.StatusBadRequest,
		map[string]any{"developerLevel": level, "experienceYears": years})
}

// NewDuplicatedMemberID reports a create for a memberId that is already registered.
func NewDuplicatedMemberID(memberID string, err error) error {
	return &DomainError{
		Code:       CodeDuplicatedMemberID,
		Message:    "member id already exists",
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"memberId": memberID},
		Err:        err,
	}
}

// NewNoDeveloper reports a lookup by an unknown memberId.
func NewNoDeveloper(memberID string) error {
	return NewDomainError(CodeNoDeveloper, "developer not found", http.StatusNotFound,
		map[string]any{"memberId": memberID})
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError(CodeUnauthorized, message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError(CodeForbidden, message, http.StatusForbidden, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// HasCode reports whether err carries a DomainError with the given code.
func HasCode(err error, code string) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NewNotFound("resource", nil).(*DomainError)
	}
	return NewInternalError(err).(*DomainError)
}

// MapError converts err to a DomainError, leaving nil untouched.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	return ToDomainError(err)
}
