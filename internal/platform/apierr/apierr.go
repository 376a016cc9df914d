package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/waste3d/course-admin/internal/domain"
)

const (
	CodeNotFound       = "not_found"
	CodeInvalidRequest = "invalid_request"
	CodeUnauthorized   = "unauthorized"
	CodeConflict       = "conflict"
	CodeUpstream       = "upstream_failure"
	CodeInternal       = "internal"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// From classifies a use case error into an HTTP status and code.
func From(err error) *Error {
	var apiErr *Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, domain.ErrNotFound):
		return New(http.StatusNotFound, CodeNotFound, err)
	case errors.Is(err, domain.ErrInvalidArgument):
		return New(http.StatusBadRequest, CodeInvalidRequest, err)
	case errors.Is(err, domain.ErrInvalidCreds), errors.Is(err, domain.ErrTokenRevoked):
		return New(http.StatusUnauthorized, CodeUnauthorized, err)
	case errors.Is(err, domain.ErrAlreadyExists):
		return New(http.StatusConflict, CodeConflict, err)
	case errors.Is(err, domain.ErrGenerationFailed):
		return New(http.StatusBadGateway, CodeUpstream, err)
	default:
		return New(http.StatusInternalServerError, CodeInternal, err)
	}
}
