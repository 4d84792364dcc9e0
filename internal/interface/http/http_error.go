package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ashiskumarwork/SmartNotesAI-backend/pkg/errors"
)

const msgUnexpected = "An unexpected server error occurred. Please try again later."

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// statusForCode maps domain error codes onto HTTP statuses.
func statusForCode(code string) int {
	switch code {
	case "invalid_input", "invalid_credentials", "email_exists":
		return http.StatusBadRequest
	case "invalid_token":
		return http.StatusUnauthorized
	case "user_not_found":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fromDomainError converts an AppError into its transport form. Other errors become a generic 500.
func fromDomainError(err error) *HTTPError {
	appErr, ok := apperrors.As(err)
	if !ok {
		return NewHTTPError(http.StatusInternalServerError, "internal_error", msgUnexpected, err)
	}
	return &HTTPError{
		Status:  statusForCode(appErr.Code),
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
		Err:     err,
	}
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return fromDomainError(err)
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func errorBody(httpErr *HTTPError) gin.H {
	message := httpErr.Message
	if message == "" {
		message = msgUnexpected
	}
	body := gin.H{
		"error": message,
		"code":  httpErr.Code,
	}
	if httpErr.Details != nil {
		body["details"] = httpErr.Details
	}
	return body
}
