package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyQuery is returned before any network call when the query text is
// blank.
var ErrEmptyQuery = errors.New("no query provided")

// ErrEndpointNotConfigured is returned before any network call when no
// backend endpoint is configured.
var ErrEndpointNotConfigured = errors.New("backend endpoint not configured (set SHELLMATE_API_ENDPOINT or backend.endpoint in config)")

// BackendError wraps the terminal BackendResponse of a query resolution.
type BackendError struct {
	Response BackendResponse
}

func (e *BackendError) Error() string {
	return e.Response.Diagnostic()
}

// ExitError requests a specific process exit code without an extra
// diagnostic line; used to propagate an executed command's exit status and to
// keep seamless-mode stderr clean.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewExitError builds an ExitError for the given code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}
