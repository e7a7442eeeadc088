// Package domain defines core business entities and value objects for ShellMate.
package domain

import "strings"

// ResponseKind tags the outcome of a single backend attempt.
type ResponseKind string

const (
	// ResponseSuccess means the backend produced a command string.
	ResponseSuccess ResponseKind = "success"
	// ResponseApplicationError means the backend answered but reported a failure.
	ResponseApplicationError ResponseKind = "application_error"
	// ResponseTransportFailure means the request never completed (dial, DNS, timeout).
	ResponseTransportFailure ResponseKind = "transport_failure"
	// ResponseDecodeFailure means a 2xx body carried no usable command field.
	ResponseDecodeFailure ResponseKind = "decode_failure"
)

// BackendResponse is the classified result of one backend call. Exactly one
// BackendResponse becomes authoritative per query: the first success, or the
// terminal error once retries are exhausted.
type BackendResponse struct {
	Kind    ResponseKind
	Command string // set only when Kind == ResponseSuccess
	Message string // diagnostic detail for error kinds
	Err     error  // underlying transport error, when any
}

// throttleMarkers mirror the throttling error codes the backend surfaces
// (ThrottlingException, TooManyRequestsException, ServiceQuotaExceededException
// and friends) in lowercase substring form.
var throttleMarkers = []string{
	"throttl",
	"rate limit",
	"too many requests",
	"quota",
	"slow down",
	"429",
}

// validationMarkers identify request-shape problems that a retry cannot fix.
var validationMarkers = []string{
	"validation",
	"invalid",
	"malformed",
	"bad request",
	"required",
}

// Transient reports whether another attempt could plausibly succeed.
// Transport failures always qualify; application errors qualify only when the
// message indicates throttling and not a validation problem.
func (r BackendResponse) Transient() bool {
	switch r.Kind {
	case ResponseTransportFailure:
		return true
	case ResponseApplicationError:
		msg := strings.ToLower(r.Message)
		for _, marker := range validationMarkers {
			if strings.Contains(msg, marker) {
				return false
			}
		}
		for _, marker := range throttleMarkers {
			if strings.Contains(msg, marker) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Diagnostic renders a single-line human-readable description of a
// non-success response.
func (r BackendResponse) Diagnostic() string {
	switch r.Kind {
	case ResponseApplicationError:
		return "backend error: " + r.Message
	case ResponseTransportFailure:
		if r.Err != nil {
			return "backend unreachable: " + r.Err.Error()
		}
		return "backend unreachable: " + r.Message
	case ResponseDecodeFailure:
		return "backend response malformed: " + r.Message
	default:
		return string(r.Kind)
	}
}
