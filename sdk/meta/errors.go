package meta

import "fmt"

// ErrorDetail is one field-level entry from a structured API error body. Path
// addresses the offending field; Message is suitable for display next to it.
type ErrorDetail struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ErrAuthentication represents an error wherein the API server could not
// authenticate the request (HTTP 401).
type ErrAuthentication struct {
	Code          string `json:"code,omitempty"`
	Reason        string `json:"message,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

func (e *ErrAuthentication) Error() string {
	if e.Reason == "" {
		return "Could not authenticate the request."
	}
	return fmt.Sprintf("Could not authenticate the request: %s", e.Reason)
}

// ErrAuthorization represents an error wherein the request was authenticated,
// but the principal lacks permission for the attempted action (HTTP 403).
// This is action-scoped; it says nothing about session validity.
type ErrAuthorization struct {
	Code          string `json:"code,omitempty"`
	Reason        string `json:"message,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

func (e *ErrAuthorization) Error() string {
	return "The request is not authorized."
}

// ErrRateLimited represents an error wherein the API server refused the
// request because the client has exceeded a request quota (HTTP 429).
type ErrRateLimited struct {
	Code          string `json:"code,omitempty"`
	Reason        string `json:"message,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

func (e *ErrRateLimited) Error() string {
	return "The request was rate limited. Try again shortly."
}

// ErrBadRequest represents an error wherein the API server rejected the
// request as malformed or invalid (HTTP 400 or 422). When the server reported
// field-level problems, Details carries them.
type ErrBadRequest struct {
	Code          string        `json:"code,omitempty"`
	Reason        string        `json:"message,omitempty"`
	Details       []ErrorDetail `json:"details,omitempty"`
	CorrelationID string        `json:"correlationId,omitempty"`
}

func (e *ErrBadRequest) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("Bad request: %s", e.Reason)
	}
	msg := fmt.Sprintf("Bad request: %s:", e.Reason)
	for i, detail := range e.Details {
		msg = fmt.Sprintf("%s\n  %d. %s: %s", msg, i, detail.Path, detail.Message)
	}
	return msg
}

// FieldErrors returns the field-level problems keyed by field path. Entries
// without a path are skipped.
func (e *ErrBadRequest) FieldErrors() map[string]string {
	fieldErrs := map[string]string{}
	for _, detail := range e.Details {
		if detail.Path != "" {
			fieldErrs[detail.Path] = detail.Message
		}
	}
	return fieldErrs
}

// ErrNotFound represents an error wherein a requested resource was not found
// (HTTP 404).
type ErrNotFound struct {
	Code          string `json:"code,omitempty"`
	Reason        string `json:"message,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

func (e *ErrNotFound) Error() string {
	if e.Reason == "" {
		return "The requested resource was not found."
	}
	return e.Reason
}

// ErrConflict represents an error wherein the request could not be completed
// because it conflicted with the current state of a resource (HTTP 409).
type ErrConflict struct {
	Code          string `json:"code,omitempty"`
	Reason        string `json:"message,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

func (e *ErrConflict) Error() string {
	if e.Reason == "" {
		return "The request conflicted with the current state of a resource."
	}
	return e.Reason
}

// ErrInternalServer represents a condition wherein the API server encountered
// an unexpected internal error (HTTP 500).
type ErrInternalServer struct {
	Code          string `json:"code,omitempty"`
	Reason        string `json:"message,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

func (e *ErrInternalServer) Error() string {
	return "An internal server error occurred."
}

// ErrConnectivity represents a failure to reach the API server at all --
// DNS failure, refused connection, timeout. It never carries a server body.
// Conditions of this sort are generally worth retrying.
type ErrConnectivity struct {
	Cause error
}

func (e *ErrConnectivity) Error() string {
	return fmt.Sprintf(
		"Could not connect to the API server. Check your connection and try "+
			"again: %s",
		e.Cause,
	)
}

func (e *ErrConnectivity) Unwrap() error {
	return e.Cause
}
