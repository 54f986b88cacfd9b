package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnavailable means the request never produced a structured
	// response: connection refused, timeout, DNS failure.
	ErrUnavailable = errors.New("server unavailable")

	// ErrInvalidCredentials is a 401 from the login endpoint.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAuthExpired is a 401 from any other authenticated call. By the
	// time the caller sees it the transport has already torn the session
	// down and redirected to the login screen.
	ErrAuthExpired = errors.New("session expired")
)

// FieldError is one field-level message from a structured 4xx body.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError mirrors the backend's structured error body, which is
// either a plain message or an ordered list of field errors. Normalization
// to a display string happens once, in Error(); callers can still inspect
// Fields for per-field rendering.
type ValidationError struct {
	StatusCode int
	Message    string
	Fields     []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		if e.Message != "" {
			return e.Message
		}
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Field != "" {
			parts = append(parts, f.Field+": "+f.Message)
		} else {
			parts = append(parts, f.Message)
		}
	}
	return strings.Join(parts, "; ")
}

// fastapiDetail is the wire shape of backend errors: {"detail": ...} where
// detail is a string or a list of {loc, msg} objects.
type fastapiDetail struct {
	Detail json.RawMessage `json:"detail"`
}

type fastapiFieldError struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// decodeValidationError turns a structured 4xx/5xx body into a
// *ValidationError. An unparseable body yields a ValidationError with only
// the status code.
func decodeValidationError(status int, body []byte) *ValidationError {
	ve := &ValidationError{StatusCode: status}

	var outer fastapiDetail
	if err := json.Unmarshal(body, &outer); err != nil || len(outer.Detail) == 0 {
		return ve
	}

	var msg string
	if err := json.Unmarshal(outer.Detail, &msg); err == nil {
		ve.Message = msg
		return ve
	}

	var fields []fastapiFieldError
	if err := json.Unmarshal(outer.Detail, &fields); err == nil {
		for _, f := range fields {
			ve.Fields = append(ve.Fields, FieldError{Field: fieldName(f.Loc), Message: f.Msg})
		}
	}
	return ve
}

// fieldName extracts the trailing string element of a loc path, skipping
// the leading "body"/"query" segment.
func fieldName(loc []any) string {
	for i := len(loc) - 1; i >= 0; i-- {
		if s, ok := loc[i].(string); ok && s != "body" && s != "query" {
			return s
		}
	}
	return ""
}
