package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

const (
	// SlugUnknown is used when the server returned an error status but no
	// parseable error envelope.
	SlugUnknown = "UNKNOWN_ERROR"

	// SlugNetwork is used when the request never produced an HTTP response
	// or the response body could not be decoded.
	SlugNetwork = "NETWORK_ERROR"
)

// Error is the single failure shape every call surfaces. HTTP errors carry
// the server's status code and slug; transport failures carry Code 0 and
// SlugNetwork with the endpoint recorded in Details.
type Error struct {
	Code    int               `json:"code"`
	Slug    string            `json:"slug"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// DisplayMessage returns the message followed by one "field: message" line
// per validation detail, ready to show to a user.
func (e *Error) DisplayMessage() string {
	if len(e.Details) == 0 {
		return e.Message
	}

	fields := make([]string, 0, len(e.Details))
	for field := range e.Details {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString(e.Message)
	for _, field := range fields {
		b.WriteString("\n")
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(e.Details[field])
	}
	return b.String()
}

// FieldErrors returns the field-level validation messages, if any, for
// attaching to individual form inputs.
func (e *Error) FieldErrors() map[string]string {
	if e.Details == nil {
		return map[string]string{}
	}
	return e.Details
}

// AsError unwraps err into an *Error when the failure originated from the
// API client, allowing callers to branch on Code or Slug.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func networkError(endpoint string, cause error) *Error {
	return &Error{
		Code:    0,
		Slug:    SlugNetwork,
		Message: fmt.Sprintf("request to %s failed: %s", endpoint, cause.Error()),
		Details: map[string]string{
			"endpoint": endpoint,
			"error":    cause.Error(),
		},
	}
}

// errorFromResponse builds an Error from a non-2xx response body. Fields the
// server did not supply (or an unparseable body) fall back to values derived
// from the HTTP status.
func errorFromResponse(status int, body []byte) *Error {
	e := &Error{}
	if err := json.Unmarshal(body, e); err != nil {
		*e = Error{}
	}
	if e.Code == 0 {
		e.Code = status
	}
	if e.Slug == "" {
		e.Slug = SlugUnknown
	}
	if e.Message == "" {
		e.Message = fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
	}
	if e.Details == nil {
		e.Details = map[string]string{}
	}
	return e
}
