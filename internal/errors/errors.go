// Package errors provides shared error types for Akamai control-plane clients.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError models an Akamai RFC 7807 application/problem+json response.
// All control-plane APIs (PAPI, Edge DNS, CPS, Network Lists) return this
// shape on failure.
type APIError struct {
	Type       string      `json:"type,omitempty"`
	Title      string      `json:"title,omitempty"`
	Detail     string      `json:"detail,omitempty"`
	Instance   string      `json:"instance,omitempty"`
	StatusCode int         `json:"status,omitempty"`
	Errors     []ErrorItem `json:"errors,omitempty"`
	Warnings   []ErrorItem `json:"warnings,omitempty"`
}

// ErrorItem is a single entry in a problem+json errors array.
type ErrorItem struct {
	Type   string `json:"type,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
	Field  string `json:"field,omitempty"`
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "API error %d", e.StatusCode)
	if e.Title != "" {
		fmt.Fprintf(&b, ": %s", e.Title)
	}
	if e.Detail != "" && e.Detail != e.Title {
		fmt.Fprintf(&b, " (%s)", e.Detail)
	}
	for _, item := range e.Errors {
		if item.Detail != "" {
			fmt.Fprintf(&b, "; %s", item.Detail)
		} else if item.Title != "" {
			fmt.Fprintf(&b, "; %s", item.Title)
		}
	}
	return b.String()
}

// ParseAPIError decodes a problem+json body into an APIError. The HTTP status
// takes precedence over the status field in the body. Bodies that are not
// valid problem+json still produce a usable APIError with the raw body as
// detail.
func ParseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{}
	if err := json.Unmarshal(body, apiErr); err != nil || (apiErr.Title == "" && apiErr.Detail == "") {
		apiErr.Detail = truncate(string(body), 300)
	}
	apiErr.StatusCode = statusCode
	return apiErr
}

// NotFoundError indicates a control-plane resource was not found.
type NotFoundError struct {
	Service      string // "papi", "dns", "cps", "netlist"
	ResourceType string // "property", "zone", "record set", "enrollment", "network list"
	Identifier   string // property ID, zone name, enrollment ID, etc.
}

func (e *NotFoundError) Error() string {
	if e.ResourceType != "" {
		return fmt.Sprintf("%s not found in %s: %s", e.ResourceType, e.Service, e.Identifier)
	}
	return fmt.Sprintf("not found in %s: %s", e.Service, e.Identifier)
}

// NewNotFoundError creates a NotFoundError for a resource lookup.
func NewNotFoundError(service, resourceType, identifier string) *NotFoundError {
	return &NotFoundError{
		Service:      service,
		ResourceType: resourceType,
		Identifier:   identifier,
	}
}

// ValidationError indicates invalid input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (may be empty for sensitive data)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// WorkflowError indicates an asynchronous operation reached a failed terminal
// state after a successful submit. RolledBack reports whether compensation ran.
type WorkflowError struct {
	Operation  string // "dns changelist submit", "property activation", ...
	State      string // terminal state observed ("FAILED", "ABORTED", ...)
	RolledBack bool
	Cause      error
}

func (e *WorkflowError) Error() string {
	msg := fmt.Sprintf("%s reached state %s", e.Operation, e.State)
	if e.RolledBack {
		msg += " (rolled back)"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *WorkflowError) Unwrap() error { return e.Cause }

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsAPIError extracts an APIError from an error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
