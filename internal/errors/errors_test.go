package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIError_Message(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "title only",
			err:      &APIError{StatusCode: 403, Title: "Forbidden"},
			expected: "API error 403: Forbidden",
		},
		{
			name:     "title and detail",
			err:      &APIError{StatusCode: 400, Title: "Bad Request", Detail: "contractId is required"},
			expected: "API error 400: Bad Request (contractId is required)",
		},
		{
			name: "nested error items",
			err: &APIError{
				StatusCode: 400,
				Title:      "Invalid rule tree",
				Errors: []ErrorItem{
					{Detail: "behavior origin missing hostname"},
					{Title: "empty rule name"},
				},
			},
			expected: "API error 400: Invalid rule tree; behavior origin missing hostname; empty rule name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("error message = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseAPIError(t *testing.T) {
	body := []byte(`{
		"type": "https://problems.luna.akamaiapis.net/papi/v1/property_not_found",
		"title": "Property not found",
		"detail": "The property prp_12345 does not exist",
		"status": 404
	}`)

	apiErr := ParseAPIError(404, body)
	if apiErr.Title != "Property not found" {
		t.Errorf("title = %q, want %q", apiErr.Title, "Property not found")
	}
	if apiErr.StatusCode != 404 {
		t.Errorf("status = %d, want 404", apiErr.StatusCode)
	}
}

func TestParseAPIError_StatusOverridesBody(t *testing.T) {
	apiErr := ParseAPIError(500, []byte(`{"title":"Oops","status":200}`))
	if apiErr.StatusCode != 500 {
		t.Errorf("status = %d, want 500 (HTTP status wins)", apiErr.StatusCode)
	}
}

func TestParseAPIError_NonJSON(t *testing.T) {
	apiErr := ParseAPIError(502, []byte("<html>Bad Gateway</html>"))
	if apiErr.Detail != "<html>Bad Gateway</html>" {
		t.Errorf("detail = %q, want raw body", apiErr.Detail)
	}
	if apiErr.StatusCode != 502 {
		t.Errorf("status = %d, want 502", apiErr.StatusCode)
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("dns", "zone", "example.com")
	want := "zone not found in dns: example.com"
	if err.Error() != want {
		t.Errorf("error message = %q, want %q", err.Error(), want)
	}

	bare := &NotFoundError{Service: "papi", Identifier: "prp_1"}
	if bare.Error() != "not found in papi: prp_1" {
		t.Errorf("error message = %q", bare.Error())
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name:     "field and value",
			err:      NewValidationError("propertyId", "foo", "must match prp_<digits>"),
			expected: `validation failed for propertyId="foo": must match prp_<digits>`,
		},
		{
			name:     "field only",
			err:      NewValidationError("clientSecret", "", "is required"),
			expected: "validation failed for clientSecret: is required",
		},
		{
			name:     "message only",
			err:      &ValidationError{Message: "no records given"},
			expected: "validation failed: no records given",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("error message = %q, want %q", tt.err.Error(), tt.expected)
			}
		})
	}
}

func TestWorkflowError(t *testing.T) {
	cause := errors.New("zone validation failed")
	err := &WorkflowError{
		Operation:  "dns changelist submit",
		State:      "FAILED",
		RolledBack: true,
		Cause:      cause,
	}
	want := "dns changelist submit reached state FAILED (rolled back): zone validation failed"
	if err.Error() != want {
		t.Errorf("error message = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("expected Unwrap to expose the cause")
	}
}

func TestErrorPredicates(t *testing.T) {
	nf := fmt.Errorf("wrapped: %w", NewNotFoundError("cps", "enrollment", "12345"))
	if !IsNotFound(nf) {
		t.Error("IsNotFound should see through wrapping")
	}
	if IsNotFound(errors.New("other")) {
		t.Error("IsNotFound false positive")
	}

	ve := fmt.Errorf("wrapped: %w", NewValidationError("zone", "x", "bad"))
	if !IsValidation(ve) {
		t.Error("IsValidation should see through wrapping")
	}

	inner := &APIError{StatusCode: 429, Title: "Rate limited"}
	wrapped := fmt.Errorf("request failed: %w", inner)
	got, ok := AsAPIError(wrapped)
	if !ok || got.StatusCode != 429 {
		t.Errorf("AsAPIError = %v, %v; want the wrapped APIError", got, ok)
	}
}
