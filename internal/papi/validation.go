package papi

import (
	"net/mail"
	"regexp"
	"strconv"
	"strings"

	apierrors "github.com/acedergren/alecs-mcp-server-go/internal/errors"
)

// Property names follow Control Center rules: letters, digits, dots,
// underscores and hyphens.
var propertyNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

const maxPropertyNameLength = 85

// ValidatePropertyName validates a new property name.
func ValidatePropertyName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apierrors.NewValidationError("propertyName", name, "must not be empty")
	}
	if len(name) > maxPropertyNameLength {
		return apierrors.NewValidationError("propertyName", name, "must be at most 85 characters")
	}
	if !propertyNamePattern.MatchString(name) {
		return apierrors.NewValidationError("propertyName", name, "may only contain letters, digits, dots, underscores and hyphens")
	}
	return nil
}

// ValidateProductID validates a product ID such as prd_Fresca.
func ValidateProductID(productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return apierrors.NewValidationError("productId", productID, "must not be empty")
	}
	if !strings.HasPrefix(productID, "prd_") {
		return apierrors.NewValidationError("productId", productID, "must start with prd_, e.g. prd_Fresca")
	}
	return nil
}

// ValidateVersion validates a property version number.
func ValidateVersion(version int) error {
	if version <= 0 {
		return apierrors.NewValidationError("version", strconv.Itoa(version), "must be a positive version number")
	}
	return nil
}

// ValidateNetwork validates an activation network and returns the canonical
// uppercase form.
func ValidateNetwork(network string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(network)) {
	case NetworkStaging:
		return NetworkStaging, nil
	case NetworkProduction:
		return NetworkProduction, nil
	default:
		return "", apierrors.NewValidationError("network", network, "must be STAGING or PRODUCTION")
	}
}

// ValidateNotifyEmails validates activation notification addresses.
func ValidateNotifyEmails(emails []string) error {
	for _, email := range emails {
		if _, err := mail.ParseAddress(email); err != nil {
			return apierrors.NewValidationError("notifyEmails", email, "is not a valid email address")
		}
	}
	return nil
}
