package cps

import (
	"regexp"
	"strings"

	apierrors "github.com/acedergren/alecs-mcp-server-go/internal/errors"
)

var hostnamePattern = regexp.MustCompile(`^(\*\.)?([a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)

// ValidateHostname validates a certificate common name or SAN. A single
// leading wildcard label is allowed.
func ValidateHostname(hostname string) error {
	hostname = strings.TrimSpace(hostname)
	if hostname == "" {
		return apierrors.NewValidationError("hostname", hostname, "must not be empty")
	}
	if !hostnamePattern.MatchString(hostname) {
		return apierrors.NewValidationError("hostname", hostname, "is not a valid certificate hostname")
	}
	return nil
}

// ValidateEnrollment validates the fields CPS rejects asynchronously, so
// mistakes surface before a change is opened.
func ValidateEnrollment(enrollment Enrollment) error {
	if err := ValidateHostname(enrollment.CSR.CN); err != nil {
		return apierrors.NewValidationError("csr.cn", enrollment.CSR.CN, "is not a valid common name")
	}
	for _, san := range enrollment.CSR.SANs {
		if err := ValidateHostname(san); err != nil {
			return apierrors.NewValidationError("csr.sans", san, "is not a valid SAN hostname")
		}
	}
	if enrollment.AdminContact == nil || enrollment.TechContact == nil {
		return apierrors.NewValidationError("contacts", "", "adminContact and techContact are required")
	}
	if enrollment.NetworkConfiguration == nil {
		return apierrors.NewValidationError("networkConfiguration", "", "is required")
	}
	switch enrollment.NetworkConfiguration.Geography {
	case "core", "china+core", "russia+core":
	default:
		return apierrors.NewValidationError("networkConfiguration.geography",
			enrollment.NetworkConfiguration.Geography, "must be core, china+core or russia+core")
	}
	return nil
}
