package netlist

import (
	"net"
	"regexp"
	"strings"

	apierrors "github.com/acedergren/alecs-mcp-server-go/internal/errors"
)

// ISO 3166 alpha-2 plus Akamai's continent codes.
var geoPattern = regexp.MustCompile(`^[A-Z]{2}$`)

// ValidateListType validates a list type and returns the canonical uppercase
// form.
func ValidateListType(listType string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(listType)) {
	case TypeIP:
		return TypeIP, nil
	case TypeGeo:
		return TypeGeo, nil
	default:
		return "", apierrors.NewValidationError("type", listType, "must be IP or GEO")
	}
}

// ValidateEnvironment validates an activation environment and returns the
// canonical uppercase form.
func ValidateEnvironment(environment string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(environment)) {
	case EnvStaging:
		return EnvStaging, nil
	case EnvProduction:
		return EnvProduction, nil
	default:
		return "", apierrors.NewValidationError("environment", environment, "must be STAGING or PRODUCTION")
	}
}

// ValidateElements validates list elements against the list type: IP lists
// take addresses or CIDR blocks, GEO lists take two-letter country codes.
func ValidateElements(listType string, elements []string) error {
	for _, element := range elements {
		var err error
		switch listType {
		case TypeIP:
			err = validateIPElement(element)
		case TypeGeo:
			err = validateGeoElement(element)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func validateIPElement(element string) error {
	if strings.Contains(element, "/") {
		if _, _, err := net.ParseCIDR(element); err != nil {
			return apierrors.NewValidationError("elements", element, "is not a valid CIDR block")
		}
		return nil
	}
	if net.ParseIP(element) == nil {
		return apierrors.NewValidationError("elements", element, "is not a valid IP address or CIDR block")
	}
	return nil
}

func validateGeoElement(element string) error {
	if !geoPattern.MatchString(element) {
		return apierrors.NewValidationError("elements", element, "is not a two-letter country code")
	}
	return nil
}
