package dns

import (
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"

	apierrors "github.com/acedergren/alecs-mcp-server-go/internal/errors"
)

var errNoEdits = apierrors.NewValidationError("edits", "", "at least one record edit is required")

// TTL bounds accepted by the zone apex. Akamai clamps anything outside.
const (
	MinTTL = 30
	MaxTTL = 86400
)

// SupportedRecordTypes are the record types the server knows how to
// validate. Anything else is rejected before it reaches a changelist.
var SupportedRecordTypes = []string{"A", "AAAA", "CNAME", "MX", "TXT", "NS", "SRV", "CAA", "PTR"}

var zoneNamePattern = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}\.?$`)

// ValidateZoneName validates a DNS zone name.
func ValidateZoneName(zone string) error {
	zone = strings.TrimSpace(zone)
	if zone == "" {
		return apierrors.NewValidationError("zone", zone, "must not be empty")
	}
	if len(zone) > 253 {
		return apierrors.NewValidationError("zone", zone, "must be at most 253 characters")
	}
	if !zoneNamePattern.MatchString(zone) {
		return apierrors.NewValidationError("zone", zone, "is not a valid DNS zone name")
	}
	return nil
}

// ValidateZoneType validates the zone type and its type-specific fields.
func ValidateZoneType(zoneType string, masters []string, target string) error {
	switch zoneType {
	case ZoneTypePrimary:
		return nil
	case ZoneTypeSecondary:
		if len(masters) == 0 {
			return apierrors.NewValidationError("masters", "", "SECONDARY zones need at least one master server")
		}
		return nil
	case ZoneTypeAlias:
		if target == "" {
			return apierrors.NewValidationError("target", "", "ALIAS zones need a target zone")
		}
		return nil
	default:
		return apierrors.NewValidationError("type", zoneType, "must be PRIMARY, SECONDARY or ALIAS")
	}
}

// ValidateRecordType validates a record type and returns the canonical
// uppercase form.
func ValidateRecordType(recordType string) (string, error) {
	upper := strings.ToUpper(strings.TrimSpace(recordType))
	for _, t := range SupportedRecordTypes {
		if upper == t {
			return upper, nil
		}
	}
	return "", apierrors.NewValidationError("type", recordType,
		"must be one of "+strings.Join(SupportedRecordTypes, ", "))
}

// ValidateRecordSet validates a complete record set against its zone.
func ValidateRecordSet(zone string, rs RecordSet) error {
	recordType, err := ValidateRecordType(rs.Type)
	if err != nil {
		return err
	}
	if rs.Name == "" {
		return apierrors.NewValidationError("name", rs.Name, "must not be empty")
	}
	if rs.TTL < MinTTL || rs.TTL > MaxTTL {
		return apierrors.NewValidationError("ttl", strconv.Itoa(rs.TTL),
			fmt.Sprintf("must be between %d and %d seconds", MinTTL, MaxTTL))
	}
	if len(rs.Rdata) == 0 {
		return apierrors.NewValidationError("rdata", "", "must contain at least one value")
	}

	if recordType == "CNAME" {
		if len(rs.Rdata) > 1 {
			return apierrors.NewValidationError("rdata", "", "CNAME record sets hold exactly one target")
		}
		if isZoneApex(zone, rs.Name) {
			return apierrors.NewValidationError("name", rs.Name,
				"CNAME is not allowed at the zone apex; use the zone's A/AAAA records instead")
		}
	}

	for _, value := range rs.Rdata {
		if err := validateRdata(recordType, value); err != nil {
			return err
		}
	}
	return nil
}

// isZoneApex reports whether name addresses the zone root.
func isZoneApex(zone, name string) bool {
	zone = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(zone)), ".")
	name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".")
	return name == zone || name == "" || name == "@"
}

var (
	srvPattern = regexp.MustCompile(`^\d+ \d+ \d+ \S+$`)
	mxPattern  = regexp.MustCompile(`^\d+ \S+$`)
	caaPattern = regexp.MustCompile(`^\d+ (issue|issuewild|iodef) ".*"$`)
)

func validateRdata(recordType, value string) error {
	switch recordType {
	case "A":
		ip := net.ParseIP(value)
		if ip == nil || ip.To4() == nil {
			return apierrors.NewValidationError("rdata", value, "must be an IPv4 address")
		}
	case "AAAA":
		ip := net.ParseIP(value)
		if ip == nil || ip.To4() != nil {
			return apierrors.NewValidationError("rdata", value, "must be an IPv6 address")
		}
	case "CNAME", "NS", "PTR":
		if value == "" || strings.ContainsAny(value, " \t") {
			return apierrors.NewValidationError("rdata", value, "must be a hostname")
		}
	case "MX":
		if !mxPattern.MatchString(value) {
			return apierrors.NewValidationError("rdata", value, `must be "<priority> <mailserver>", e.g. "10 mail.example.com."`)
		}
	case "SRV":
		if !srvPattern.MatchString(value) {
			return apierrors.NewValidationError("rdata", value, `must be "<priority> <weight> <port> <target>"`)
		}
	case "CAA":
		if !caaPattern.MatchString(value) {
			return apierrors.NewValidationError("rdata", value, `must be "<flags> <tag> \"<value>\"", e.g. "0 issue \"letsencrypt.org\""`)
		}
	case "TXT":
		if len(value) > 255 {
			return apierrors.NewValidationError("rdata", value, "TXT strings are limited to 255 characters per value")
		}
	}
	return nil
}
