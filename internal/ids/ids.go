// Package ids normalizes and classifies Akamai control-plane resource
// identifiers. The APIs are inconsistent about prefixes: PAPI returns
// "prp_12345" but accepts "12345", activation endpoints want "atv_",
// and users paste either form. Everything here is pure string handling
// so callers can normalize before building request paths.
package ids

import (
	"fmt"
	"regexp"
	"strings"
)

// ResourceType identifies the kind of control-plane resource an ID refers to.
type ResourceType string

const (
	TypeProperty   ResourceType = "property"
	TypeContract   ResourceType = "contract"
	TypeGroup      ResourceType = "group"
	TypeActivation ResourceType = "activation"
	TypeEdgeHost   ResourceType = "edgehostname"
	TypeCPCode     ResourceType = "cpcode"
	TypeAccount    ResourceType = "account"
)

// IDFormat describes the canonical format of a prefixed identifier.
type IDFormat struct {
	Type    ResourceType
	Prefix  string
	Pattern string
}

var idFormats = []IDFormat{
	{Type: TypeProperty, Prefix: "prp_", Pattern: `^prp_\d+$`},
	{Type: TypeContract, Prefix: "ctr_", Pattern: `^ctr_[A-Za-z0-9-]+$`},
	{Type: TypeGroup, Prefix: "grp_", Pattern: `^grp_\d+$`},
	{Type: TypeActivation, Prefix: "atv_", Pattern: `^atv_\d+$`},
	{Type: TypeEdgeHost, Prefix: "ehn_", Pattern: `^ehn_\d+$`},
	{Type: TypeCPCode, Prefix: "cpc_", Pattern: `^cpc_\d+$`},
	{Type: TypeAccount, Prefix: "act_", Pattern: `^act_[A-Za-z0-9-]+$`},
}

var compiledFormats = func() map[ResourceType]*regexp.Regexp {
	m := make(map[ResourceType]*regexp.Regexp, len(idFormats))
	for _, f := range idFormats {
		m[f.Type] = regexp.MustCompile(f.Pattern)
	}
	return m
}()

var digitsOnly = regexp.MustCompile(`^\d+$`)

// DetectType attempts to determine the resource type from an ID's prefix.
// Returns empty ResourceType for bare numbers and unrecognized prefixes.
func DetectType(id string) ResourceType {
	cleaned := Clean(id)
	for _, f := range idFormats {
		if strings.HasPrefix(cleaned, f.Prefix) {
			return f.Type
		}
	}
	return ""
}

// Clean trims whitespace and lowercases a prefixed identifier's prefix part.
// The suffix is preserved as-is since contract and account suffixes are
// case-sensitive.
func Clean(id string) string {
	cleaned := strings.TrimSpace(id)
	for _, f := range idFormats {
		upper := strings.ToUpper(f.Prefix)
		if strings.HasPrefix(strings.ToUpper(cleaned), upper) {
			return f.Prefix + cleaned[len(f.Prefix):]
		}
	}
	return cleaned
}

// Normalize returns the canonical prefixed form of an identifier for the
// given resource type. Bare numeric (or alphanumeric, for contracts and
// accounts) identifiers get the prefix added; already-prefixed identifiers
// of the right type pass through.
func Normalize(id string, typ ResourceType) (string, error) {
	cleaned := Clean(id)
	if cleaned == "" {
		return "", fmt.Errorf("%s ID is required", typ)
	}

	format, re := lookup(typ)
	if re == nil {
		return "", fmt.Errorf("unknown resource type %q", typ)
	}

	if re.MatchString(cleaned) {
		return cleaned, nil
	}

	// Bare identifier: try adding the prefix.
	candidate := format.Prefix + cleaned
	if re.MatchString(candidate) {
		return candidate, nil
	}

	// Prefixed but for a different resource type is the common paste error.
	if other := DetectType(cleaned); other != "" && other != typ {
		return "", fmt.Errorf("expected a %s ID but %q looks like a %s ID", typ, cleaned, other)
	}

	return "", fmt.Errorf("invalid %s ID %q: want %s", typ, id, format.Pattern)
}

// Validate reports whether an ID is in canonical form for the given type.
func Validate(id string, typ ResourceType) error {
	_, re := lookup(typ)
	if re == nil {
		return fmt.Errorf("unknown resource type %q", typ)
	}
	if !re.MatchString(Clean(id)) {
		return fmt.Errorf("invalid %s ID %q", typ, id)
	}
	return nil
}

// Strip removes the type prefix, returning the bare identifier. Some
// endpoints (CP code reporting, legacy activation URLs) want the number only.
func Strip(id string) string {
	cleaned := Clean(id)
	for _, f := range idFormats {
		if strings.HasPrefix(cleaned, f.Prefix) {
			return cleaned[len(f.Prefix):]
		}
	}
	return cleaned
}

// IsNumeric reports whether the bare part of an ID is all digits.
func IsNumeric(id string) bool {
	return digitsOnly.MatchString(Strip(id))
}

func lookup(typ ResourceType) (IDFormat, *regexp.Regexp) {
	for _, f := range idFormats {
		if f.Type == typ {
			return f, compiledFormats[typ]
		}
	}
	return IDFormat{}, nil
}
