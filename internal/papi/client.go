package papi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/acedergren/alecs-mcp-server-go/internal/edgegrid"
	apierrors "github.com/acedergren/alecs-mcp-server-go/internal/errors"
	"github.com/acedergren/alecs-mcp-server-go/internal/flow"
	"github.com/acedergren/alecs-mcp-server-go/internal/ids"
)

const (
	basePath = "/papi/v1"

	// DefaultCacheTTL for cached responses. Groups and contracts change
	// rarely; property data is invalidated on write anyway.
	DefaultCacheTTL = 5 * time.Minute

	service = "papi"
)

// papiHeaders are sent on every PAPI request so responses use prefixed IDs
// (prp_, ctr_, grp_) consistently.
var papiHeaders = map[string]string{"PAPI-Use-Prefixes": "true"}

// Client provides access to the Property Manager API.
type Client struct {
	session *edgegrid.Session
}

// NewClient creates a PAPI client on a shared EdgeGrid session.
func NewClient(session *edgegrid.Session) *Client {
	return &Client{session: session}
}

// ListGroups lists the access-control groups visible to the credentials.
func (c *Client) ListGroups(ctx context.Context) ([]Group, error) {
	cacheKey := "papi:groups"
	if cached, ok := c.session.Cache.Get(cacheKey); ok {
		return cached.([]Group), nil
	}

	result, _, err := c.session.Dedup.Do(ctx, cacheKey, func() (interface{}, error) {
		var resp groupsResponse
		if err := c.get(ctx, basePath+"/groups", nil, "list-groups", &resp); err != nil {
			return nil, err
		}
		return resp.Groups.Items, nil
	})
	if err != nil {
		return nil, err
	}

	groups := result.([]Group)
	c.session.Cache.Set(cacheKey, groups, DefaultCacheTTL)
	return groups, nil
}

// ListContracts lists the contracts visible to the credentials.
func (c *Client) ListContracts(ctx context.Context) ([]Contract, error) {
	cacheKey := "papi:contracts"
	if cached, ok := c.session.Cache.Get(cacheKey); ok {
		return cached.([]Contract), nil
	}

	var resp contractsResponse
	if err := c.get(ctx, basePath+"/contracts", nil, "list-contracts", &resp); err != nil {
		return nil, err
	}

	c.session.Cache.Set(cacheKey, resp.Contracts.Items, DefaultCacheTTL)
	return resp.Contracts.Items, nil
}

// ResolveGroup translates a group name or ID into the canonical group.
// Users paste names from the Control Center UI; the API wants grp_ IDs.
func (c *Client) ResolveGroup(ctx context.Context, nameOrID string) (*Group, error) {
	groups, err := c.ListGroups(ctx)
	if err != nil {
		return nil, err
	}

	if normalized, err := ids.Normalize(nameOrID, ids.TypeGroup); err == nil {
		for i := range groups {
			if groups[i].GroupID == normalized {
				return &groups[i], nil
			}
		}
		return nil, apierrors.NewNotFoundError(service, "group", normalized)
	}

	for i := range groups {
		if strings.EqualFold(groups[i].GroupName, strings.TrimSpace(nameOrID)) {
			return &groups[i], nil
		}
	}
	return nil, apierrors.NewNotFoundError(service, "group", nameOrID)
}

// ResolveContract translates a contract type name or ID into the canonical
// contract.
func (c *Client) ResolveContract(ctx context.Context, nameOrID string) (*Contract, error) {
	contracts, err := c.ListContracts(ctx)
	if err != nil {
		return nil, err
	}

	if normalized, err := ids.Normalize(nameOrID, ids.TypeContract); err == nil {
		for i := range contracts {
			if contracts[i].ContractID == normalized {
				return &contracts[i], nil
			}
		}
	}
	for i := range contracts {
		if strings.EqualFold(contracts[i].ContractTypeName, strings.TrimSpace(nameOrID)) {
			return &contracts[i], nil
		}
	}
	return nil, apierrors.NewNotFoundError(service, "contract", nameOrID)
}

// ListProperties lists properties in a contract and group.
func (c *Client) ListProperties(ctx context.Context, contractID, groupID string) ([]Property, error) {
	contractID, groupID, err := normalizeScope(contractID, groupID)
	if err != nil {
		return nil, err
	}

	cacheKey := "papi:properties:" + contractID + ":" + groupID
	if cached, ok := c.session.Cache.Get(cacheKey); ok {
		return cached.([]Property), nil
	}

	query := url.Values{}
	query.Set("contractId", contractID)
	query.Set("groupId", groupID)

	result, _, err := c.session.Dedup.Do(ctx, cacheKey, func() (interface{}, error) {
		var resp propertiesResponse
		if err := c.get(ctx, basePath+"/properties", query, "list-properties", &resp); err != nil {
			return nil, err
		}
		return resp.Properties.Items, nil
	})
	if err != nil {
		return nil, err
	}

	properties := result.([]Property)
	c.session.Cache.Set(cacheKey, properties, DefaultCacheTTL)
	return properties, nil
}

// GetProperty retrieves a single property by ID.
func (c *Client) GetProperty(ctx context.Context, propertyID string) (*Property, error) {
	propertyID, err := ids.Normalize(propertyID, ids.TypeProperty)
	if err != nil {
		return nil, apierrors.NewValidationError("propertyId", propertyID, err.Error())
	}

	cacheKey := "papi:property:" + propertyID
	if cached, ok := c.session.Cache.Get(cacheKey); ok {
		return cached.(*Property), nil
	}

	result, _, err := c.session.Dedup.Do(ctx, cacheKey, func() (interface{}, error) {
		var resp propertiesResponse
		if err := c.get(ctx, basePath+"/properties/"+propertyID, nil, "get-property", &resp); err != nil {
			return nil, mapNotFound(err, "property", propertyID)
		}
		if len(resp.Properties.Items) == 0 {
			return nil, apierrors.NewNotFoundError(service, "property", propertyID)
		}
		return &resp.Properties.Items[0], nil
	})
	if err != nil {
		return nil, err
	}

	property := result.(*Property)
	c.session.Cache.Set(cacheKey, property, DefaultCacheTTL)
	return property, nil
}

// CreateProperty creates a new property and returns its ID.
func (c *Client) CreateProperty(ctx context.Context, name, productID, contractID, groupID string) (string, error) {
	contractID, groupID, err := normalizeScope(contractID, groupID)
	if err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("contractId", contractID)
	query.Set("groupId", groupID)

	var resp createPropertyResponse
	err = c.session.DoJSON(ctx, edgegrid.Request{
		Method:    http.MethodPost,
		Path:      basePath + "/properties",
		Query:     query,
		Body:      createPropertyRequest{PropertyName: name, ProductID: productID},
		Headers:   papiHeaders,
		Service:   service,
		Operation: "create-property",
	}, &resp)
	if err != nil {
		return "", err
	}

	c.session.Cache.DeletePrefix("papi:properties:")
	propertyID := idFromLink(resp.PropertyLink)
	if propertyID == "" {
		return "", fmt.Errorf("unexpected property link %q", resp.PropertyLink)
	}
	return propertyID, nil
}

// CreateVersion creates a new editable version from an existing one and
// returns the new version number.
func (c *Client) CreateVersion(ctx context.Context, propertyID string, fromVersion int) (int, error) {
	propertyID, err := ids.Normalize(propertyID, ids.TypeProperty)
	if err != nil {
		return 0, apierrors.NewValidationError("propertyId", propertyID, err.Error())
	}

	var resp createVersionResponse
	err = c.session.DoJSON(ctx, edgegrid.Request{
		Method:    http.MethodPost,
		Path:      fmt.Sprintf("%s/properties/%s/versions", basePath, propertyID),
		Body:      createVersionRequest{CreateFromVersion: fromVersion},
		Headers:   papiHeaders,
		Service:   service,
		Operation: "create-version",
	}, &resp)
	if err != nil {
		return 0, mapNotFound(err, "property", propertyID)
	}

	c.session.Cache.Delete("papi:property:" + propertyID)
	version := versionFromLink(resp.VersionLink)
	if version == 0 {
		return 0, fmt.Errorf("unexpected version link %q", resp.VersionLink)
	}
	return version, nil
}

// GetRuleTree retrieves the rule tree for a property version.
func (c *Client) GetRuleTree(ctx context.Context, propertyID string, version int) (*RuleTree, error) {
	propertyID, err := ids.Normalize(propertyID, ids.TypeProperty)
	if err != nil {
		return nil, apierrors.NewValidationError("propertyId", propertyID, err.Error())
	}

	cacheKey := fmt.Sprintf("papi:rules:%s:%d", propertyID, version)
	if cached, ok := c.session.Cache.Get(cacheKey); ok {
		return cached.(*RuleTree), nil
	}

	result, _, err := c.session.Dedup.Do(ctx, cacheKey, func() (interface{}, error) {
		var tree RuleTree
		path := fmt.Sprintf("%s/properties/%s/versions/%d/rules", basePath, propertyID, version)
		if err := c.get(ctx, path, nil, "get-rule-tree", &tree); err != nil {
			return nil, mapNotFound(err, "rule tree", fmt.Sprintf("%s v%d", propertyID, version))
		}
		return &tree, nil
	})
	if err != nil {
		return nil, err
	}

	tree := result.(*RuleTree)
	c.session.Cache.Set(cacheKey, tree, DefaultCacheTTL)
	return tree, nil
}

// UpdateRuleTree replaces the rule tree for a property version. The tree is
// validated locally first; server-side validation warnings come back to the
// caller rather than failing the update.
func (c *Client) UpdateRuleTree(ctx context.Context, propertyID string, version int, rules Rule) ([]RuleValidationItem, error) {
	propertyID, err := ids.Normalize(propertyID, ids.TypeProperty)
	if err != nil {
		return nil, apierrors.NewValidationError("propertyId", propertyID, err.Error())
	}

	if problems := ValidateRuleTree(rules); len(problems) > 0 {
		return nil, apierrors.NewValidationError("rules", "", strings.Join(problems, "; "))
	}

	var resp ruleTreeUpdateResponse
	err = c.session.DoJSON(ctx, edgegrid.Request{
		Method:    http.MethodPut,
		Path:      fmt.Sprintf("%s/properties/%s/versions/%d/rules", basePath, propertyID, version),
		Body:      RuleTree{Rules: rules},
		Headers:   papiHeaders,
		Service:   service,
		Operation: "update-rule-tree",
	}, &resp)
	if err != nil {
		return nil, mapNotFound(err, "rule tree", fmt.Sprintf("%s v%d", propertyID, version))
	}

	// Drop every cached read for this property; version metadata and the
	// rule tree both changed.
	c.session.Cache.DeletePrefix("papi:rules:" + propertyID)
	c.session.Cache.Delete("papi:property:" + propertyID)
	return resp.Warnings, nil
}

// ListHostnames lists the hostnames attached to a property version.
func (c *Client) ListHostnames(ctx context.Context, propertyID string, version int) ([]Hostname, error) {
	propertyID, err := ids.Normalize(propertyID, ids.TypeProperty)
	if err != nil {
		return nil, apierrors.NewValidationError("propertyId", propertyID, err.Error())
	}

	var resp hostnamesResponse
	path := fmt.Sprintf("%s/properties/%s/versions/%d/hostnames", basePath, propertyID, version)
	if err := c.get(ctx, path, nil, "list-hostnames", &resp); err != nil {
		return nil, mapNotFound(err, "property version", fmt.Sprintf("%s v%d", propertyID, version))
	}
	return resp.Hostnames.Items, nil
}

// ListActivations lists all activations for a property, newest first.
func (c *Client) ListActivations(ctx context.Context, propertyID string) ([]Activation, error) {
	propertyID, err := ids.Normalize(propertyID, ids.TypeProperty)
	if err != nil {
		return nil, apierrors.NewValidationError("propertyId", propertyID, err.Error())
	}

	var resp activationsResponse
	if err := c.get(ctx, fmt.Sprintf("%s/properties/%s/activations", basePath, propertyID), nil, "list-activations", &resp); err != nil {
		return nil, mapNotFound(err, "property", propertyID)
	}
	return resp.Activations.Items, nil
}

// GetActivation retrieves one activation.
func (c *Client) GetActivation(ctx context.Context, propertyID, activationID string) (*Activation, error) {
	propertyID, err := ids.Normalize(propertyID, ids.TypeProperty)
	if err != nil {
		return nil, apierrors.NewValidationError("propertyId", propertyID, err.Error())
	}
	activationID, err = ids.Normalize(activationID, ids.TypeActivation)
	if err != nil {
		return nil, apierrors.NewValidationError("activationId", activationID, err.Error())
	}

	var resp activationsResponse
	path := fmt.Sprintf("%s/properties/%s/activations/%s", basePath, propertyID, activationID)
	if err := c.get(ctx, path, nil, "get-activation", &resp); err != nil {
		return nil, mapNotFound(err, "activation", activationID)
	}
	if len(resp.Activations.Items) == 0 {
		return nil, apierrors.NewNotFoundError(service, "activation", activationID)
	}
	return &resp.Activations.Items[0], nil
}

// ActivateOptions configure a property activation.
type ActivateOptions struct {
	PropertyID   string
	Version      int
	Network      string // STAGING or PRODUCTION
	Note         string
	NotifyEmails []string

	// Wait blocks until the activation reaches a terminal state. When the
	// activation fails, the pending activation is canceled if it still can
	// be.
	Wait bool
	Poll flow.PollConfig
}

// Activate submits a property activation. With Wait set it polls the
// activation to a terminal state and cancels it on failure; otherwise it
// returns as soon as the control plane accepts the submission.
func (c *Client) Activate(ctx context.Context, opts ActivateOptions) (*Activation, error) {
	propertyID, err := ids.Normalize(opts.PropertyID, ids.TypeProperty)
	if err != nil {
		return nil, apierrors.NewValidationError("propertyId", opts.PropertyID, err.Error())
	}
	if opts.Network != NetworkStaging && opts.Network != NetworkProduction {
		return nil, apierrors.NewValidationError("network", opts.Network, "must be STAGING or PRODUCTION")
	}
	if opts.Version <= 0 {
		return nil, apierrors.NewValidationError("version", strconv.Itoa(opts.Version), "must be a positive version number")
	}

	workflow := flow.Workflow[string]{
		Operation: "property activation",
		Poll:      opts.Poll,
		Submit: func(ctx context.Context) (string, error) {
			return c.submitActivation(ctx, propertyID, opts)
		},
		Check: func(ctx context.Context, activationID string) (flow.Status, error) {
			activation, err := c.GetActivation(ctx, propertyID, activationID)
			if err != nil {
				return flow.Status{}, err
			}
			return activationStatus(activation.Status), nil
		},
		Rollback: func(ctx context.Context, activationID string) error {
			return c.CancelActivation(ctx, propertyID, activationID)
		},
	}

	if !opts.Wait {
		activationID, err := workflow.Submit(ctx)
		if err != nil {
			return nil, err
		}
		return c.GetActivation(ctx, propertyID, activationID)
	}

	activationID, _, err := workflow.Run(ctx)
	if err != nil {
		return nil, err
	}
	return c.GetActivation(ctx, propertyID, activationID)
}

// CancelActivation cancels a still-pending activation.
func (c *Client) CancelActivation(ctx context.Context, propertyID, activationID string) error {
	return c.session.DoJSON(ctx, edgegrid.Request{
		Method:    http.MethodDelete,
		Path:      fmt.Sprintf("%s/properties/%s/activations/%s", basePath, propertyID, activationID),
		Headers:   papiHeaders,
		Service:   service,
		Operation: "cancel-activation",
	}, nil)
}

// LatestActivations returns the most recent activation per network.
func (c *Client) LatestActivations(ctx context.Context, propertyID string) (map[string]*Activation, error) {
	activations, err := c.ListActivations(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	latest := make(map[string]*Activation, 2)
	for i := range activations {
		a := &activations[i]
		if _, seen := latest[a.Network]; !seen {
			// PAPI returns newest first
			latest[a.Network] = a
		}
	}
	return latest, nil
}

func (c *Client) submitActivation(ctx context.Context, propertyID string, opts ActivateOptions) (string, error) {
	var resp activationResponse
	err := c.session.DoJSON(ctx, edgegrid.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("%s/properties/%s/activations", basePath, propertyID),
		Body: activationRequest{
			PropertyVersion:        opts.Version,
			Network:                opts.Network,
			Note:                   opts.Note,
			NotifyEmails:           opts.NotifyEmails,
			AcknowledgeAllWarnings: true,
		},
		Headers:   papiHeaders,
		Service:   service,
		Operation: "submit-activation",
	}, &resp)
	if err != nil {
		return "", mapNotFound(err, "property", propertyID)
	}

	activationID := idFromLink(resp.ActivationLink)
	if activationID == "" {
		return "", fmt.Errorf("unexpected activation link %q", resp.ActivationLink)
	}
	return activationID, nil
}

// activationStatus maps a PAPI activation status onto the workflow model.
// ZONE_1..3 are production rollout phases and still pending.
func activationStatus(status string) flow.Status {
	switch status {
	case ActivationActive, ActivationDeactivated:
		return flow.Status{State: status, Terminal: true}
	case ActivationFailed, ActivationAborted:
		return flow.Status{State: status, Terminal: true, Failed: true}
	default:
		return flow.Status{State: status}
	}
}

// get performs a cached-free GET with PAPI headers.
func (c *Client) get(ctx context.Context, path string, query url.Values, operation string, out interface{}) error {
	return c.session.DoJSON(ctx, edgegrid.Request{
		Method:    http.MethodGet,
		Path:      path,
		Query:     query,
		Headers:   papiHeaders,
		Service:   service,
		Operation: operation,
	}, out)
}

// normalizeScope validates the contract/group pair most PAPI calls require.
func normalizeScope(contractID, groupID string) (string, string, error) {
	normalizedContract, err := ids.Normalize(contractID, ids.TypeContract)
	if err != nil {
		return "", "", apierrors.NewValidationError("contractId", contractID, err.Error())
	}
	normalizedGroup, err := ids.Normalize(groupID, ids.TypeGroup)
	if err != nil {
		return "", "", apierrors.NewValidationError("groupId", groupID, err.Error())
	}
	return normalizedContract, normalizedGroup, nil
}

// mapNotFound converts a 404 APIError into a typed NotFoundError.
func mapNotFound(err error, resourceType, identifier string) error {
	if apiErr, ok := apierrors.AsAPIError(err); ok && apiErr.StatusCode == http.StatusNotFound {
		return apierrors.NewNotFoundError(service, resourceType, identifier)
	}
	return err
}

// idFromLink extracts the resource ID from a PAPI self link, e.g.
// "/papi/v1/properties/prp_12345?contractId=ctr_C-1" -> "prp_12345".
func idFromLink(link string) string {
	if link == "" {
		return ""
	}
	trimmed := link
	if i := strings.IndexByte(trimmed, '?'); i >= 0 {
		trimmed = trimmed[:i]
	}
	trimmed = strings.TrimSuffix(trimmed, "/")
	if i := strings.LastIndexByte(trimmed, '/'); i >= 0 {
		return trimmed[i+1:]
	}
	return ""
}

// versionFromLink extracts the version number from a version link, e.g.
// "/papi/v1/properties/prp_1/versions/4" -> 4.
func versionFromLink(link string) int {
	raw := idFromLink(link)
	version, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return version
}
